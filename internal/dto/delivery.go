package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"quickparcel/internal/entities"
)

type StopCreateRequest struct {
	DropAddress   string `json:"drop_address"`
	ReceiverName  string `json:"receiver_name"`
	ReceiverPhone string `json:"receiver_phone"`
}

type DeliveryCreateRequest struct {
	SenderName    string              `json:"sender_name"`
	SenderAddress string              `json:"sender_address"`
	SenderEmail   *string             `json:"sender_email,omitempty"`
	ParcelType    string              `json:"parcel_type"`
	Weight        decimal.Decimal     `json:"weight"`
	Stops         []StopCreateRequest `json:"stops"`
}

func (r DeliveryCreateRequest) ToDomain() entities.DeliveryCreate {
	stops := make([]entities.StopCreate, 0, len(r.Stops))
	for _, stop := range r.Stops {
		stops = append(stops, entities.StopCreate{
			DropAddress:   stop.DropAddress,
			ReceiverName:  stop.ReceiverName,
			ReceiverPhone: stop.ReceiverPhone,
		})
	}

	return entities.DeliveryCreate{
		SenderName:    r.SenderName,
		SenderAddress: r.SenderAddress,
		SenderEmail:   r.SenderEmail,
		ParcelType:    r.ParcelType,
		Weight:        r.Weight,
		Stops:         stops,
	}
}

type DeliveryStatusRequest struct {
	Status string `json:"status"`
}

type Stop struct {
	StopNumber    int        `json:"stop_number"`
	DropAddress   string     `json:"drop_address"`
	ReceiverName  string     `json:"receiver_name"`
	ReceiverPhone string     `json:"receiver_phone"`
	Status        string     `json:"status"`
	DeliveredAt   *time.Time `json:"delivered_at,omitempty"`
}

type Delivery struct {
	ID              string          `json:"id"`
	SenderName      string          `json:"sender_name"`
	SenderAddress   string          `json:"sender_address"`
	SenderEmail     *string         `json:"sender_email,omitempty"`
	ReceiverName    string          `json:"receiver_name"`
	ReceiverAddress string          `json:"receiver_address"`
	ReceiverPhone   string          `json:"receiver_phone"`
	ParcelType      string          `json:"parcel_type"`
	Weight          decimal.Decimal `json:"weight"`
	Status          string          `json:"status"`
	PartnerID       *string         `json:"partner_id"`
	TotalStops      int             `json:"total_stops"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	PaymentStatus   string          `json:"payment_status"`
	PaymentMethod   *string         `json:"payment_method"`
	CreatedAt       time.Time       `json:"created_at"`
	AcceptedAt      *time.Time      `json:"accepted_at"`
	UpdatedAt       *time.Time      `json:"updated_at"`
	DeliveredAt     *time.Time      `json:"delivered_at"`
	Stops           []Stop          `json:"stops"`
}

func NewDelivery(d *entities.Delivery) Delivery {
	stops := make([]Stop, 0, len(d.Stops))
	for _, stop := range d.Stops {
		stops = append(stops, Stop{
			StopNumber:    stop.StopNumber,
			DropAddress:   stop.DropAddress,
			ReceiverName:  stop.ReceiverName,
			ReceiverPhone: stop.ReceiverPhone,
			Status:        stop.Status.String(),
			DeliveredAt:   stop.DeliveredAt,
		})
	}

	var method *string
	if d.PaymentMethod != nil {
		m := d.PaymentMethod.String()
		method = &m
	}

	return Delivery{
		ID:              d.ID,
		SenderName:      d.SenderName,
		SenderAddress:   d.SenderAddress,
		SenderEmail:     d.SenderEmail,
		ReceiverName:    d.ReceiverName,
		ReceiverAddress: d.ReceiverAddress,
		ReceiverPhone:   d.ReceiverPhone,
		ParcelType:      d.ParcelType,
		Weight:          d.Weight,
		Status:          d.Status.String(),
		PartnerID:       d.PartnerID,
		TotalStops:      d.TotalStops,
		TotalAmount:     d.TotalAmount,
		PaymentStatus:   d.PaymentStatus.String(),
		PaymentMethod:   method,
		CreatedAt:       d.CreatedAt,
		AcceptedAt:      d.AcceptedAt,
		UpdatedAt:       d.UpdatedAt,
		DeliveredAt:     d.DeliveredAt,
		Stops:           stops,
	}
}

func NewDeliveryList(deliveries []entities.Delivery) []Delivery {
	res := make([]Delivery, 0, len(deliveries))
	for i := range deliveries {
		res = append(res, NewDelivery(&deliveries[i]))
	}
	return res
}

type DeliveryResponse struct {
	Success  bool     `json:"success"`
	Delivery Delivery `json:"delivery"`
}

type DeliveryCreateResponse struct {
	Success    bool     `json:"success"`
	DeliveryID string   `json:"delivery_id"`
	TotalStops int      `json:"total_stops"`
	Delivery   Delivery `json:"delivery"`
}

type PartnerDeliveriesResponse struct {
	Success   bool       `json:"success"`
	Assigned  []Delivery `json:"assigned"`
	Available []Delivery `json:"available"`
}

type StopDeliverResponse struct {
	Success           bool   `json:"success"`
	Message           string `json:"message"`
	DeliveryID        string `json:"delivery_id"`
	StopNumber        int    `json:"stop_number"`
	DeliveryCompleted bool   `json:"delivery_completed"`
}
