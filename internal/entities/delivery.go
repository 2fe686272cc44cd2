package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Delivery struct {
	ID              string
	SenderName      string
	SenderAddress   string
	SenderEmail     *string
	ReceiverName    string
	ReceiverAddress string
	ReceiverPhone   string
	ParcelType      string
	Weight          decimal.Decimal
	Status          DeliveryStatusType
	PartnerID       *string
	TotalStops      int
	TotalAmount     decimal.Decimal
	PaymentStatus   PaymentStatusType
	PaymentMethod   *PaymentMethodType
	CreatedAt       time.Time
	AcceptedAt      *time.Time
	UpdatedAt       *time.Time
	DeliveredAt     *time.Time
	Stops           []DeliveryStop
}

// DropAddresses адреса остановок в порядке stop_number.
func (d *Delivery) DropAddresses() []string {
	addresses := make([]string, 0, len(d.Stops))
	for _, stop := range d.Stops {
		addresses = append(addresses, stop.DropAddress)
	}
	return addresses
}

// AssignedTo принадлежит ли доставка партнёру.
func (d *Delivery) AssignedTo(partnerID string) bool {
	return d.PartnerID != nil && *d.PartnerID == partnerID
}

// Payable ожидает ли доставка оплаты.
func (d *Delivery) Payable() bool {
	return d.Status == DeliveryDelivered && d.PaymentStatus == PaymentPending
}

const deliveryIDPrefix = "QP"

// NewDeliveryID формирует QP + номер из последовательности, дополненный нулями до 9 цифр.
func NewDeliveryID(seq int64) string {
	return fmt.Sprintf("%s%09d", deliveryIDPrefix, seq)
}

type DeliveryStatusType string

const (
	DeliveryAvailable DeliveryStatusType = "available"
	DeliveryAccepted  DeliveryStatusType = "accepted"
	DeliveryPicked    DeliveryStatusType = "picked"
	DeliveryOnTheWay  DeliveryStatusType = "on_the_way"
	DeliveryDelivered DeliveryStatusType = "delivered"
	DeliveryCompleted DeliveryStatusType = "completed"
)

func (s DeliveryStatusType) String() string {
	return string(s)
}

func (s DeliveryStatusType) IsValid() bool {
	switch s {
	case DeliveryAvailable, DeliveryAccepted, DeliveryPicked,
		DeliveryOnTheWay, DeliveryDelivered, DeliveryCompleted:
		return true
	}
	return false
}

// InTransit статусы, в которых доставка закреплена за партнёром и ещё не сдана.
func (s DeliveryStatusType) InTransit() bool {
	return s == DeliveryAccepted || s == DeliveryPicked || s == DeliveryOnTheWay
}

// Label человекочитаемое название для писем и UI.
func (s DeliveryStatusType) Label() string {
	switch s {
	case DeliveryAvailable:
		return "Available"
	case DeliveryAccepted:
		return "Accepted"
	case DeliveryPicked:
		return "Picked Up"
	case DeliveryOnTheWay:
		return "On The Way"
	case DeliveryDelivered:
		return "Delivered"
	case DeliveryCompleted:
		return "Completed"
	}
	return string(s)
}

// InTransitStatuses статусы, из которых партнёр двигает доставку.
var InTransitStatuses = []DeliveryStatusType{DeliveryAccepted, DeliveryPicked, DeliveryOnTheWay}

type PaymentStatusType string

const (
	PaymentPending     PaymentStatusType = "pending"
	PaymentPendingCash PaymentStatusType = "pending_cash"
	PaymentPaid        PaymentStatusType = "paid"
)

func (s PaymentStatusType) String() string {
	return string(s)
}

type PaymentMethodType string

const (
	PaymentOnline PaymentMethodType = "online"
	PaymentCash   PaymentMethodType = "cash"
)

func (m PaymentMethodType) String() string {
	return string(m)
}

// DeliveryCreate заявка на доставку. Адрес отправителя служит точкой забора.
type DeliveryCreate struct {
	SenderName    string
	SenderAddress string
	SenderEmail   *string
	ParcelType    string
	Weight        decimal.Decimal
	Stops         []StopCreate
}

// DeliveryModify изменяемые поля. nil - поле не трогается.
type DeliveryModify struct {
	Status        *DeliveryStatusType
	PartnerID     *string
	TotalAmount   *decimal.Decimal
	PaymentStatus *PaymentStatusType
	PaymentMethod *PaymentMethodType
	AcceptedAt    *time.Time
	UpdatedAt     *time.Time
	DeliveredAt   *time.Time
}

// DeliveryCondition ожидаемое состояние строки для условного обновления.
// Пустое поле не проверяется, список означает "любое из".
type DeliveryCondition struct {
	Status        []DeliveryStatusType
	PaymentStatus []PaymentStatusType
	PartnerID     *string
	PaymentMethod *PaymentMethodType
}

// PartnerDeliveries выдача для кабинета партнёра.
type PartnerDeliveries struct {
	Assigned  []Delivery
	Available []Delivery
}
