package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"quickparcel/internal/entities"
)

const unassignedPartner = "Unassigned"

type Stats struct {
	TotalParcels   int64 `json:"total_parcels"`
	DeliveredToday int64 `json:"delivered_today"`
	InTransit      int64 `json:"in_transit"`
	Pending        int64 `json:"pending"`
	AwaitingPay    int64 `json:"awaiting_payment"`
	TotalPartners  int64 `json:"total_partners"`
	ActivePartners int64 `json:"active_partners"`
}

type StatsResponse struct {
	Success bool  `json:"success"`
	Stats   Stats `json:"stats"`
}

func NewStatsResponse(s *entities.DeliveryStats) StatsResponse {
	return StatsResponse{
		Success: true,
		Stats: Stats{
			TotalParcels:   s.TotalParcels,
			DeliveredToday: s.DeliveredToday,
			InTransit:      s.InTransit,
			Pending:        s.Pending,
			AwaitingPay:    s.AwaitingPay,
			TotalPartners:  s.TotalPartners,
			ActivePartners: s.ActivePartners,
		},
	}
}

type DeliveryOverview struct {
	ID            string          `json:"id"`
	SenderName    string          `json:"sender_name"`
	SenderAddress string          `json:"sender_address"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"payment_status"`
	TotalStops    int             `json:"total_stops"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PartnerName   string          `json:"partner_name"`
	CreatedAt     time.Time       `json:"created_at"`
	DeliveredAt   *time.Time      `json:"delivered_at"`
}

type DeliveriesOverviewResponse struct {
	Success    bool               `json:"success"`
	Deliveries []DeliveryOverview `json:"deliveries"`
}

func NewDeliveriesOverviewResponse(overviews []entities.DeliveryOverview) DeliveriesOverviewResponse {
	res := make([]DeliveryOverview, 0, len(overviews))
	for _, o := range overviews {
		partnerName := unassignedPartner
		if o.PartnerName != nil {
			partnerName = *o.PartnerName
		}

		res = append(res, DeliveryOverview{
			ID:            o.ID,
			SenderName:    o.SenderName,
			SenderAddress: o.SenderAddress,
			Status:        o.Status.String(),
			PaymentStatus: o.PaymentStatus.String(),
			TotalStops:    o.TotalStops,
			TotalAmount:   o.TotalAmount,
			PartnerName:   partnerName,
			CreatedAt:     o.CreatedAt,
			DeliveredAt:   o.DeliveredAt,
		})
	}

	return DeliveriesOverviewResponse{
		Success:    true,
		Deliveries: res,
	}
}

type PartnersResponse struct {
	Success  bool      `json:"success"`
	Partners []Partner `json:"partners"`
}
