package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type DeliveryStats struct {
	TotalParcels   int64
	DeliveredToday int64
	InTransit      int64
	Pending        int64
	AwaitingPay    int64
	TotalPartners  int64
	ActivePartners int64
}

// DeliveryOverview строка ленты последних доставок в админке.
type DeliveryOverview struct {
	ID            string
	SenderName    string
	SenderAddress string
	Status        DeliveryStatusType
	PaymentStatus PaymentStatusType
	TotalStops    int
	TotalAmount   decimal.Decimal
	PartnerName   *string
	CreatedAt     time.Time
	DeliveredAt   *time.Time
}
