package stats

import (
	"time"

	"github.com/shopspring/decimal"
)

type DeliveryOverviewDB struct {
	ID               string
	SenderName       string
	SenderAddress    string
	Status           string
	PaymentStatus    string
	TotalStops       int
	TotalAmount      decimal.Decimal
	PartnerFirstName *string
	PartnerLastName  *string
	CreatedAt        time.Time
	DeliveredAt      *time.Time
}

type StatusCountDB struct {
	Status string
	Count  int64
}
