package delivery

import (
	"time"

	"github.com/shopspring/decimal"
)

type DeliveryDB struct {
	ID              string
	SenderName      string
	SenderAddress   string
	SenderEmail     *string
	ReceiverName    string
	ReceiverAddress string
	ReceiverPhone   string
	ParcelType      string
	Weight          decimal.Decimal
	Status          string
	PartnerID       *string
	TotalStops      int
	TotalAmount     decimal.Decimal
	PaymentStatus   string
	PaymentMethod   *string
	CreatedAt       time.Time
	AcceptedAt      *time.Time
	UpdatedAt       *time.Time
	DeliveredAt     *time.Time
}

type DeliveryModifyDB struct {
	Status        *string
	PartnerID     *string
	TotalAmount   *decimal.Decimal
	PaymentStatus *string
	PaymentMethod *string
	AcceptedAt    *time.Time
	UpdatedAt     *time.Time
	DeliveredAt   *time.Time
}

type StopDB struct {
	ID            int64
	DeliveryID    string
	StopNumber    int
	DropAddress   string
	ReceiverName  string
	ReceiverPhone string
	Status        string
	DeliveredAt   *time.Time
}
