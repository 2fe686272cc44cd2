package entities

import "time"

type DeliveryStop struct {
	ID            int64
	DeliveryID    string
	StopNumber    int
	DropAddress   string
	ReceiverName  string
	ReceiverPhone string
	Status        StopStatusType
	DeliveredAt   *time.Time
}

type StopStatusType string

const (
	StopPending   StopStatusType = "pending"
	StopDelivered StopStatusType = "delivered"
)

func (s StopStatusType) String() string {
	return string(s)
}

type StopCreate struct {
	DropAddress   string
	ReceiverName  string
	ReceiverPhone string
}

// StopDelivery результат отметки остановки.
type StopDelivery struct {
	DeliveryID string
	StopNumber int
	// DeliveryCompleted true, если эта остановка была последней и доставка перешла в delivered.
	DeliveryCompleted bool
}
