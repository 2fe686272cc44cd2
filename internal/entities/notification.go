package entities

import "time"

// StatusNotification событие смены статуса доставки.
type StatusNotification struct {
	EventID     string
	DeliveryID  string
	Status      DeliveryStatusType
	SenderName  string
	SenderEmail *string
	PartnerID   *string
	PartnerName *string
	OccurredAt  time.Time
}

func NewStatusNotification(delivery *Delivery, occurredAt time.Time) StatusNotification {
	return StatusNotification{
		DeliveryID:  delivery.ID,
		Status:      delivery.Status,
		SenderName:  delivery.SenderName,
		SenderEmail: delivery.SenderEmail,
		PartnerID:   delivery.PartnerID,
		OccurredAt:  occurredAt,
	}
}
