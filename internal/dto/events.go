package dto

import (
	"time"

	"quickparcel/internal/entities"
)

// DeliveryStatusChangedEvent сообщение топика delivery.status.changed.
type DeliveryStatusChangedEvent struct {
	EventID     string    `json:"event_id"`
	DeliveryID  string    `json:"delivery_id"`
	Status      string    `json:"status"`
	SenderName  string    `json:"sender_name"`
	SenderEmail *string   `json:"sender_email,omitempty"`
	PartnerID   *string   `json:"partner_id,omitempty"`
	PartnerName *string   `json:"partner_name,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func NewDeliveryStatusChangedEvent(n entities.StatusNotification) DeliveryStatusChangedEvent {
	return DeliveryStatusChangedEvent{
		EventID:     n.EventID,
		DeliveryID:  n.DeliveryID,
		Status:      n.Status.String(),
		SenderName:  n.SenderName,
		SenderEmail: n.SenderEmail,
		PartnerID:   n.PartnerID,
		PartnerName: n.PartnerName,
		OccurredAt:  n.OccurredAt,
	}
}

func (e DeliveryStatusChangedEvent) ToDomain() entities.StatusNotification {
	return entities.StatusNotification{
		EventID:     e.EventID,
		DeliveryID:  e.DeliveryID,
		Status:      entities.DeliveryStatusType(e.Status),
		SenderName:  e.SenderName,
		SenderEmail: e.SenderEmail,
		PartnerID:   e.PartnerID,
		PartnerName: e.PartnerName,
		OccurredAt:  e.OccurredAt,
	}
}
