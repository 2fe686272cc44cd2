package notification

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"quickparcel/internal/entities"
)

type Notification struct {
	sender Sender
}

func New(sender Sender) *Notification {
	return &Notification{sender: sender}
}

// SendStatusUpdate письмо отправителю о смене статуса.
// Без email отправителя возвращает ErrNoRecipient, письмо не шлётся.
func (n *Notification) SendStatusUpdate(ctx context.Context, event entities.StatusNotification) error {
	if event.SenderEmail == nil || strings.TrimSpace(*event.SenderEmail) == "" {
		return ErrNoRecipient
	}
	if !event.Status.IsValid() {
		return fmt.Errorf("%q: %w", event.Status, ErrInvalidStatus)
	}

	subject, body, err := Render(event)
	if err != nil {
		return err
	}

	if err := n.sender.Send(ctx, *event.SenderEmail, subject, body); err != nil {
		return fmt.Errorf("send status email: %w", err)
	}
	return nil
}

func Render(event entities.StatusNotification) (subject, body string, err error) {
	label := event.Status.Label()
	data := bodyData{
		DeliveryID: event.DeliveryID,
		SenderName: event.SenderName,
		Label:      label,
		Message:    statusMessages[event.Status],
	}
	if event.PartnerName != nil {
		data.PartnerName = strings.TrimSpace(*event.PartnerName)
	}

	var buf bytes.Buffer
	if err := bodyTemplate.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("render status email: %w", err)
	}

	return fmt.Sprintf("Tracking Update - %s: %s", event.DeliveryID, label), buf.String(), nil
}
