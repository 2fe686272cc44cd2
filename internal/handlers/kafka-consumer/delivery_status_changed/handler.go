package delivery_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"quickparcel/internal/dto"
	"quickparcel/internal/service/notification"
	"quickparcel/pkg/logger"
)

type Handler struct {
	notificationService      Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, notificationService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		notificationService:      notificationService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("delivery.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка группы
			h.log.Info("delivery.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing true, если ConsumeClaim надо прервать без коммита сообщения.
// Письмо не критично: любая ошибка, кроме отмены контекста, логируется и сообщение коммитится.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event dto.DeliveryStatusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("delivery.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("event_id", event.EventID),
		logger.NewField("delivery", event.DeliveryID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("delivery.status.changed processing")

	err = h.notificationService.SendStatusUpdate(ctx, event.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.status.changed handler context cancelled, message will be reprocessed")
			return true
		case errors.Is(err, notification.ErrNoRecipient):
			msgLog.Info("delivery.status.changed: sender has no email, skipped")
		case errors.Is(err, notification.ErrInvalidStatus):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.status.changed handler unknown status")
		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("delivery.status.changed handler failed to send notification")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("delivery.status.changed: notification sent")
	sess.MarkMessage(message, "")
	return false
}
