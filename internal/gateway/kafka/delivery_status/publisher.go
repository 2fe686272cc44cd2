package delivery_status

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"quickparcel/internal/dto"
	"quickparcel/internal/entities"
	"quickparcel/pkg/logger"
)

// Publisher отправляет события смены статуса в Kafka, не блокируя переход статуса.
// Ошибки доставки брокеру только логируются.
type Publisher struct {
	producer       sarama.AsyncProducer
	log            publisherLogger
	topic          string
	enqueueTimeout time.Duration

	drained   sync.WaitGroup
	closeOnce sync.Once
}

func New(log publisherLogger, producer sarama.AsyncProducer, topic string, enqueueTimeout time.Duration) *Publisher {
	p := &Publisher{
		producer:       producer,
		log:            log.With(logger.NewField("topic", topic)),
		topic:          topic,
		enqueueTimeout: enqueueTimeout,
	}

	p.drained.Add(1)
	go p.drainErrors()

	return p
}

func (p *Publisher) Notify(ctx context.Context, notification entities.StatusNotification) {
	if notification.EventID == "" {
		notification.EventID = uuid.NewString()
	}

	msgLog := p.log.With(
		logger.NewField("delivery", notification.DeliveryID),
		logger.NewField("status", notification.Status.String()),
		logger.NewField("event", notification.EventID),
	)

	payload, err := json.Marshal(dto.NewDeliveryStatusChangedEvent(notification))
	if err != nil {
		msgLog.Error("delivery.status.changed: encode event", logger.NewField("error", err))
		return
	}

	message := &sarama.ProducerMessage{
		Topic: p.topic,
		// ключ по доставке, чтобы события одной доставки шли в одну партицию по порядку
		Key:   sarama.StringEncoder(notification.DeliveryID),
		Value: sarama.ByteEncoder(payload),
	}

	timer := time.NewTimer(p.enqueueTimeout)
	defer timer.Stop()

	select {
	case p.producer.Input() <- message:
	case <-timer.C:
		msgLog.Warn("delivery.status.changed: producer queue is full, event dropped")
	case <-ctx.Done():
		msgLog.Warn("delivery.status.changed: context done before enqueue, event dropped")
	}
}

// Close дожидается отправки буфера и закрывает продюсер.
func (p *Publisher) Close() error {
	p.closeOnce.Do(func() {
		p.producer.AsyncClose()
		p.drained.Wait()
	})
	return nil
}

func (p *Publisher) drainErrors() {
	defer p.drained.Done()

	for producerErr := range p.producer.Errors() {
		fields := []logger.Field{logger.NewField("error", producerErr.Err)}
		if producerErr.Msg != nil {
			if key, ok := producerErr.Msg.Key.(sarama.StringEncoder); ok {
				fields = append(fields, logger.NewField("delivery", string(key)))
			}
		}
		p.log.Error("delivery.status.changed: publish failed", fields...)
	}
}
