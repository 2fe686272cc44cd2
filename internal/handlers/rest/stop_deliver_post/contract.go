//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stop_deliver_post_test
package stop_deliver_post

import (
	"context"

	"quickparcel/internal/entities"
	"quickparcel/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	DeliverStop(ctx context.Context, partnerID, deliveryID string, stopNumber int) (*entities.StopDelivery, error)
}
