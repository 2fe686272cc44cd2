//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cash_confirm_post_test
package cash_confirm_post

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
	ConfirmCash(ctx context.Context, partnerID, deliveryID string) (*entities.Delivery, error)
}
