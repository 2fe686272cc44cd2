//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=calculate_price_post_test
package calculate_price_post

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
	Quote(ctx context.Context, req entities.PriceQuoteRequest) (*entities.PriceBreakdown, error)
}
