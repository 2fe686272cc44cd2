//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_deliveries_get_test
package admin_deliveries_get

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
	RecentDeliveries(ctx context.Context, limit int) ([]entities.DeliveryOverview, error)
}
