//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stats_refresh_test
package stats_refresh

import (
	"context"

	"quickparcel/internal/entities"
	"quickparcel/pkg/logger"
)

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Repository interface {
	Stats(ctx context.Context) (*entities.DeliveryStats, error)
	CountByStatus(ctx context.Context) (map[entities.DeliveryStatusType]int64, error)
}
