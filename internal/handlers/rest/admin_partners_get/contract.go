//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_partners_get_test
package admin_partners_get

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
	Partners(ctx context.Context) ([]entities.Partner, error)
}
