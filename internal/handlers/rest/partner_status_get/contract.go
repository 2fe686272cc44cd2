//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=partner_status_get_test
package partner_status_get

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
	GetPartner(ctx context.Context, id string) (*entities.Partner, error)
}
