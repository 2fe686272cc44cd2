//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=partner_deliveries_get_test
package partner_deliveries_get

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
	PartnerDeliveries(ctx context.Context, partnerID string) (*entities.PartnerDeliveries, error)
}
