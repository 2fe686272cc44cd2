//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=partner_status_put_test
package partner_status_put

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
	SetStatus(ctx context.Context, id string, status entities.PartnerStatusType) (*entities.Partner, error)
}
