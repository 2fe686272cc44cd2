//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=partner_register_post_test
package partner_register_post

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
	RegisterPartner(ctx context.Context, create entities.PartnerCreate) (*entities.Partner, error)
}
