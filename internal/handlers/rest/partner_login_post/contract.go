//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=partner_login_post_test
package partner_login_post

import (
	"context"
	"time"

	"quickparcel/internal/entities"
	"quickparcel/internal/pkg/auth"
	"quickparcel/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Authenticate(ctx context.Context, email, password string) (*entities.Partner, error)
}

type TokenIssuer interface {
	Issue(subject string, role auth.Role) (string, error)
	TTL() time.Duration
}
