//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=bearer_auth_test
package bearer_auth

import (
	"quickparcel/internal/pkg/auth"
	"quickparcel/pkg/logger"
)

type TokenParser interface {
	Parse(token string) (*auth.Principal, error)
}

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
