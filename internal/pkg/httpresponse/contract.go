//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=httpresponse_test
package httpresponse

import "quickparcel/pkg/logger"

type responseLogger interface {
	Error(msg string, fields ...logger.Field)
}
