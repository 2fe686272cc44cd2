//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=graceful_shutdown_test
package graceful_shutdown

import "quickparcel/pkg/logger"

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
}
