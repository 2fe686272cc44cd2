package payment

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrPaymentNotFound = errors.New("payment not found in gateway")

// StatusError неуспешный HTTP ответ шлюза.
type StatusError struct {
	Code        int
	Description string
}

func (e *StatusError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("gateway responded %d", e.Code)
	}
	return fmt.Sprintf("gateway responded %d: %s", e.Code, e.Description)
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code == http.StatusTooManyRequests || statusErr.Code >= http.StatusInternalServerError
	}

	// сетевые ошибки и таймауты одной попытки
	return !errors.Is(err, ErrPaymentNotFound)
}
