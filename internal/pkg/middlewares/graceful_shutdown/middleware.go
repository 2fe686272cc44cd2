package graceful_shutdown

import (
	"net/http"
	"sync/atomic"

	"quickparcel/internal/pkg/httpresponse"
)

// Middleware после SIGTERM отвечает 503 на новые запросы, пока in-flight дорабатывают.
func Middleware(log handlerLogger, isShuttingDown *atomic.Bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isShuttingDown.Load() {
				w.Header().Set("Connection", "close")
				httpresponse.Error(w, log, http.StatusServiceUnavailable, "Service is shutting down")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
