package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GatewayRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_retries_total",
			Help: "Total number of gateway retry attempts",
		},
		[]string{"service", "method", "reason"},
	)

	GatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_request_duration_seconds",
			Help:    "Duration of gateway requests including retries",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"service", "method", "code"},
	)
)

// Observe пишет длительность вызова и, если были повторы, их число.
func Observe(service, method, code string, start time.Time, attempts uint64) {
	GatewayRequestDuration.WithLabelValues(service, method, code).Observe(time.Since(start).Seconds())

	if attempts > 1 {
		GatewayRetriesTotal.WithLabelValues(service, method, code).Add(float64(attempts - 1))
	}
}
