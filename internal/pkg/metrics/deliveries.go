package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DeliveriesByStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "quickparcel_deliveries",
			Help: "Number of deliveries per lifecycle status",
		},
		[]string{"status"},
	)

	DeliveredToday = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "quickparcel_delivered_today",
			Help: "Deliveries handed over since UTC midnight",
		},
	)

	PartnersOnline = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "quickparcel_partners_online",
			Help: "Delivery partners currently online",
		},
	)
)
