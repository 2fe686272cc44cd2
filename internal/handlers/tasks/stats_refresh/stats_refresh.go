package stats_refresh

import (
	"context"
	"fmt"
	"time"

	"quickparcel/internal/entities"
	"quickparcel/internal/pkg/metrics"
	"quickparcel/pkg/logger"
)

var lifecycle = []entities.DeliveryStatusType{
	entities.DeliveryAvailable,
	entities.DeliveryAccepted,
	entities.DeliveryPicked,
	entities.DeliveryOnTheWay,
	entities.DeliveryDelivered,
	entities.DeliveryCompleted,
}

// StatsRefresh переносит счётчики доставок и партнёров в gauge-метрики.
type StatsRefresh struct {
	log        taskLogger
	repository Repository
	interval   time.Duration
}

func NewStatsRefresh(log taskLogger, repository Repository, interval time.Duration) *StatsRefresh {
	return &StatsRefresh{
		log:        log,
		repository: repository,
		interval:   interval,
	}
}

func (s *StatsRefresh) TTL() time.Duration {
	return s.interval
}

func (s *StatsRefresh) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	counts, err := s.repository.CountByStatus(ctxWithTimeout)
	if err != nil {
		return fmt.Errorf("count deliveries by status: %w", err)
	}

	stats, err := s.repository.Stats(ctxWithTimeout)
	if err != nil {
		return fmt.Errorf("delivery stats: %w", err)
	}

	// статусы без строк обнуляются, иначе gauge держит старое значение
	for _, status := range lifecycle {
		metrics.DeliveriesByStatus.WithLabelValues(status.String()).Set(float64(counts[status]))
	}
	metrics.DeliveredToday.Set(float64(stats.DeliveredToday))
	metrics.PartnersOnline.Set(float64(stats.ActivePartners))

	s.log.With(
		logger.NewField("total_parcels", stats.TotalParcels),
		logger.NewField("in_transit", stats.InTransit),
		logger.NewField("partners_online", stats.ActivePartners),
	).Info("stats refreshed")

	return nil
}

func (s *StatsRefresh) Info() string {
	return "stats refresh"
}
