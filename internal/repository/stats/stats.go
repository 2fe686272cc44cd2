package stats

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"quickparcel/internal/entities"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Stats сводка для админки. "Доставлено сегодня" считает delivered и completed
// с delivered_at начиная с полуночи UTC.
func (r *Repository) Stats(ctx context.Context) (*entities.DeliveryStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM deliveries),
			(SELECT COUNT(*) FROM deliveries
				WHERE status IN ('delivered', 'completed')
				AND delivered_at >= date_trunc('day', NOW() AT TIME ZONE 'UTC') AT TIME ZONE 'UTC'),
			(SELECT COUNT(*) FROM deliveries WHERE status IN ('accepted', 'picked', 'on_the_way')),
			(SELECT COUNT(*) FROM deliveries WHERE status = 'available'),
			(SELECT COUNT(*) FROM deliveries
				WHERE status = 'delivered' AND payment_status IN ('pending', 'pending_cash')),
			(SELECT COUNT(*) FROM partners),
			(SELECT COUNT(*) FROM partners WHERE status = 'online')
	`

	var stats entities.DeliveryStats
	err := r.querier.QueryRow(ctx, query).Scan(
		&stats.TotalParcels,
		&stats.DeliveredToday,
		&stats.InTransit,
		&stats.Pending,
		&stats.AwaitingPay,
		&stats.TotalPartners,
		&stats.ActivePartners,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected stats repository stats error: %w", err)
	}

	return &stats, nil
}

func (r *Repository) RecentDeliveries(ctx context.Context, limit uint64) ([]entities.DeliveryOverview, error) {
	query, args, err := qb.
		Select(
			"d.id", "d.sender_name", "d.sender_address", "d.status", "d.payment_status",
			"d.total_stops", "d.total_amount", "p.first_name", "p.last_name",
			"d.created_at", "d.delivered_at",
		).
		From("deliveries d").
		LeftJoin("partners p ON p.id = d.partner_id").
		OrderBy("d.created_at DESC", "d.id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected stats repository recent error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected stats repository recent error: %w", err)
	}
	defer rows.Close()

	models := make([]DeliveryOverviewDB, 0, limit)
	for rows.Next() {
		var m DeliveryOverviewDB
		err := rows.Scan(
			&m.ID,
			&m.SenderName,
			&m.SenderAddress,
			&m.Status,
			&m.PaymentStatus,
			&m.TotalStops,
			&m.TotalAmount,
			&m.PartnerFirstName,
			&m.PartnerLastName,
			&m.CreatedAt,
			&m.DeliveredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected stats repository recent error: %w", err)
		}
		models = append(models, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected stats repository recent error: %w", err)
	}

	return ToDomainList(models), nil
}

// CountByStatus число доставок в каждом статусе, для gauge метрик.
func (r *Repository) CountByStatus(ctx context.Context) (map[entities.DeliveryStatusType]int64, error) {
	rows, err := r.querier.Query(ctx, `SELECT status, COUNT(*) FROM deliveries GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("unexpected stats repository count by status error: %w", err)
	}
	defer rows.Close()

	result := make(map[entities.DeliveryStatusType]int64)
	for rows.Next() {
		var m StatusCountDB
		if err := rows.Scan(&m.Status, &m.Count); err != nil {
			return nil, fmt.Errorf("unexpected stats repository count by status error: %w", err)
		}
		result[entities.DeliveryStatusType(m.Status)] = m.Count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected stats repository count by status error: %w", err)
	}

	return result, nil
}
