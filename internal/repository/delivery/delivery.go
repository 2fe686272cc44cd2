package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"quickparcel/internal/entities"
	"quickparcel/internal/repository"
	"quickparcel/internal/service/delivery"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var errEmptyModify = errors.New("nothing to update")

const deliveryColumns = `id, sender_name, sender_address, sender_email, receiver_name, receiver_address,
	receiver_phone, parcel_type, weight, status, partner_id, total_stops, total_amount,
	payment_status, payment_method, created_at, accepted_at, updated_at, delivered_at`

const stopColumns = `id, delivery_id, stop_number, drop_address, receiver_name, receiver_phone,
	status, delivered_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create заводит доставку в статусе available. Получатель первой остановки
// дублируется в receiver_* для совместимости с выдачей трекинга.
func (r *Repository) Create(ctx context.Context, deliveryCreate entities.DeliveryCreate, totalAmount decimal.Decimal) (*entities.Delivery, error) {
	if len(deliveryCreate.Stops) == 0 {
		return nil, delivery.ErrMissingRequiredFields
	}

	var seq int64
	err := r.querier.QueryRow(ctx, `SELECT nextval('delivery_id_seq')`).Scan(&seq)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository next id error: %w", err)
	}

	primary := deliveryCreate.Stops[0]
	query := `
		INSERT INTO deliveries (id, sender_name, sender_address, sender_email, receiver_name,
			receiver_address, receiver_phone, parcel_type, weight, status, total_stops,
			total_amount, payment_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + deliveryColumns

	var deliveryDB DeliveryDB
	err = scanDelivery(r.querier.QueryRow(
		ctx,
		query,
		entities.NewDeliveryID(seq),
		deliveryCreate.SenderName,
		deliveryCreate.SenderAddress,
		deliveryCreate.SenderEmail,
		primary.ReceiverName,
		primary.DropAddress,
		primary.ReceiverPhone,
		deliveryCreate.ParcelType,
		deliveryCreate.Weight,
		entities.DeliveryAvailable.String(),
		len(deliveryCreate.Stops),
		totalAmount,
		entities.PaymentPending.String(),
	), &deliveryDB)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}

// CreateStops вставляет остановки одним батчем, номера 1..n по порядку среза.
func (r *Repository) CreateStops(ctx context.Context, deliveryID string, stops []entities.StopCreate) ([]entities.DeliveryStop, error) {
	if len(stops) == 0 {
		return []entities.DeliveryStop{}, nil
	}

	query := `
		INSERT INTO delivery_stops (delivery_id, stop_number, drop_address, receiver_name, receiver_phone, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + stopColumns

	batch := &pgx.Batch{}
	for i, stop := range stops {
		batch.Queue(query,
			deliveryID,
			i+1,
			stop.DropAddress,
			stop.ReceiverName,
			stop.ReceiverPhone,
			entities.StopPending.String(),
		)
	}

	results := r.querier.SendBatch(ctx, batch)
	defer results.Close()

	created := make([]entities.DeliveryStop, 0, len(stops))
	for range stops {
		var stopDB StopDB
		if err := scanStop(results.QueryRow(), &stopDB); err != nil {
			if repository.IsForeignKeyViolation(err) {
				return nil, delivery.ErrDeliveryNotFound
			}
			return nil, fmt.Errorf("unexpected delivery repository create stops error: %w", err)
		}
		created = append(created, StopToDomain(&stopDB))
	}

	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Delivery, error) {
	query := `SELECT ` + deliveryColumns + `
		FROM deliveries
		WHERE id = $1`

	var deliveryDB DeliveryDB
	err := scanDelivery(r.querier.QueryRow(ctx, query, id), &deliveryDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository getbyid error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}

func (r *Repository) GetByPartnerID(ctx context.Context, partnerID string) ([]entities.Delivery, error) {
	query := `SELECT ` + deliveryColumns + `
		FROM deliveries
		WHERE partner_id = $1
		ORDER BY created_at DESC, id DESC`

	return r.list(ctx, "getbypartnerid", query, partnerID)
}

func (r *Repository) GetAvailable(ctx context.Context) ([]entities.Delivery, error) {
	query := `SELECT ` + deliveryColumns + `
		FROM deliveries
		WHERE status = $1
		ORDER BY created_at DESC, id DESC`

	return r.list(ctx, "getavailable", query, entities.DeliveryAvailable.String())
}

func (r *Repository) GetStops(ctx context.Context, deliveryIDs []string) (map[string][]entities.DeliveryStop, error) {
	result := make(map[string][]entities.DeliveryStop, len(deliveryIDs))
	if len(deliveryIDs) == 0 {
		return result, nil
	}

	query := `SELECT ` + stopColumns + `
		FROM delivery_stops
		WHERE delivery_id = ANY($1)
		ORDER BY delivery_id, stop_number`

	rows, err := r.querier.Query(ctx, query, deliveryIDs)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository getstops error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var stopDB StopDB
		if err := scanStop(rows, &stopDB); err != nil {
			return nil, fmt.Errorf("unexpected delivery repository getstops error: %w", err)
		}
		result[stopDB.DeliveryID] = append(result[stopDB.DeliveryID], StopToDomain(&stopDB))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery repository getstops error: %w", err)
	}

	return result, nil
}

// UpdateIf одно условное UPDATE: конкурентные запросы сериализует сама строка,
// поэтому из двух одинаковых переходов проходит ровно один.
func (r *Repository) UpdateIf(ctx context.Context, id string, condition entities.DeliveryCondition, modify entities.DeliveryModify) (bool, error) {
	if modify == (entities.DeliveryModify{}) {
		return false, errEmptyModify
	}

	modifyDB := FromDomainModify(&modify)

	builder := qb.
		Update("deliveries")

	if modifyDB.Status != nil {
		builder = builder.Set("status", modifyDB.Status)
	}
	if modifyDB.PartnerID != nil {
		builder = builder.Set("partner_id", modifyDB.PartnerID)
	}
	if modifyDB.TotalAmount != nil {
		builder = builder.Set("total_amount", modifyDB.TotalAmount)
	}
	if modifyDB.PaymentStatus != nil {
		builder = builder.Set("payment_status", modifyDB.PaymentStatus)
	}
	if modifyDB.PaymentMethod != nil {
		builder = builder.Set("payment_method", modifyDB.PaymentMethod)
	}
	if modifyDB.AcceptedAt != nil {
		builder = builder.Set("accepted_at", modifyDB.AcceptedAt)
	}
	if modifyDB.UpdatedAt != nil {
		builder = builder.Set("updated_at", modifyDB.UpdatedAt)
	}
	if modifyDB.DeliveredAt != nil {
		builder = builder.Set("delivered_at", modifyDB.DeliveredAt)
	}

	builder = builder.Where(sq.Eq{"id": id})
	for _, predicate := range conditionPredicates(condition) {
		builder = builder.Where(predicate)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return false, fmt.Errorf("unexpected delivery repository updateif error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("unexpected delivery repository updateif error: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

// MarkStopDelivered отмечает только pending остановку, повторная отметка даёт ErrStopAlreadyDelivered.
func (r *Repository) MarkStopDelivered(ctx context.Context, deliveryID string, stopNumber int, deliveredAt time.Time) error {
	query := `
		UPDATE delivery_stops
		SET status = $1, delivered_at = $2
		WHERE delivery_id = $3 AND stop_number = $4 AND status = $5
	`

	tag, err := r.querier.Exec(ctx, query,
		entities.StopDelivered.String(),
		deliveredAt,
		deliveryID,
		stopNumber,
		entities.StopPending.String(),
	)
	if err != nil {
		return fmt.Errorf("unexpected delivery repository mark stop error: %w", err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var status string
	err = r.querier.QueryRow(ctx,
		`SELECT status FROM delivery_stops WHERE delivery_id = $1 AND stop_number = $2`,
		deliveryID, stopNumber,
	).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return delivery.ErrStopNotFound
		}
		return fmt.Errorf("unexpected delivery repository mark stop error: %w", err)
	}

	return delivery.ErrStopAlreadyDelivered
}

func (r *Repository) CountDeliveredStops(ctx context.Context, deliveryID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM delivery_stops
		WHERE delivery_id = $1 AND status = $2
	`

	var count int
	err := r.querier.QueryRow(ctx, query, deliveryID, entities.StopDelivered.String()).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected delivery repository count stops error: %w", err)
	}

	return count, nil
}

func (r *Repository) list(ctx context.Context, op, query string, args ...any) ([]entities.Delivery, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository %s error: %w", op, err)
	}
	defer rows.Close()

	deliveryModels := make([]DeliveryDB, 0, 8)
	for rows.Next() {
		var deliveryDB DeliveryDB
		if err := scanDelivery(rows, &deliveryDB); err != nil {
			return nil, fmt.Errorf("unexpected delivery repository %s error: %w", op, err)
		}
		deliveryModels = append(deliveryModels, deliveryDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery repository %s error: %w", op, err)
	}

	return ToDomainList(deliveryModels), nil
}

func conditionPredicates(condition entities.DeliveryCondition) []sq.Sqlizer {
	predicates := make([]sq.Sqlizer, 0, 4)

	if len(condition.Status) > 0 {
		statuses := make([]string, len(condition.Status))
		for i, status := range condition.Status {
			statuses[i] = status.String()
		}
		predicates = append(predicates, sq.Eq{"status": statuses})
	}
	if len(condition.PaymentStatus) > 0 {
		paymentStatuses := make([]string, len(condition.PaymentStatus))
		for i, status := range condition.PaymentStatus {
			paymentStatuses[i] = status.String()
		}
		predicates = append(predicates, sq.Eq{"payment_status": paymentStatuses})
	}
	if condition.PartnerID != nil {
		predicates = append(predicates, sq.Eq{"partner_id": *condition.PartnerID})
	}
	if condition.PaymentMethod != nil {
		predicates = append(predicates, sq.Eq{"payment_method": condition.PaymentMethod.String()})
	}

	return predicates
}

func scanDelivery(row pgx.Row, d *DeliveryDB) error {
	return row.Scan(
		&d.ID,
		&d.SenderName,
		&d.SenderAddress,
		&d.SenderEmail,
		&d.ReceiverName,
		&d.ReceiverAddress,
		&d.ReceiverPhone,
		&d.ParcelType,
		&d.Weight,
		&d.Status,
		&d.PartnerID,
		&d.TotalStops,
		&d.TotalAmount,
		&d.PaymentStatus,
		&d.PaymentMethod,
		&d.CreatedAt,
		&d.AcceptedAt,
		&d.UpdatedAt,
		&d.DeliveredAt,
	)
}

func scanStop(row pgx.Row, s *StopDB) error {
	return row.Scan(
		&s.ID,
		&s.DeliveryID,
		&s.StopNumber,
		&s.DropAddress,
		&s.ReceiverName,
		&s.ReceiverPhone,
		&s.Status,
		&s.DeliveredAt,
	)
}
