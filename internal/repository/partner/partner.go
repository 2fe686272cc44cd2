package partner

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"quickparcel/internal/entities"
	"quickparcel/internal/repository"
	"quickparcel/internal/service/partner"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const partnerColumns = `id, first_name, last_name, phone, email, vehicle_type, vehicle_number,
	document_number, password_hash, status, approved, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create присваивает партнёру id из partner_id_seq, переданный ID игнорируется.
func (r *Repository) Create(ctx context.Context, partnerEntity entities.Partner) (*entities.Partner, error) {
	var seq int64
	err := r.querier.QueryRow(ctx, `SELECT nextval('partner_id_seq')`).Scan(&seq)
	if err != nil {
		return nil, fmt.Errorf("unexpected partner repository next id error: %w", err)
	}
	partnerEntity.ID = entities.NewPartnerID(seq)

	partnerModel := FromDomain(&partnerEntity)
	query := `INSERT INTO partners (` + partnerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + partnerColumns

	var created PartnerDB
	err = scanPartner(r.querier.QueryRow(
		ctx,
		query,
		partnerModel.ID,
		partnerModel.FirstName,
		partnerModel.LastName,
		partnerModel.Phone,
		partnerModel.Email,
		partnerModel.VehicleType,
		partnerModel.VehicleNumber,
		partnerModel.DocumentNumber,
		partnerModel.PasswordHash,
		partnerModel.Status,
		partnerModel.Approved,
		partnerModel.CreatedAt,
	), &created)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, partner.ErrConflict
		}
		return nil, fmt.Errorf("unexpected partner repository create error: %w", err)
	}

	return ToDomain(&created), nil
}

func (r *Repository) Update(ctx context.Context, id string, partnerModifyEntity entities.PartnerModify) (*entities.Partner, error) {
	// пустой SET squirrel не соберёт, поэтому без изменений просто перечитываем
	if partnerModifyEntity == (entities.PartnerModify{}) {
		return r.GetByID(ctx, id)
	}

	partnerModifyModel := FromDomainModify(&partnerModifyEntity)

	builder := qb.
		Update("partners")

	// опционнные поля
	if partnerModifyModel.FirstName != nil {
		builder = builder.Set("first_name", partnerModifyModel.FirstName)
	}
	if partnerModifyModel.LastName != nil {
		builder = builder.Set("last_name", partnerModifyModel.LastName)
	}
	if partnerModifyModel.Phone != nil {
		builder = builder.Set("phone", partnerModifyModel.Phone)
	}
	if partnerModifyModel.Status != nil {
		builder = builder.Set("status", partnerModifyModel.Status)
	}
	if partnerModifyModel.VehicleType != nil {
		builder = builder.Set("vehicle_type", partnerModifyModel.VehicleType)
	}
	if partnerModifyModel.VehicleNumber != nil {
		builder = builder.Set("vehicle_number", partnerModifyModel.VehicleNumber)
	}
	if partnerModifyModel.Approved != nil {
		builder = builder.Set("approved", partnerModifyModel.Approved)
	}

	builder = builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + partnerColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected partner repository update error: %w", err)
	}

	var partnerModel PartnerDB
	err = scanPartner(r.querier.QueryRow(ctx, query, args...), &partnerModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, partner.ErrPartnerNotFound
		}
		if repository.IsUniqueViolation(err) {
			return nil, partner.ErrConflict
		}

		return nil, fmt.Errorf("unexpected partner repository update error: %w", err)
	}

	return ToDomain(&partnerModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Partner, error) {
	query := `SELECT ` + partnerColumns + `
		FROM partners
		WHERE id = $1`

	var partnerModel PartnerDB
	err := scanPartner(r.querier.QueryRow(ctx, query, id), &partnerModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, partner.ErrPartnerNotFound
		}

		return nil, fmt.Errorf("unexpected partner repository getbyid error: %w", err)
	}

	return ToDomain(&partnerModel), nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.Partner, error) {
	query := `SELECT ` + partnerColumns + `
		FROM partners
		WHERE email = $1`

	var partnerModel PartnerDB
	err := scanPartner(r.querier.QueryRow(ctx, query, email), &partnerModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, partner.ErrPartnerNotFound
		}

		return nil, fmt.Errorf("unexpected partner repository getbyemail error: %w", err)
	}

	return ToDomain(&partnerModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Partner, error) {
	query := `
	SELECT ` + partnerColumns + `
	FROM partners
	ORDER BY created_at DESC, id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected partner repository getall error: %w", err)
	}
	defer rows.Close()

	partnerModels := make([]PartnerDB, 0, 8)
	for rows.Next() {
		var partnerModel PartnerDB
		if err := scanPartner(rows, &partnerModel); err != nil {
			return nil, fmt.Errorf("unexpected partner repository getall error: %w", err)
		}
		partnerModels = append(partnerModels, partnerModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected partner repository getall error: %w", err)
	}

	return ToDomainList(partnerModels), nil
}

func scanPartner(row pgx.Row, p *PartnerDB) error {
	return row.Scan(
		&p.ID,
		&p.FirstName,
		&p.LastName,
		&p.Phone,
		&p.Email,
		&p.VehicleType,
		&p.VehicleNumber,
		&p.DocumentNumber,
		&p.PasswordHash,
		&p.Status,
		&p.Approved,
		&p.CreatedAt,
	)
}
