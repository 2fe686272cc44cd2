//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=partner_test
package partner

import (
	"context"

	"quickparcel/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, partner entities.Partner) (*entities.Partner, error)
	GetByID(ctx context.Context, id string) (*entities.Partner, error)
	GetByEmail(ctx context.Context, email string) (*entities.Partner, error)
	GetAll(ctx context.Context) ([]entities.Partner, error)
	Update(ctx context.Context, id string, partnerModify entities.PartnerModify) (*entities.Partner, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
