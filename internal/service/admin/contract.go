//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_test
package admin

import (
	"context"

	"quickparcel/internal/entities"
)

type Repository interface {
	Stats(ctx context.Context) (*entities.DeliveryStats, error)
	RecentDeliveries(ctx context.Context, limit uint64) ([]entities.DeliveryOverview, error)
}

type PartnerService interface {
	GetPartners(ctx context.Context) ([]entities.Partner, error)
}

type PasswordHasher interface {
	Compare(hash, password string) error
}
