package admin

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"quickparcel/internal/entities"
)

const (
	DefaultRecentLimit = 20
	MaxRecentLimit     = 200
)

// Credentials единственная учётная запись администратора из конфига.
type Credentials struct {
	Email        string
	PasswordHash string
}

type Admin struct {
	repository     Repository
	partnerService PartnerService
	hasher         PasswordHasher
	credentials    Credentials
}

func New(
	repository Repository,
	partnerService PartnerService,
	hasher PasswordHasher,
	credentials Credentials,
) *Admin {
	return &Admin{
		repository:     repository,
		partnerService: partnerService,
		hasher:         hasher,
		credentials:    credentials,
	}
}

func (a *Admin) Authenticate(email, password string) error {
	if email == "" || password == "" {
		return ErrMissingRequiredFields
	}

	emailMatch := subtle.ConstantTimeCompare(
		[]byte(strings.ToLower(strings.TrimSpace(email))),
		[]byte(strings.ToLower(a.credentials.Email)),
	) == 1
	if a.hasher.Compare(a.credentials.PasswordHash, password) != nil || !emailMatch {
		return ErrInvalidCredentials
	}
	return nil
}

func (a *Admin) Stats(ctx context.Context) (*entities.DeliveryStats, error) {
	stats, err := a.repository.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	return stats, nil
}

// RecentDeliveries limit 0 означает DefaultRecentLimit, больше MaxRecentLimit обрезается.
func (a *Admin) RecentDeliveries(ctx context.Context, limit int) ([]entities.DeliveryOverview, error) {
	switch {
	case limit < 0:
		return nil, ErrInvalidLimit
	case limit == 0:
		limit = DefaultRecentLimit
	case limit > MaxRecentLimit:
		limit = MaxRecentLimit
	}

	deliveries, err := a.repository.RecentDeliveries(ctx, uint64(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to get recent deliveries: %w", err)
	}
	return deliveries, nil
}

func (a *Admin) Partners(ctx context.Context) ([]entities.Partner, error) {
	partners, err := a.partnerService.GetPartners(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get partners: %w", err)
	}
	return partners, nil
}
