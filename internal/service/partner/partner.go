package partner

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"quickparcel/internal/entities"
)

type Partner struct {
	repository Repository
	hasher     PasswordHasher
}

func New(repository Repository, hasher PasswordHasher) *Partner {
	return &Partner{
		repository: repository,
		hasher:     hasher,
	}
}

// RegisterPartner новый партнёр сразу одобрен и стартует офлайн.
func (s *Partner) RegisterPartner(ctx context.Context, create entities.PartnerCreate) (*entities.Partner, error) {
	if err := validateCreate(create); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(create.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	partner, err := s.repository.Create(ctx, entities.Partner{
		FirstName:      strings.TrimSpace(create.FirstName),
		LastName:       strings.TrimSpace(create.LastName),
		Phone:          strings.TrimSpace(create.Phone),
		Email:          normalizeEmail(create.Email),
		VehicleType:    create.VehicleType,
		VehicleNumber:  strings.TrimSpace(create.VehicleNumber),
		DocumentNumber: strings.TrimSpace(create.DocumentNumber),
		PasswordHash:   hash,
		Status:         entities.DefaultPartnerStatus,
		Approved:       true,
	})
	if err != nil {
		return nil, fmt.Errorf("create partner: %w", err)
	}

	return partner, nil
}

// Authenticate не различает неизвестный email и неверный пароль.
func (s *Partner) Authenticate(ctx context.Context, email, password string) (*entities.Partner, error) {
	if email == "" || password == "" {
		return nil, ErrMissingRequiredFields
	}

	partner, err := s.repository.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrPartnerNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get partner: %w", err)
	}

	if err := s.hasher.Compare(partner.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return partner, nil
}

func (s *Partner) SetStatus(ctx context.Context, id string, status entities.PartnerStatusType) (*entities.Partner, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidPartnerID
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	partner, err := s.repository.Update(ctx, id, entities.PartnerModify{Status: &status})
	if err != nil {
		return nil, fmt.Errorf("failed to update partner: %w", err)
	}
	return partner, nil
}

func (s *Partner) GetPartner(ctx context.Context, id string) (*entities.Partner, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidPartnerID
	}

	partner, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get partner: %w", err)
	}

	return partner, nil
}

func (s *Partner) GetPartners(ctx context.Context) ([]entities.Partner, error) {
	partners, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get partners: %w", err)
	}

	return partners, nil
}
