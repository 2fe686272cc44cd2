//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"quickparcel/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, deliveryCreate entities.DeliveryCreate, totalAmount decimal.Decimal) (*entities.Delivery, error)
	CreateStops(ctx context.Context, deliveryID string, stops []entities.StopCreate) ([]entities.DeliveryStop, error)
	GetByID(ctx context.Context, id string) (*entities.Delivery, error)
	GetByPartnerID(ctx context.Context, partnerID string) ([]entities.Delivery, error)
	GetAvailable(ctx context.Context) ([]entities.Delivery, error)
	GetStops(ctx context.Context, deliveryIDs []string) (map[string][]entities.DeliveryStop, error)
	// UpdateIf применяет modify, только если строка всё ещё удовлетворяет condition.
	// false означает, что условие уже нарушено конкурентным изменением.
	UpdateIf(ctx context.Context, id string, condition entities.DeliveryCondition, modify entities.DeliveryModify) (bool, error)
	MarkStopDelivered(ctx context.Context, deliveryID string, stopNumber int, deliveredAt time.Time) error
	CountDeliveredStops(ctx context.Context, deliveryID string) (int, error)
}

type PartnerService interface {
	GetPartner(ctx context.Context, id string) (*entities.Partner, error)
}

type PriceCalculator interface {
	Quote(ctx context.Context, req entities.PriceQuoteRequest) (*entities.PriceBreakdown, error)
}

// Notifier не возвращает ошибку: уведомление не должно ломать переход статуса.
type Notifier interface {
	Notify(ctx context.Context, notification entities.StatusNotification)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
