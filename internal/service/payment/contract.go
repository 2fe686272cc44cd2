//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
package payment

import (
	"context"

	"github.com/shopspring/decimal"
	"quickparcel/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*entities.Delivery, error)
	UpdateIf(ctx context.Context, id string, condition entities.DeliveryCondition, modify entities.DeliveryModify) (bool, error)
}

type DeliveryService interface {
	AmountDue(ctx context.Context, deliveryID string) (*entities.Delivery, decimal.Decimal, error)
}

type Gateway interface {
	CreateOrder(ctx context.Context, amountMinor int64, receipt string) (*entities.PaymentOrder, error)
	FetchPayment(ctx context.Context, paymentID string) (*entities.GatewayPayment, error)
}

type Notifier interface {
	Notify(ctx context.Context, notification entities.StatusNotification)
}
