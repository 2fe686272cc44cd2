package entities

import "github.com/shopspring/decimal"

// PaymentOrder заказ на оплату, созданный в платёжном шлюзе.
type PaymentOrder struct {
	ID         string
	DeliveryID string
	Amount     decimal.Decimal
	// AmountMinor сумма в пайсах.
	AmountMinor int64
	Currency    string
	KeyID       string
}

// PaymentConfirmation то, что клиент вернул после оплаты на стороне шлюза.
type PaymentConfirmation struct {
	DeliveryID string
	OrderID    string
	PaymentID  string
	Signature  string
}

type GatewayPayment struct {
	ID          string
	OrderID     string
	AmountMinor int64
	Status      GatewayPaymentStatus
}

type GatewayPaymentStatus string

const (
	GatewayPaymentCreated    GatewayPaymentStatus = "created"
	GatewayPaymentAuthorized GatewayPaymentStatus = "authorized"
	GatewayPaymentCaptured   GatewayPaymentStatus = "captured"
	GatewayPaymentFailed     GatewayPaymentStatus = "failed"
	GatewayPaymentRefunded   GatewayPaymentStatus = "refunded"
)

// Settled деньги списаны или заблокированы у клиента.
func (s GatewayPaymentStatus) Settled() bool {
	return s == GatewayPaymentCaptured || s == GatewayPaymentAuthorized
}

// ToMinorUnits рубит сумму в пайсы, копейки после второго знака отбрасываются округлением.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
