package dto

import (
	"github.com/shopspring/decimal"
	"quickparcel/internal/entities"
)

type PaymentVerifyRequest struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

func (r PaymentVerifyRequest) ToDomain(deliveryID string) entities.PaymentConfirmation {
	return entities.PaymentConfirmation{
		DeliveryID: deliveryID,
		OrderID:    r.OrderID,
		PaymentID:  r.PaymentID,
		Signature:  r.Signature,
	}
}

type PaymentOrderResponse struct {
	Success     bool            `json:"success"`
	OrderID     string          `json:"order_id"`
	DeliveryID  string          `json:"delivery_id"`
	Amount      decimal.Decimal `json:"amount"`
	AmountMinor int64           `json:"amount_minor"`
	Currency    string          `json:"currency"`
	KeyID       string          `json:"key_id"`
}

func NewPaymentOrderResponse(o *entities.PaymentOrder) PaymentOrderResponse {
	return PaymentOrderResponse{
		Success:     true,
		OrderID:     o.ID,
		DeliveryID:  o.DeliveryID,
		Amount:      o.Amount,
		AmountMinor: o.AmountMinor,
		Currency:    o.Currency,
		KeyID:       o.KeyID,
	}
}
