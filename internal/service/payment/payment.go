package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"quickparcel/internal/entities"
)

type Payment struct {
	repository      Repository
	deliveryService DeliveryService
	gateway         Gateway
	notifier        Notifier
	secret          string
}

func New(
	repository Repository,
	deliveryService DeliveryService,
	gateway Gateway,
	notifier Notifier,
	secret string,
) *Payment {
	return &Payment{
		repository:      repository,
		deliveryService: deliveryService,
		gateway:         gateway,
		notifier:        notifier,
		secret:          secret,
	}
}

// CreateOrder заводит в шлюзе заказ на сумму к оплате.
func (p *Payment) CreateOrder(ctx context.Context, deliveryID string) (*entities.PaymentOrder, error) {
	if strings.TrimSpace(deliveryID) == "" {
		return nil, ErrInvalidDeliveryID
	}

	delivery, amount, err := p.deliveryService.AmountDue(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("amount due: %w", err)
	}
	if delivery.PaymentStatus == entities.PaymentPaid {
		return nil, ErrAlreadyPaid
	}
	if !delivery.Payable() {
		return nil, ErrNotPayable
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	order, err := p.gateway.CreateOrder(ctx, entities.ToMinorUnits(amount), deliveryID)
	if err != nil {
		return nil, fmt.Errorf("create gateway order: %w: %w", ErrGatewayUnavailable, err)
	}

	order.DeliveryID = deliveryID
	order.Amount = amount
	return order, nil
}

// ConfirmOnlinePayment проверяет подпись и статус платежа в шлюзе,
// после чего одним условным обновлением переводит доставку в paid + completed.
func (p *Payment) ConfirmOnlinePayment(ctx context.Context, confirmation entities.PaymentConfirmation) (*entities.Delivery, error) {
	if confirmation.DeliveryID == "" ||
		confirmation.OrderID == "" ||
		confirmation.PaymentID == "" ||
		confirmation.Signature == "" {
		return nil, ErrMissingRequiredFields
	}

	proof := paymentProof{
		orderID:   confirmation.OrderID,
		paymentID: confirmation.PaymentID,
		signature: confirmation.Signature,
	}
	if !validSignature(p.secret, proof) {
		return nil, ErrInvalidSignature
	}

	delivery, amount, err := p.deliveryService.AmountDue(ctx, confirmation.DeliveryID)
	if err != nil {
		return nil, fmt.Errorf("amount due: %w", err)
	}
	if delivery.PaymentStatus == entities.PaymentPaid {
		return nil, ErrAlreadyPaid
	}
	if !delivery.Payable() {
		return nil, ErrNotPayable
	}

	gatewayPayment, err := p.gateway.FetchPayment(ctx, confirmation.PaymentID)
	if err != nil {
		return nil, fmt.Errorf("fetch payment: %w: %w", ErrGatewayUnavailable, err)
	}
	if gatewayPayment.OrderID != confirmation.OrderID || !gatewayPayment.Status.Settled() {
		return nil, ErrPaymentNotCaptured
	}
	if gatewayPayment.AmountMinor != entities.ToMinorUnits(amount) {
		return nil, ErrAmountMismatch
	}

	now := time.Now().UTC()
	completed := entities.DeliveryCompleted
	paid := entities.PaymentPaid
	online := entities.PaymentOnline
	ok, err := p.repository.UpdateIf(ctx, confirmation.DeliveryID,
		entities.DeliveryCondition{
			Status:        []entities.DeliveryStatusType{entities.DeliveryDelivered},
			PaymentStatus: []entities.PaymentStatusType{entities.PaymentPending},
		},
		entities.DeliveryModify{
			Status:        &completed,
			PaymentStatus: &paid,
			PaymentMethod: &online,
			TotalAmount:   &amount,
			UpdatedAt:     &now,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("confirm online payment: %w", err)
	}
	if !ok {
		return nil, p.conflictReason(ctx, confirmation.DeliveryID)
	}

	return p.completed(ctx, confirmation.DeliveryID, now)
}

// SelectCash клиент выбирает оплату наличными. Статус доставки не меняется.
func (p *Payment) SelectCash(ctx context.Context, deliveryID string) (*entities.Delivery, error) {
	if strings.TrimSpace(deliveryID) == "" {
		return nil, ErrInvalidDeliveryID
	}

	delivery, err := p.repository.GetByID(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get delivery: %w", err)
	}
	if delivery.PaymentStatus == entities.PaymentPaid {
		return nil, ErrAlreadyPaid
	}
	if !delivery.Payable() {
		return nil, ErrNotPayable
	}

	now := time.Now().UTC()
	pendingCash := entities.PaymentPendingCash
	cash := entities.PaymentCash
	ok, err := p.repository.UpdateIf(ctx, deliveryID,
		entities.DeliveryCondition{
			Status:        []entities.DeliveryStatusType{entities.DeliveryDelivered},
			PaymentStatus: []entities.PaymentStatusType{entities.PaymentPending},
		},
		entities.DeliveryModify{
			PaymentStatus: &pendingCash,
			PaymentMethod: &cash,
			UpdatedAt:     &now,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("select cash payment: %w", err)
	}
	if !ok {
		return nil, p.conflictReason(ctx, deliveryID)
	}

	selected, err := p.repository.GetByID(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get delivery: %w", err)
	}
	return selected, nil
}

// ConfirmCash партнёр подтверждает, что получил наличные.
func (p *Payment) ConfirmCash(ctx context.Context, partnerID, deliveryID string) (*entities.Delivery, error) {
	if strings.TrimSpace(partnerID) == "" || strings.TrimSpace(deliveryID) == "" {
		return nil, ErrMissingRequiredFields
	}

	delivery, amount, err := p.deliveryService.AmountDue(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("amount due: %w", err)
	}
	if !delivery.AssignedTo(partnerID) {
		return nil, ErrNotDeliveryOwner
	}
	if delivery.PaymentStatus == entities.PaymentPaid {
		return nil, ErrAlreadyPaid
	}
	if delivery.PaymentMethod == nil || *delivery.PaymentMethod != entities.PaymentCash {
		return nil, ErrNotCashPayment
	}

	now := time.Now().UTC()
	completed := entities.DeliveryCompleted
	paid := entities.PaymentPaid
	cash := entities.PaymentCash
	ok, err := p.repository.UpdateIf(ctx, deliveryID,
		entities.DeliveryCondition{
			PaymentStatus: []entities.PaymentStatusType{entities.PaymentPendingCash},
			PartnerID:     &partnerID,
			PaymentMethod: &cash,
		},
		entities.DeliveryModify{
			Status:        &completed,
			PaymentStatus: &paid,
			TotalAmount:   &amount,
			UpdatedAt:     &now,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("confirm cash payment: %w", err)
	}
	if !ok {
		return nil, p.conflictReason(ctx, deliveryID)
	}

	return p.completed(ctx, deliveryID, now)
}

func (p *Payment) completed(ctx context.Context, deliveryID string, at time.Time) (*entities.Delivery, error) {
	delivery, err := p.repository.GetByID(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get delivery: %w", err)
	}

	p.notifier.Notify(ctx, entities.NewStatusNotification(delivery, at))
	return delivery, nil
}

// conflictReason уточняет, почему условное обновление не прошло.
func (p *Payment) conflictReason(ctx context.Context, deliveryID string) error {
	delivery, err := p.repository.GetByID(ctx, deliveryID)
	if err != nil {
		return errors.Join(ErrPaymentConflict, err)
	}
	if delivery.PaymentStatus == entities.PaymentPaid {
		return ErrAlreadyPaid
	}
	return ErrPaymentConflict
}
