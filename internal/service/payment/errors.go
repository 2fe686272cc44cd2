package payment

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDeliveryID     = errors.New("invalid delivery id")

	ErrNotDeliveryOwner = errors.New("delivery is not assigned to this partner")

	ErrNotPayable      = errors.New("delivery is not awaiting payment")
	ErrAlreadyPaid     = errors.New("delivery is already paid")
	ErrNotCashPayment  = errors.New("cash payment was not selected for this delivery")
	ErrPaymentConflict = errors.New("payment state was modified concurrently")
	ErrInvalidAmount   = errors.New("amount due must be positive")

	ErrInvalidSignature   = errors.New("payment signature verification failed")
	ErrPaymentNotCaptured = errors.New("payment is not captured by the gateway")
	ErrAmountMismatch     = errors.New("paid amount does not match amount due")
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
)
