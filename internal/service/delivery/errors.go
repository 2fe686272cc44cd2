package delivery

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDeliveryID     = errors.New("invalid delivery id")
	ErrInvalidPartnerID      = errors.New("invalid partner id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidAddress        = errors.New("invalid address")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidWeight         = errors.New("weight must be a non-negative number")
	ErrInvalidParcelType     = errors.New("invalid parcel type")
	ErrInvalidStopNumber     = errors.New("invalid stop number")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrTooManyStops          = errors.New("too many stops")

	ErrDeliveryNotFound = errors.New("delivery not found")
	ErrStopNotFound     = errors.New("stop not found")

	ErrNotDeliveryOwner = errors.New("delivery is not assigned to this partner")
	ErrPartnerOffline   = errors.New("partner must be online to accept deliveries")

	ErrDeliveryNotAvailable = errors.New("delivery is no longer available")
	ErrStopAlreadyDelivered = errors.New("stop already delivered")
	ErrStopsPending         = errors.New("all stops must be delivered before completing the delivery")
	ErrInvalidTransition    = errors.New("status transition is not allowed")
	ErrDeliveryConflict     = errors.New("delivery was modified concurrently")
)
