package pricing

import "errors"

var (
	ErrMissingPickup  = errors.New("pickup address is required")
	ErrMissingStops   = errors.New("at least one drop address is required")
	ErrEmptyDropStop  = errors.New("drop address must not be empty")
	ErrInvalidWeight  = errors.New("weight must be a non-negative number")
	ErrNegativeTariff = errors.New("tariff values must be non-negative")
)
