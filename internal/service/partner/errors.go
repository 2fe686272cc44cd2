package partner

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidPartnerID      = errors.New("invalid partner id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidVehicle        = errors.New("invalid vehicle type")
	ErrWeakPassword          = errors.New("password must be at least 6 characters")

	ErrPartnerNotFound    = errors.New("partner not found")
	ErrConflict           = errors.New("partner with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
