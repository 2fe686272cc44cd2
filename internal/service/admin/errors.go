package admin

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrInvalidLimit          = errors.New("limit must be positive")
)
