package notification

import "errors"

var (
	ErrNoRecipient   = errors.New("notification has no recipient email")
	ErrInvalidStatus = errors.New("invalid delivery status")
)
