package distance

import "errors"

var (
	ErrNotConfigured = errors.New("distance api key is not configured")
	ErrNoRoute       = errors.New("no route between addresses")
	ErrBadStatus     = errors.New("distance api returned non-OK status")
)
