package booking

import "errors"

var (
	// ErrSessionNotFound indicates the booking session has expired or never existed.
	ErrSessionNotFound = errors.New("booking session not found or expired")

	// ErrNotReady indicates confirmation was attempted before a date and at
	// least one time slot were selected.
	ErrNotReady = errors.New("booking selection is not ready: a date and at least one time slot are required")
)
