package domain

import "errors"

var (
	// ErrMalformedConfig a stored configuration blob could not be decoded
	ErrMalformedConfig = errors.New("domain: malformed stored configuration")

	// ErrInvalidDateRange start or end is missing, or start is after end
	ErrInvalidDateRange = errors.New("domain: invalid date range")

	// ErrIndexOutOfRange no range at the requested position
	ErrIndexOutOfRange = errors.New("domain: date range index out of range")

	// ErrNoPendingRemoval confirm was called without a preceding removal request
	ErrNoPendingRemoval = errors.New("domain: no pending removal")
)
