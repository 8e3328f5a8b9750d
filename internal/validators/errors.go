package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrInvalidInput is matched by every rule violation reported by
	// StyleProfileValidator.
	ErrInvalidInput = errors.New("invalid input")

	ErrInvalidUserID     = errors.New("invalid user ID")
	ErrInvalidPlatform   = errors.New("unsupported platform")
	ErrInvalidAccountRef = errors.New("invalid account reference")
	ErrInvalidCount      = errors.New("invalid comment count")
)
