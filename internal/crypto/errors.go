package crypto

import "errors"

var (
	// ErrConfiguration is returned by LoadKey when the key is absent or
	// malformed. It is fatal: the service must not start.
	ErrConfiguration = errors.New("style profile encryption key is invalid")

	// ErrValidation is returned before any cryptographic work when required
	// identifiers are missing or the encrypted record is malformed.
	ErrValidation = errors.New("invalid style profile encryption input")

	// ErrDecryption is the single opaque error for every authentication or
	// decoding failure on the read path.
	ErrDecryption = errors.New("failed to decrypt style profile: data may be corrupted or tampered with")

	// ErrEncryption is returned when sealing fails (random source or
	// serialization failure).
	ErrEncryption = errors.New("failed to encrypt style profile")
)
