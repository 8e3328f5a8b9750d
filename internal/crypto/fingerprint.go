package crypto

import (
	"encoding/hex"

	"github.com/MKhiriev/style-keeper/internal/utils"
)

const (
	fingerprintInfo   = "style-keeper/log-fingerprint/v1"
	fingerprintLength = 12
)

// Fingerprinter produces short keyed, non-reversible identifiers that are
// safe to write to logs in place of user ids.
type Fingerprinter struct {
	key string
}

// NewFingerprinter derives the fingerprint subkey from key.
func NewFingerprinter(key *Key) (*Fingerprinter, error) {
	subkey, err := key.deriveSubkey(fingerprintInfo, KeySize)
	if err != nil {
		return nil, err
	}
	return &Fingerprinter{key: hex.EncodeToString(subkey)}, nil
}

// Fingerprint returns a truncated HMAC-SHA256 of value.
func (f *Fingerprinter) Fingerprint(value string) string {
	return utils.HashString(value, f.key)[:fingerprintLength]
}
