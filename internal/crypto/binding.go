package crypto

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/style-keeper/models"
)

const (
	aadPurpose   = "style_profile"
	aadSeparator = ":"
)

var errAADMismatch = errors.New("stored aad does not match the requested context")

// AssociatedData returns the AAD binding a ciphertext to its owner:
// "{userID}:{platform}:style_profile".
func AssociatedData(userID, platform string) []byte {
	return []byte(userID + aadSeparator + platform + aadSeparator + aadPurpose)
}

// validateOwner rejects owners whose associated data would be ambiguous.
// With the separator banned from platform the last two AAD segments are
// fixed, so one AAD maps to exactly one (userID, platform) pair.
func validateOwner(userID, platform string) error {
	if userID == "" || platform == "" {
		return fmt.Errorf("%w: user id and platform are required", ErrValidation)
	}
	if strings.Contains(platform, aadSeparator) {
		return fmt.Errorf("%w: platform must not contain %q", ErrValidation, aadSeparator)
	}
	return nil
}

// boundRecord is the AAD variant of an encrypted record, resolved once per
// read: either the record carries the AAD used at encryption time, or it
// predates AAD persistence and the AAD is derived from the owner.
type boundRecord interface {
	associatedData(userID, platform string) ([]byte, error)
	legacy() bool
}

// recordWithAAD carries the exact AAD bytes persisted at encryption time.
type recordWithAAD struct {
	stored []byte
}

// associatedData returns the stored AAD after checking that it names the
// requested owner. A record of another tenant or platform is rejected here
// even before GCM verification.
func (r recordWithAAD) associatedData(userID, platform string) ([]byte, error) {
	expected := AssociatedData(userID, platform)
	if subtle.ConstantTimeCompare(expected, r.stored) != 1 {
		return nil, errAADMismatch
	}
	return r.stored, nil
}

func (recordWithAAD) legacy() bool { return false }

// legacyRecord was written before AAD was stored.
type legacyRecord struct{}

func (legacyRecord) associatedData(userID, platform string) ([]byte, error) {
	return AssociatedData(userID, platform), nil
}

func (legacyRecord) legacy() bool { return true }

func bindRecord(record models.EncryptedProfileRecord) boundRecord {
	if len(record.AAD) == 0 {
		return legacyRecord{}
	}
	return recordWithAAD{stored: record.AAD}
}
