package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/style-keeper/models"
)

// StyleProfileRepository persists one encrypted style profile per
// (user, platform) pair together with its refresh bookkeeping.
//
// No method retries on failure; use IsRetryable on the returned error to
// decide whether a retry makes sense.
type StyleProfileRepository interface {
	// Upsert inserts the record or replaces the existing one for the same
	// pair. Concurrent writers for one pair are last-write-wins.
	Upsert(ctx context.Context, record models.EncryptedProfileRecord) error
	// Get returns the record or ErrProfileNotFound.
	Get(ctx context.Context, userID, platform string) (models.EncryptedProfileRecord, error)
	// GetMetadata returns the refresh bookkeeping or ErrProfileNotFound.
	GetMetadata(ctx context.Context, userID, platform string) (models.ProfileMetadata, error)
	// IncrementCommentCount adds n to the comments-since-refresh counter.
	IncrementCommentCount(ctx context.Context, userID, platform string, n int) error
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
