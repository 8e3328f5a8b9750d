package service

import (
	"time"

	"github.com/MKhiriev/style-keeper/models"
)

const (
	// MaxProfileAge is the age at which a profile is considered stale.
	MaxProfileAge = 90 * 24 * time.Hour
	// MaxCommentsSinceRefresh is the number of generated comments after
	// which a profile is considered stale.
	MaxCommentsSinceRefresh = 500
)

// RefreshPolicy decides whether a stored profile should be rebuilt.
// The zero value applies MaxProfileAge and MaxCommentsSinceRefresh.
type RefreshPolicy struct {
	MaxAge      time.Duration
	MaxComments int
}

// NeedsRefresh reports true when meta is nil, when the profile is at least
// MaxAge old at now, or when at least MaxComments were generated since the
// last refresh.
func (p RefreshPolicy) NeedsRefresh(meta *models.ProfileMetadata, now time.Time) bool {
	if meta == nil {
		return true
	}

	maxAge := p.MaxAge
	if maxAge <= 0 {
		maxAge = MaxProfileAge
	}
	maxComments := p.MaxComments
	if maxComments <= 0 {
		maxComments = MaxCommentsSinceRefresh
	}

	if now.Sub(meta.LastRefresh) >= maxAge {
		return true
	}
	return meta.CommentsSinceRefresh >= maxComments
}
