package service

import (
	"testing"
	"time"

	"github.com/MKhiriev/style-keeper/models"
	"github.com/stretchr/testify/assert"
)

func TestRefreshPolicy_NeedsRefresh(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	tests := []struct {
		name string
		meta *models.ProfileMetadata
		want bool
	}{
		{
			name: "no profile",
			meta: nil,
			want: true,
		},
		{
			name: "fresh profile",
			meta: &models.ProfileMetadata{LastRefresh: now.Add(-10 * day), CommentsSinceRefresh: 100},
			want: false,
		},
		{
			name: "89 days old",
			meta: &models.ProfileMetadata{LastRefresh: now.Add(-89 * day)},
			want: false,
		},
		{
			name: "exactly 90 days old",
			meta: &models.ProfileMetadata{LastRefresh: now.Add(-90 * day)},
			want: true,
		},
		{
			name: "91 days old",
			meta: &models.ProfileMetadata{LastRefresh: now.Add(-91 * day)},
			want: true,
		},
		{
			name: "499 comments",
			meta: &models.ProfileMetadata{LastRefresh: now.Add(-day), CommentsSinceRefresh: 499},
			want: false,
		},
		{
			name: "exactly 500 comments",
			meta: &models.ProfileMetadata{LastRefresh: now.Add(-day), CommentsSinceRefresh: 500},
			want: true,
		},
		{
			name: "refreshed in the future",
			meta: &models.ProfileMetadata{LastRefresh: now.Add(day)},
			want: false,
		},
	}

	var policy RefreshPolicy
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.NeedsRefresh(tt.meta, now))
		})
	}
}

func TestRefreshPolicy_CustomThresholds(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	policy := RefreshPolicy{MaxAge: time.Hour, MaxComments: 3}

	assert.True(t, policy.NeedsRefresh(&models.ProfileMetadata{LastRefresh: now.Add(-time.Hour)}, now))
	assert.True(t, policy.NeedsRefresh(&models.ProfileMetadata{LastRefresh: now, CommentsSinceRefresh: 3}, now))
	assert.False(t, policy.NeedsRefresh(&models.ProfileMetadata{LastRefresh: now, CommentsSinceRefresh: 2}, now))
}

func TestRefreshPolicy_DoesNotModifyMetadata(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	meta := &models.ProfileMetadata{LastRefresh: now.Add(-100 * 24 * time.Hour), CommentsSinceRefresh: 7}
	before := *meta

	RefreshPolicy{}.NeedsRefresh(meta, now)

	assert.Equal(t, before, *meta)
}
