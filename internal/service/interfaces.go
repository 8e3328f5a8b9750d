package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/style-keeper/models"
)

// StyleProfileService orchestrates extraction, encrypted storage and
// retrieval of per-platform style profiles.
type StyleProfileService interface {
	// ExtractStyleProfile rebuilds the profile of userID on platform from the
	// recent comments of accountRef and stores it encrypted.
	//
	// Returns ErrValidation, *PlanRestrictionError, *InsufficientDataError,
	// or a wrapped collaborator, codec or store error.
	ExtractStyleProfile(ctx context.Context, userID, platform, accountRef string) (models.ExtractionResult, error)

	// GetStyleProfile returns the decrypted profile, or nil when there is none
	// or it cannot be read back. Only validation and context errors are
	// returned.
	GetStyleProfile(ctx context.Context, userID, platform string) (*models.StyleDescriptor, error)

	// NeedsRefresh reports whether the profile is missing or stale.
	NeedsRefresh(ctx context.Context, userID, platform string) (bool, error)

	// GetProfileMetadata returns the refresh bookkeeping, or nil when there
	// is no profile.
	GetProfileMetadata(ctx context.Context, userID, platform string) (*models.ProfileMetadata, error)

	// RecordUsage adds count generated comments to the profile's
	// comments-since-refresh counter.
	RecordUsage(ctx context.Context, userID, platform string, count int) error
}

// StyleProfileServiceWrapper decorates a StyleProfileService with additional
// behavior such as request validation.
type StyleProfileServiceWrapper interface {
	Wrap(StyleProfileService) StyleProfileService
}

type AuthService interface {
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
