package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/style-keeper/internal/validators"
	"github.com/MKhiriev/style-keeper/models"
)

// StyleProfileValidationService validates identifiers and platforms before
// delegating to the wrapped StyleProfileService. Every rejection matches
// ErrValidation.
type StyleProfileValidationService struct {
	inner     StyleProfileService
	validator validators.Validator
}

func NewStyleProfileValidationService(validator validators.Validator) StyleProfileServiceWrapper {
	return &StyleProfileValidationService{
		validator: validator,
	}
}

func (v *StyleProfileValidationService) ExtractStyleProfile(ctx context.Context, userID, platform, accountRef string) (models.ExtractionResult, error) {
	req := models.ExtractRequest{
		ProfileKey: models.ProfileKey{UserID: userID, Platform: platform},
		AccountRef: accountRef,
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.ExtractionResult{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.ExtractStyleProfile(ctx, userID, platform, accountRef)
}

func (v *StyleProfileValidationService) GetStyleProfile(ctx context.Context, userID, platform string) (*models.StyleDescriptor, error) {
	if err := v.validateKey(ctx, userID, platform); err != nil {
		return nil, err
	}

	return v.inner.GetStyleProfile(ctx, userID, platform)
}

func (v *StyleProfileValidationService) NeedsRefresh(ctx context.Context, userID, platform string) (bool, error) {
	if err := v.validateKey(ctx, userID, platform); err != nil {
		return false, err
	}

	return v.inner.NeedsRefresh(ctx, userID, platform)
}

func (v *StyleProfileValidationService) GetProfileMetadata(ctx context.Context, userID, platform string) (*models.ProfileMetadata, error) {
	if err := v.validateKey(ctx, userID, platform); err != nil {
		return nil, err
	}

	return v.inner.GetProfileMetadata(ctx, userID, platform)
}

func (v *StyleProfileValidationService) RecordUsage(ctx context.Context, userID, platform string, count int) error {
	req := models.UsageRequest{
		ProfileKey: models.ProfileKey{UserID: userID, Platform: platform},
		Count:      count,
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.RecordUsage(ctx, userID, platform, count)
}

func (v *StyleProfileValidationService) Wrap(wrapped StyleProfileService) StyleProfileService {
	v.inner = wrapped
	return v
}

func (v *StyleProfileValidationService) validateKey(ctx context.Context, userID, platform string) error {
	if err := v.validator.Validate(ctx, models.ProfileKey{UserID: userID, Platform: platform}); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}
