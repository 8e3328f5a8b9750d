// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/MKhiriev/style-keeper/internal/adapter"
	"github.com/MKhiriev/style-keeper/internal/crypto"
	"github.com/MKhiriev/style-keeper/internal/logger"
	"github.com/MKhiriev/style-keeper/internal/store"
	"github.com/MKhiriev/style-keeper/internal/style"
	"github.com/MKhiriev/style-keeper/internal/utils"
	"github.com/MKhiriev/style-keeper/models"
)

const (
	// MinCommentsForProfile is the smallest sample a profile is built from.
	MinCommentsForProfile = 50
	// MaxCommentsForProfile caps the number of most recent comments analysed.
	MaxCommentsForProfile = 100
)

// styleProfileService is the concrete implementation of StyleProfileService.
// It holds no mutable state; concurrent extractions for the same pair are
// resolved by the repository upsert, last write wins.
type styleProfileService struct {
	repository store.StyleProfileRepository
	codec      crypto.Codec
	extractor  style.Extractor
	plans      adapter.PlanProvider
	comments   adapter.CommentFetcher

	policy RefreshPolicy
	now    func() time.Time

	logger *logger.Logger
}

// NewStyleProfileService constructs a StyleProfileService from its
// collaborators. Request validation is added by wrapping the result with
// NewStyleProfileValidationService.
func NewStyleProfileService(
	repository store.StyleProfileRepository,
	codec crypto.Codec,
	extractor style.Extractor,
	plans adapter.PlanProvider,
	comments adapter.CommentFetcher,
	logger *logger.Logger,
) StyleProfileService {
	return &styleProfileService{
		repository: repository,
		codec:      codec,
		extractor:  extractor,
		plans:      plans,
		comments:   comments,
		now:        time.Now,
		logger:     logger,
	}
}

// ExtractStyleProfile implements StyleProfileService.
//
// Steps: plan gate, comment fetch, sample size check, cap to the most recent
// MaxCommentsForProfile, extract, encrypt, upsert with a reset refresh state.
// Encryption and store failures abort the extraction.
func (s *styleProfileService) ExtractStyleProfile(ctx context.Context, userID, platform, accountRef string) (models.ExtractionResult, error) {
	log := logger.FromContext(ctx)

	if userID == "" || platform == "" || accountRef == "" {
		return models.ExtractionResult{}, fmt.Errorf("%w: user id, platform and account reference are required", ErrValidation)
	}

	plan, err := s.plans.GetUserPlan(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "styleProfileService.ExtractStyleProfile").Str("platform", platform).Msg("plan lookup failed")
		return models.ExtractionResult{}, fmt.Errorf("plan lookup: %w", err)
	}
	if !plan.AllowsStyleProfile() {
		log.Info().Str("platform", platform).Str("plan", string(plan)).Msg("style profile denied by plan")
		return models.ExtractionResult{}, &PlanRestrictionError{Plan: plan}
	}

	fetched, err := s.comments.FetchRecentComments(ctx, platform, accountRef)
	if err != nil {
		log.Err(err).Str("func", "styleProfileService.ExtractStyleProfile").Str("platform", platform).Msg("comment fetch failed")
		return models.ExtractionResult{}, fmt.Errorf("fetch comments: %w", err)
	}

	comments := selectComments(fetched)
	if len(comments) < MinCommentsForProfile {
		log.Info().
			Str("platform", platform).
			Int("fetched", len(fetched)).
			Int("usable", len(comments)).
			Msg("not enough comments for a style profile")
		return models.ExtractionResult{}, &InsufficientDataError{Actual: len(comments), Required: MinCommentsForProfile}
	}
	if len(comments) > MaxCommentsForProfile {
		comments = comments[:MaxCommentsForProfile]
	}

	texts := make([]string, len(comments))
	for i, c := range comments {
		texts[i] = c.Text
	}

	descriptor, err := s.extractor.Extract(ctx, texts)
	if err != nil {
		log.Err(err).Str("func", "styleProfileService.ExtractStyleProfile").Str("platform", platform).Msg("style extraction failed")
		return models.ExtractionResult{}, fmt.Errorf("extract style: %w", err)
	}

	record, err := s.codec.Encrypt(ctx, descriptor, userID, platform)
	if err != nil {
		return models.ExtractionResult{}, fmt.Errorf("encrypt style profile: %w", err)
	}
	record.LastRefresh = s.now().UTC()
	record.CommentsSinceRefresh = 0

	if err = s.repository.Upsert(ctx, record); err != nil {
		return models.ExtractionResult{}, fmt.Errorf("save style profile: %w", err)
	}

	log.Info().
		Str("platform", platform).
		Str("content_hash", utils.ContentHash(texts)).
		Int("fetched", len(fetched)).
		Int("analyzed", len(texts)).
		Msg("style profile extracted")

	return models.ExtractionResult{Success: true, CommentCount: len(texts)}, nil
}

// GetStyleProfile implements StyleProfileService.
//
// Read and decrypt failures are logged and reported as a missing profile;
// context cancellation is returned as is.
func (s *styleProfileService) GetStyleProfile(ctx context.Context, userID, platform string) (*models.StyleDescriptor, error) {
	log := logger.FromContext(ctx)

	if userID == "" || platform == "" {
		return nil, fmt.Errorf("%w: user id and platform are required", ErrValidation)
	}

	record, err := s.repository.Get(ctx, userID, platform)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if !errors.Is(err, store.ErrProfileNotFound) {
			log.Warn().Err(err).Str("platform", platform).Msg("style profile read failed, continuing without profile")
		}
		return nil, nil
	}

	descriptor, err := s.codec.Decrypt(ctx, record, userID, platform)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		log.Warn().Err(err).Str("platform", platform).Msg("style profile could not be decrypted, continuing without profile")
		return nil, nil
	}

	return &descriptor, nil
}

// NeedsRefresh implements StyleProfileService.
func (s *styleProfileService) NeedsRefresh(ctx context.Context, userID, platform string) (bool, error) {
	meta, err := s.GetProfileMetadata(ctx, userID, platform)
	if err != nil {
		return false, err
	}
	return s.policy.NeedsRefresh(meta, s.now()), nil
}

// GetProfileMetadata implements StyleProfileService.
func (s *styleProfileService) GetProfileMetadata(ctx context.Context, userID, platform string) (*models.ProfileMetadata, error) {
	if userID == "" || platform == "" {
		return nil, fmt.Errorf("%w: user id and platform are required", ErrValidation)
	}

	meta, err := s.repository.GetMetadata(ctx, userID, platform)
	if errors.Is(err, store.ErrProfileNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read style profile metadata: %w", err)
	}
	return &meta, nil
}

// RecordUsage implements StyleProfileService.
func (s *styleProfileService) RecordUsage(ctx context.Context, userID, platform string, count int) error {
	if userID == "" || platform == "" || count <= 0 {
		return fmt.Errorf("%w: user id, platform and a positive count are required", ErrValidation)
	}

	if err := s.repository.IncrementCommentCount(ctx, userID, platform, count); err != nil {
		return fmt.Errorf("record style profile usage: %w", err)
	}
	return nil
}

// selectComments drops self-generated comments and orders the rest
// newest first. Comments without a timestamp keep their relative position
// after the dated ones.
func selectComments(fetched []models.Comment) []models.Comment {
	comments := make([]models.Comment, 0, len(fetched))
	for _, c := range fetched {
		if c.IsSelfGenerated {
			continue
		}
		comments = append(comments, c)
	}

	sort.SliceStable(comments, func(i, j int) bool {
		a, b := comments[i].CreatedAt, comments[j].CreatedAt
		if a.IsZero() || b.IsZero() {
			return !a.IsZero() && b.IsZero()
		}
		return a.After(b)
	})
	return comments
}
