// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/style-keeper/internal/logger"
	"github.com/MKhiriev/style-keeper/models"
)

// styleProfileRepository is the PostgreSQL-backed implementation of
// [StyleProfileRepository] over the "style_profiles" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext]. User
// ids are never logged; only the platform and the error classification.
type styleProfileRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewStyleProfileRepository constructs a [StyleProfileRepository] backed by
// the provided database connection and logger.
func NewStyleProfileRepository(db *DB, logger *logger.Logger) StyleProfileRepository {
	logger.Debug().Msg("creating style profile repository")
	return &styleProfileRepository{
		db:     db,
		logger: logger,
	}
}

// Upsert implements [StyleProfileRepository].
func (r *styleProfileRepository) Upsert(ctx context.Context, record models.EncryptedProfileRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertProfile(encodeRecord(record))
	if err != nil {
		log.Err(err).Str("func", "*styleProfileRepository.Upsert").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*styleProfileRepository.Upsert").
			Str("platform", record.Platform).
			Str("pg_code", postgresError(err)).
			Bool("retryable", r.db.retryable(err)).
			Msg("error upserting style profile")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Get implements [StyleProfileRepository].
func (r *styleProfileRepository) Get(ctx context.Context, userID, platform string) (models.EncryptedProfileRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectProfile(userID, platform)
	if err != nil {
		log.Err(err).Str("func", "*styleProfileRepository.Get").Msg("error building query")
		return models.EncryptedProfileRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var row profileRow
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&row.UserID,
		&row.Platform,
		&row.Ciphertext,
		&row.IV,
		&row.AuthTag,
		&row.AAD,
		&row.LastRefresh,
		&row.CommentsSinceRefresh,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.EncryptedProfileRecord{}, ErrProfileNotFound
		}
		log.Err(err).
			Str("func", "*styleProfileRepository.Get").
			Str("platform", platform).
			Str("pg_code", postgresError(err)).
			Bool("retryable", r.db.retryable(err)).
			Msg("error reading style profile")
		return models.EncryptedProfileRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	record, err := row.decode()
	if err != nil {
		log.Err(err).Str("func", "*styleProfileRepository.Get").Str("platform", platform).Msg("stored style profile cannot be decoded")
		return models.EncryptedProfileRecord{}, err
	}

	return record, nil
}

// GetMetadata implements [StyleProfileRepository].
func (r *styleProfileRepository) GetMetadata(ctx context.Context, userID, platform string) (models.ProfileMetadata, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectMetadata(userID, platform)
	if err != nil {
		log.Err(err).Str("func", "*styleProfileRepository.GetMetadata").Msg("error building query")
		return models.ProfileMetadata{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var meta models.ProfileMetadata
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&meta.LastRefresh, &meta.CommentsSinceRefresh)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ProfileMetadata{}, ErrProfileNotFound
		}
		log.Err(err).
			Str("func", "*styleProfileRepository.GetMetadata").
			Str("platform", platform).
			Str("pg_code", postgresError(err)).
			Bool("retryable", r.db.retryable(err)).
			Msg("error reading style profile metadata")
		return models.ProfileMetadata{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return meta, nil
}

// IncrementCommentCount implements [StyleProfileRepository].
func (r *styleProfileRepository) IncrementCommentCount(ctx context.Context, userID, platform string, n int) error {
	log := logger.FromContext(ctx)

	if n <= 0 {
		return ErrInvalidIncrement
	}

	query, args, err := buildIncrementCommentCount(userID, platform, n)
	if err != nil {
		log.Err(err).Str("func", "*styleProfileRepository.IncrementCommentCount").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*styleProfileRepository.IncrementCommentCount").
			Str("platform", platform).
			Str("pg_code", postgresError(err)).
			Bool("retryable", r.db.retryable(err)).
			Msg("error incrementing comment counter")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrProfileNotFound
	}

	return nil
}
