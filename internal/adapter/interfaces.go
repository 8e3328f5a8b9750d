// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the external collaborators of the
// style profile service: the billing service answering plan lookups and the
// integrations service fetching platform comments.
//
// Both are reached over HTTP/REST. Error values defined in errors.go are
// mapped from HTTP status codes by mapHTTPError so that callers can use
// [errors.Is] for transport-agnostic error handling. Every collaborator
// failure also matches [ErrUpstream].
package adapter

import (
	"context"

	"github.com/MKhiriev/style-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// PlanProvider resolves the subscription plan of a user.
type PlanProvider interface {
	// GetUserPlan returns the current plan of userID.
	GetUserPlan(ctx context.Context, userID string) (models.Plan, error)
}

// CommentFetcher retrieves recent user-authored comments from a platform.
type CommentFetcher interface {
	// FetchRecentComments returns the most recent comments of accountRef on
	// platform, newest first. Content generated by this product is excluded
	// by the collaborator; the flag is still reported when known.
	FetchRecentComments(ctx context.Context, platform, accountRef string) ([]models.Comment, error)
}
