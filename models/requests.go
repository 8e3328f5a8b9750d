// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ProfileKey addresses a single style profile.
type ProfileKey struct {
	UserID   string `json:"user_id" validate:"required,max=128"`
	Platform string `json:"platform" validate:"required,platform"`
}

// ExtractRequest is the input of a style profile extraction.
type ExtractRequest struct {
	ProfileKey
	// AccountRef identifies the user's account on the platform (handle,
	// channel id, ...). Interpreted only by the comment fetcher.
	AccountRef string `json:"account_ref" validate:"required,max=256"`
}

// UsageRequest reports newly generated comments for a profile.
type UsageRequest struct {
	ProfileKey
	Count int `json:"count" validate:"gte=1,lte=10000"`
}

// ExtractionResult is returned by a successful extraction.
type ExtractionResult struct {
	Success      bool `json:"success"`
	CommentCount int  `json:"comment_count"`
}

// RefreshStatus is the HTTP representation of a refresh decision.
type RefreshStatus struct {
	NeedsRefresh bool `json:"needs_refresh"`
}
