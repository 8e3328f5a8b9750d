// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EncryptedProfileRecord is the persisted form of a [StyleDescriptor].
// At most one live record exists per (UserID, Platform) pair.
type EncryptedProfileRecord struct {
	UserID   string `json:"user_id"`
	Platform string `json:"platform"`

	// Ciphertext is the AES-256-GCM output without the authentication tag.
	Ciphertext []byte `json:"-"`
	// IV is the 16-byte nonce, unique per encryption.
	IV []byte `json:"-"`
	// AuthTag is the 16-byte GCM authentication tag.
	AuthTag []byte `json:"-"`
	// AAD holds the exact associated data bound at encryption time.
	// Records written before AAD was persisted leave it nil.
	AAD []byte `json:"-"`

	LastRefresh          time.Time `json:"last_refresh"`
	CommentsSinceRefresh int       `json:"comments_since_refresh"`
}

// ProfileMetadata is the refresh bookkeeping of a stored profile.
type ProfileMetadata struct {
	LastRefresh          time.Time `json:"last_refresh"`
	CommentsSinceRefresh int       `json:"comments_since_refresh"`
}
