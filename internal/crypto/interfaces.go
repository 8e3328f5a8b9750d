// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto owns the style profile encryption key and the
// authenticated codec that seals descriptors at rest.
//
// The key is validated once by [LoadKey]; a [Codec] can only be built from a
// validated [*Key], so no encryption or decryption can run before the key has
// passed validation.
//
// Every ciphertext is bound to its (user, platform) owner through AES-GCM
// associated data. The key is shared by all tenants, so the associated data
// is what stops a record of one tenant or platform from being accepted as
// another's.
package crypto

import (
	"context"

	"github.com/MKhiriev/style-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/codec_mock.go -package=mock

// Codec encrypts and decrypts style descriptors bound to their owner.
type Codec interface {
	// Encrypt serializes descriptor to JSON and seals it with a fresh random
	// IV. The returned record carries ciphertext, IV, auth tag and the AAD
	// bytes; refresh bookkeeping fields are left zero for the caller.
	// Returns ErrValidation when userID or platform is empty.
	Encrypt(ctx context.Context, descriptor models.StyleDescriptor, userID, platform string) (models.EncryptedProfileRecord, error)

	// Decrypt verifies and opens record for the given owner.
	// Returns ErrValidation for missing identifiers or a malformed record
	// and ErrDecryption for every cryptographic failure.
	Decrypt(ctx context.Context, record models.EncryptedProfileRecord, userID, platform string) (models.StyleDescriptor, error)
}
