// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/style-keeper/internal/logger"
	"github.com/MKhiriev/style-keeper/models"
)

const (
	// IVSize is the GCM nonce length used for style profiles (128 bits).
	IVSize = 16
	// TagSize is the GCM authentication tag length (128 bits).
	TagSize = 16
)

// aesGCMCodec is the AES-256-GCM implementation of [Codec].
type aesGCMCodec struct {
	aead        cipher.AEAD
	random      io.Reader
	fingerprint *Fingerprinter
	logger      *logger.Logger
}

// NewCodec builds the AES-256-GCM codec for a validated key.
// The AEAD is prepared once and shared; it is safe for concurrent use.
func NewCodec(key *Key, log *logger.Logger) (Codec, error) {
	if key == nil {
		return nil, fmt.Errorf("%w: key is not loaded", ErrConfiguration)
	}

	block, err := aes.NewCipher(key.material[:])
	if err != nil {
		return nil, fmt.Errorf("%w: block cipher: %w", ErrConfiguration, err)
	}

	aead, err := cipher.NewGCMWithNonceSize(block, IVSize)
	if err != nil {
		return nil, fmt.Errorf("%w: gcm: %w", ErrConfiguration, err)
	}

	fp, err := NewFingerprinter(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	log.Debug().Msg("style profile codec created")

	return &aesGCMCodec{
		aead:        aead,
		random:      rand.Reader,
		fingerprint: fp,
		logger:      log,
	}, nil
}

// Encrypt implements [Codec].
func (c *aesGCMCodec) Encrypt(ctx context.Context, descriptor models.StyleDescriptor, userID, platform string) (models.EncryptedProfileRecord, error) {
	log := logger.FromContext(ctx)

	if err := validateOwner(userID, platform); err != nil {
		return models.EncryptedProfileRecord{}, err
	}

	plaintext, err := json.Marshal(descriptor)
	if err != nil {
		return models.EncryptedProfileRecord{}, fmt.Errorf("%w: serialize descriptor: %w", ErrEncryption, err)
	}
	defer clear(plaintext)

	iv := make([]byte, IVSize)
	if _, err = io.ReadFull(c.random, iv); err != nil {
		log.Err(err).
			Str("func", "aesGCMCodec.Encrypt").
			Str("user_fp", c.fingerprint.Fingerprint(userID)).
			Msg("iv generation failed")
		return models.EncryptedProfileRecord{}, fmt.Errorf("%w: iv generation", ErrEncryption)
	}

	aad := AssociatedData(userID, platform)
	sealed := c.aead.Seal(nil, iv, plaintext, aad)
	split := len(sealed) - TagSize

	return models.EncryptedProfileRecord{
		UserID:     userID,
		Platform:   platform,
		Ciphertext: sealed[:split:split],
		IV:         iv,
		AuthTag:    sealed[split:],
		AAD:        aad,
	}, nil
}

// Decrypt implements [Codec].
func (c *aesGCMCodec) Decrypt(ctx context.Context, record models.EncryptedProfileRecord, userID, platform string) (models.StyleDescriptor, error) {
	log := logger.FromContext(ctx)

	if err := validateOwner(userID, platform); err != nil {
		return models.StyleDescriptor{}, err
	}
	if len(record.Ciphertext) == 0 || len(record.IV) == 0 || len(record.AuthTag) == 0 {
		return models.StyleDescriptor{}, fmt.Errorf("%w: record is missing ciphertext, iv or auth tag", ErrValidation)
	}
	if len(record.IV) != IVSize || len(record.AuthTag) != TagSize {
		return models.StyleDescriptor{}, fmt.Errorf("%w: iv and auth tag must be %d bytes", ErrValidation, IVSize)
	}

	userFP := c.fingerprint.Fingerprint(userID)

	binding := bindRecord(record)
	if binding.legacy() {
		log.Warn().
			Str("func", "aesGCMCodec.Decrypt").
			Str("user_fp", userFP).
			Str("platform", platform).
			Bool("legacy_aad", true).
			Msg("decrypting pre-migration record with reconstructed aad")
	}

	aad, err := binding.associatedData(userID, platform)
	if err != nil {
		log.Error().
			Str("func", "aesGCMCodec.Decrypt").
			Str("user_fp", userFP).
			Str("platform", platform).
			Msg("style profile aad does not match requested context")
		return models.StyleDescriptor{}, ErrDecryption
	}

	sealed := make([]byte, 0, len(record.Ciphertext)+TagSize)
	sealed = append(sealed, record.Ciphertext...)
	sealed = append(sealed, record.AuthTag...)

	plaintext, err := c.aead.Open(nil, record.IV, sealed, aad)
	if err != nil {
		log.Error().
			Str("func", "aesGCMCodec.Decrypt").
			Str("user_fp", userFP).
			Str("platform", platform).
			Msg("style profile authentication failed")
		return models.StyleDescriptor{}, ErrDecryption
	}
	defer clear(plaintext)

	var descriptor models.StyleDescriptor
	if err = json.Unmarshal(plaintext, &descriptor); err != nil {
		log.Error().
			Str("func", "aesGCMCodec.Decrypt").
			Str("user_fp", userFP).
			Str("platform", platform).
			Msg("decrypted style profile is not a descriptor")
		return models.StyleDescriptor{}, ErrDecryption
	}

	return descriptor, nil
}
