// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	// KeySize is the AES-256 key length in bytes.
	KeySize = 32
	// keyHexLength is the length of the hex-encoded key.
	keyHexLength = KeySize * 2

	// TestKeyHex is the well-known key substituted in the test environment
	// when no key is configured. It must never protect real data.
	TestKeyHex = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"
)

// KeyMode selects how LoadKey treats an absent key.
type KeyMode int

const (
	// KeyModeProduction rejects an absent key.
	KeyModeProduction KeyMode = iota
	// KeyModeTest substitutes TestKeyHex for an absent key.
	KeyModeTest
)

// Key is a validated AES-256 key. It is immutable once loaded.
type Key struct {
	material [KeySize]byte
}

// LoadKey validates raw and returns the decoded key.
//
// raw must be exactly 64 hexadecimal characters. An empty raw is only
// accepted in KeyModeTest, where TestKeyHex is used instead. Errors wrap
// ErrConfiguration and never include the raw value.
func LoadKey(raw string, mode KeyMode) (*Key, error) {
	if raw == "" {
		if mode != KeyModeTest {
			return nil, fmt.Errorf("%w: key is not set", ErrConfiguration)
		}
		raw = TestKeyHex
	}

	if len(raw) != keyHexLength {
		return nil, fmt.Errorf("%w: key must be %d hex characters, got %d", ErrConfiguration, keyHexLength, len(raw))
	}

	for i := 0; i < len(raw); i++ {
		if !isHexDigit(raw[i]) {
			return nil, fmt.Errorf("%w: key must contain only hexadecimal characters", ErrConfiguration)
		}
	}

	decoded, err := hex.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: key is not valid hex", ErrConfiguration)
	}

	key := &Key{}
	copy(key.material[:], decoded)
	clear(decoded)

	return key, nil
}

// deriveSubkey expands a purpose-bound subkey with HKDF-SHA256 so that the
// encryption key itself is never reused for other primitives.
func (k *Key) deriveSubkey(info string, size int) ([]byte, error) {
	out := make([]byte, size)
	r := hkdf.New(sha256.New, k.material[:], nil, []byte(info))
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, fmt.Errorf("derive %s subkey: %w", info, err)
	}
	return out, nil
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
