package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// contentHashLength is the number of hex characters kept by ContentHash.
const contentHashLength = 16

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// A new HMAC instance is created on each call.
//
// Example usage:
//
//	signature := utils.HashString("some data", "my-secret-key")
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

// hashString computes an HMAC-SHA256 digest over the given byte slice
// using the provided hash key.
func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}

// ContentHash returns a truncated SHA-256 digest over parts, suitable for
// correlating log lines about the same input without logging the input.
//
// Each part is length-prefixed, so ["ab", "c"] and ["a", "bc"] differ.
func ContentHash(parts []string) string {
	h := sha256.New()
	var prefix [8]byte
	for _, p := range parts {
		n := uint64(len(p))
		for i := range prefix {
			prefix[i] = byte(n >> (8 * i))
		}
		h.Write(prefix[:])
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))[:contentHashLength]
}
