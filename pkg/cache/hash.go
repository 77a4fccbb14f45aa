package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DigitKey builds the cache key for a pi digit run. The algorithm name is
// part of the key so a future digit source never collides with existing
// entries.
func DigitKey(algorithm string, n int) string {
	return fmt.Sprintf("digits:%s:%d", algorithm, n)
}

// Hash computes the SHA-256 of data as a 64-character hex string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
