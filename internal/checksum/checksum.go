// Package checksum fingerprints knowledge documents and definitions.
package checksum

import (
	"crypto/sha256"
	"encoding/hex"
)

// Sum returns the hex-encoded SHA-256 digest of data.
func Sum(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// String is Sum for a definition held as a string.
func String(s string) string {
	return Sum([]byte(s))
}
