package gol10n

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashContent computes the SHA-256 hash of document content.
func HashContent(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// CacheKey generates a substitution cache key from a content hash and a
// locale id.
func CacheKey(hash, lang string) string {
	return hash + ":" + lang
}
