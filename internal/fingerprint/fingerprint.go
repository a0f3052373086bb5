package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// Size is the length in hex characters of a content fingerprint.
const Size = sha256.Size * 2

// Sum returns the deterministic content fingerprint for the supplied bytes.
// The digest depends only on content, never on filename or declared type.
func Sum(content []byte) string {
	digest := sha256.Sum256(content)
	return hex.EncodeToString(digest[:])
}

// FromReader computes the content fingerprint by streaming from r.
func FromReader(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("hash content: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Normalize lowercases and trims a caller-supplied fingerprint string.
func Normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// Valid reports whether value looks like a well-formed fingerprint. Lookups
// with malformed fingerprints still proceed; they resolve to not-found.
func Valid(value string) bool {
	if len(value) != Size {
		return false
	}
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		default:
			return false
		}
	}
	return true
}
