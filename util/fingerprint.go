package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// TokenFingerprint returns a short hex digest identifying a token string.
// Log lines reference tokens by fingerprint because claims can carry PII and
// a logged token is a logged credential.
func TokenFingerprint(tokenString string) string {
	hash := sha256.Sum256([]byte(tokenString))
	return hex.EncodeToString(hash[:8])
}
