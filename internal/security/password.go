package security

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the lowercase hex SHA-256 digest of the credential.
// The digest must be deterministic: login-by-hash compares a client-supplied
// digest against the stored one, so a salted scheme cannot be used here.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
