// Package cryptox provides the credential digest used by the account
// registry. The digest is a plain unsalted SHA-256 over the secret bytes,
// rendered as lowercase hex, which keeps the stored credential format stable
// across runs and installations.
package cryptox

import (
	"crypto/sha256"
	"encoding/hex"
)

// DigestSize is the length in characters of a rendered digest
// (SHA-256 = 32 bytes = 64 hex characters).
const DigestSize = sha256.Size * 2

// Digest returns the lowercase hexadecimal SHA-256 digest of secret.
// It is deterministic and accepts any input, including empty.
func Digest(secret []byte) string {
	sum := sha256.Sum256(secret)
	return hex.EncodeToString(sum[:])
}
