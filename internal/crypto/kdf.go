package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// DeriveKey derives a 32-byte AES key from a password and salt using
// PBKDF2-HMAC-SHA-256 with the fixed Iterations count. It is a pure
// function: the same password and salt always yield the same key, which
// is what lets decode rebuild the encode-time key from the recovered salt.
func DeriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, Iterations, KeySize, sha256.New)
}
