package crypto

import "errors"

var (
	// ErrInvalidKeySize is returned when the AES key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidSaltSize is returned when the salt size is invalid.
	ErrInvalidSaltSize = errors.New("invalid salt size")

	// ErrInvalidNonceSize is returned when the nonce size is invalid.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrDecryptionFailed is returned when Open fails for any reason.
	// A wrong key, a flipped bit and a truncated token all produce this
	// same error so callers cannot be used as a decryption oracle.
	ErrDecryptionFailed = errors.New("decryption failed")
)
