package crypto

const (
	// KeySize is the size of a derived AES-256 key in bytes.
	KeySize = 32

	// SaltSize is the size of a key-derivation salt in bytes.
	SaltSize = 16

	// NonceSize is the size of an AES-GCM nonce in bytes.
	NonceSize = 12

	// TagSize is the size of an AES-GCM authentication tag in bytes.
	TagSize = 16

	// MinTokenSize is the smallest token Open will accept: a nonce and a
	// tag around an empty ciphertext.
	MinTokenSize = NonceSize + TagSize

	// Iterations is the PBKDF2 iteration count. Encode and decode must use
	// the same value; changing it invalidates every previously encoded
	// image, so any future change has to be recorded in the stored format
	// instead of hard-coded here.
	Iterations = 100000
)

// AlgsCiphersuite is the canonical string representation of the algorithm suite.
var AlgsCiphersuite = "PBKDF2-HMAC-SHA-256:AES-256-GCM"
