// Package crypto implements the cryptographic layer of the steganography
// pipeline: PBKDF2 key derivation from a password and salt, and AES-256-GCM
// authenticated encryption of the hidden message.
//
// The package is deliberately free of randomness: callers supply the salt
// and nonce, which keeps every function deterministic and lets tests pin
// byte-exact outputs.
package crypto
