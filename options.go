package pixelveil

import (
	"crypto/rand"
	"io"
)

// encodeConfig holds configuration for a single Encode call.
type encodeConfig struct {
	rand    io.Reader
	inPlace bool
}

func defaultEncodeConfig() encodeConfig {
	return encodeConfig{rand: rand.Reader}
}

// Option configures an Encode call.
type Option func(*encodeConfig)

// WithRand sets the source of cryptographic randomness used for the salt
// and nonce. The default is crypto/rand. Substituting a deterministic
// reader makes Encode reproducible, which is intended for tests only.
func WithRand(r io.Reader) Option {
	return func(c *encodeConfig) {
		c.rand = r
	}
}

// WithInPlace makes Encode mutate the caller's buffer instead of a private
// copy. The default copies, so the input buffer is never touched.
func WithInPlace() Option {
	return func(c *encodeConfig) {
		c.inPlace = true
	}
}
