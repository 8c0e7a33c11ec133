package pixelveil

import (
	"fmt"
	"io"

	"github.com/pixelveil/pixelveil-go/internal/crypto"
	"github.com/pixelveil/pixelveil-go/internal/frame"
	"github.com/pixelveil/pixelveil-go/internal/stegbit"
)

// Encode hides message inside the least significant bits of pix, protected
// by password. pix is a flat buffer of 8-bit samples, three channels per
// pixel, row-major; every sample contributes one bit of capacity.
//
// The embedding process:
//  1. A fresh 16-byte salt and 12-byte nonce are drawn from the random source.
//  2. The password and salt derive an AES-256 key (PBKDF2, fixed iterations).
//  3. The message is sealed with AES-256-GCM and framed with a length prefix,
//     signature and salt.
//  4. The framed bits are written into the sample LSBs, one bit per sample.
//
// By default the caller's buffer is copied before mutation and the copy is
// returned; WithInPlace switches to mutating pix directly. On any error the
// caller's buffer is unchanged and no partial image is produced.
func Encode(pix []byte, message, password string, opts ...Option) ([]byte, error) {
	cfg := defaultEncodeConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(pix) < stegbit.MinSamples {
		return nil, &CapacityError{
			NeededBits:    stegbit.MinSamples,
			AvailableBits: len(pix),
			reason:        ErrImageTooSmall,
		}
	}

	salt := make([]byte, crypto.SaltSize)
	if _, err := io.ReadFull(cfg.rand, salt); err != nil {
		return nil, fmt.Errorf("generating salt: %w", err)
	}

	nonce := make([]byte, crypto.NonceSize)
	if _, err := io.ReadFull(cfg.rand, nonce); err != nil {
		return nil, fmt.Errorf("generating nonce: %w", err)
	}

	key := crypto.DeriveKey(password, salt)

	token, err := crypto.Seal(key, []byte(message), nonce)
	if err != nil {
		return nil, fmt.Errorf("sealing message: %w", err)
	}

	framed := frame.Encode(salt, token)

	if need := 8 * len(framed); need > stegbit.Capacity(pix) {
		return nil, &CapacityError{
			NeededBits:    need,
			AvailableBits: stegbit.Capacity(pix),
			reason:        ErrMessageTooLarge,
		}
	}

	out := pix
	if !cfg.inPlace {
		out = make([]byte, len(pix))
		copy(out, pix)
	}

	if err := stegbit.Embed(out, framed); err != nil {
		return nil, err
	}

	return out, nil
}

// Decode recovers the message hidden in pix using password.
//
// The pipeline exits at the first failed gate: length prefix, capacity,
// signature, then authenticated decryption. Every failure returns
// ErrNoHiddenMessage; callers learn nothing about which gate failed.
func Decode(pix []byte, password string) (string, error) {
	if len(pix) < stegbit.MinSamples {
		return "", ErrNoHiddenMessage
	}

	length := stegbit.ExtractHeader(pix)
	if length == 0 {
		return "", ErrNoHiddenMessage
	}

	// Reject lengths past the buffer before converting to int, so absurd
	// prefixes read from noise cannot overflow on 32-bit platforms.
	maxPayload := (len(pix) - stegbit.HeaderBits) / 8
	if uint64(length) > uint64(maxPayload) {
		return "", ErrNoHiddenMessage
	}

	payload, err := stegbit.ExtractPayload(pix, int(length))
	if err != nil {
		return "", ErrNoHiddenMessage
	}

	salt, token, err := frame.Parse(payload)
	if err != nil {
		return "", ErrNoHiddenMessage
	}

	key := crypto.DeriveKey(password, salt)

	plaintext, err := crypto.Open(key, token)
	if err != nil {
		return "", ErrNoHiddenMessage
	}

	return string(plaintext), nil
}
