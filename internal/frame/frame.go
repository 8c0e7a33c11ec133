// Package frame implements the binary envelope wrapped around an encrypted
// message before its bits are embedded in an image.
//
// The wire layout, all integers big-endian:
//
//	length(4) || magic "STG1"(4) || salt(16) || token(variable)
//
// where length counts everything after itself (magic + salt + token).
package frame

import (
	"crypto/subtle"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/pixelveil/pixelveil-go/internal/crypto"
)

// Magic is the fixed signature identifying a framed steganographic payload.
const Magic = "STG1"

const (
	// HeaderLen is the size of the big-endian length prefix in bytes.
	HeaderLen = 4

	// MagicLen is the size of the magic signature in bytes.
	MagicLen = len(Magic)

	// MinPayloadLen is the smallest parseable payload: the magic signature
	// followed by a salt, with an empty token.
	MinPayloadLen = MagicLen + crypto.SaltSize
)

var (
	// ErrNoData is returned when the length prefix is zero or absent.
	ErrNoData = errors.New("no framed data")

	// ErrTruncated is returned when the length prefix claims more bytes
	// than are actually present.
	ErrTruncated = errors.New("framed data truncated")

	// ErrBadSignature is returned when the payload does not carry the
	// magic signature.
	ErrBadSignature = errors.New("payload signature missing")
)

// Encode assembles the full envelope around salt and token, length prefix
// included. The result upholds length == MagicLen + len(salt) + len(token).
func Encode(salt, token []byte) []byte {
	payloadLen := MagicLen + len(salt) + len(token)

	buf := make([]byte, 0, HeaderLen+payloadLen)
	buf = binary.BigEndian.AppendUint32(buf, uint32(payloadLen))
	buf = append(buf, Magic...)
	buf = append(buf, salt...)
	buf = append(buf, token...)

	return buf
}

// Decode parses a full envelope produced by Encode, validating the length
// prefix against the bytes actually present before touching the payload.
func Decode(data []byte) (salt, token []byte, err error) {
	if len(data) < HeaderLen {
		return nil, nil, ErrNoData
	}

	length := binary.BigEndian.Uint32(data[:HeaderLen])
	if length == 0 {
		return nil, nil, ErrNoData
	}

	avail := len(data) - HeaderLen
	if uint64(length) > uint64(avail) {
		return nil, nil, fmt.Errorf("%w: header claims %d bytes, %d available", ErrTruncated, length, avail)
	}

	return Parse(data[HeaderLen : HeaderLen+int(length)])
}

// Parse splits a payload (the envelope minus its length prefix) into salt
// and token. The magic signature is compared in constant time.
func Parse(payload []byte) (salt, token []byte, err error) {
	if len(payload) < MagicLen {
		return nil, nil, ErrBadSignature
	}

	if subtle.ConstantTimeCompare(payload[:MagicLen], []byte(Magic)) != 1 {
		return nil, nil, ErrBadSignature
	}

	rest := payload[MagicLen:]
	if len(rest) < crypto.SaltSize {
		return nil, nil, fmt.Errorf("%w: %d bytes after signature, need at least %d", ErrTruncated, len(rest), crypto.SaltSize)
	}

	return rest[:crypto.SaltSize], rest[crypto.SaltSize:], nil
}
