// Package stegbit implements the LSB bit engine: it writes and reads a byte
// stream one bit at a time into the least significant bit of each sample of
// a flat pixel buffer, most significant bit first within each byte.
package stegbit

import (
	"errors"
	"fmt"
)

const (
	// HeaderBits is the number of samples occupied by the 32-bit payload
	// length prefix at the start of the buffer.
	HeaderBits = 32

	// MinSamples is the smallest buffer worth embedding into: room for the
	// length prefix and the payload signature.
	MinSamples = 64
)

var (
	// ErrCapacity is returned when data does not fit in the buffer.
	ErrCapacity = errors.New("payload exceeds image capacity")

	// ErrIncomplete is returned when the buffer holds fewer bits than the
	// embedded length prefix claims.
	ErrIncomplete = errors.New("embedded data incomplete")
)

// Capacity returns the number of bits buf can hold, one per sample.
func Capacity(buf []byte) int {
	return len(buf)
}

// Embed writes each bit of data into the least significant bit of the
// corresponding sample of buf, leaving the upper seven bits and every
// sample past the data untouched. buf is not modified at all when data
// does not fit.
func Embed(buf, data []byte) error {
	need := 8 * len(data)
	if need > len(buf) {
		return fmt.Errorf("%w: need %d bits, have %d", ErrCapacity, need, len(buf))
	}

	for i, b := range data {
		for j := 0; j < 8; j++ {
			bit := b >> (7 - j) & 1
			buf[i*8+j] = buf[i*8+j]&0xFE | bit
		}
	}

	return nil
}

// ExtractHeader packs the least significant bits of the first HeaderBits
// samples into a big-endian unsigned integer, whatever those bits contain.
// buf must hold at least HeaderBits samples.
func ExtractHeader(buf []byte) uint32 {
	var v uint32
	for i := 0; i < HeaderBits; i++ {
		v = v<<1 | uint32(buf[i]&1)
	}
	return v
}

// ExtractPayload reads n bytes embedded after the header region, packing
// eight LSBs into each output byte.
func ExtractPayload(buf []byte, n int) ([]byte, error) {
	need := int64(HeaderBits) + 8*int64(n)
	if n < 0 || need > int64(len(buf)) {
		return nil, fmt.Errorf("%w: need %d bits, have %d", ErrIncomplete, need, len(buf))
	}

	out := make([]byte, n)
	for i := range out {
		var b byte
		for j := 0; j < 8; j++ {
			b = b<<1 | buf[HeaderBits+i*8+j]&1
		}
		out[i] = b
	}

	return out, nil
}
