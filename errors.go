package pixelveil

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrImageFormat is returned when a pixel buffer or source image cannot
	// be treated as three interleaved 8-bit channels.
	ErrImageFormat = errors.New("image must be 3-channel 8-bit")

	// ErrImageTooSmall is returned by Encode when the image cannot hold
	// even the payload length prefix and signature.
	ErrImageTooSmall = errors.New("image too small to hold hidden data")

	// ErrMessageTooLarge is returned by Encode when the framed payload
	// needs more bits than the image provides.
	ErrMessageTooLarge = errors.New("message too large for this image")

	// ErrNoHiddenMessage is the one error Decode returns. Absent data,
	// corrupted data and a wrong password all collapse to it so the
	// decoder cannot be used as an oracle.
	ErrNoHiddenMessage = errors.New("no hidden message found or wrong password")
)

// CapacityError reports how far an Encode call exceeded the image's bit
// capacity. It matches ErrImageTooSmall or ErrMessageTooLarge under
// errors.Is depending on which limit was hit.
type CapacityError struct {
	// NeededBits is the number of LSB slots the operation required.
	NeededBits int
	// AvailableBits is the number of LSB slots the image provides.
	AvailableBits int

	reason error
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%v: need %d bits, image has %d", e.reason, e.NeededBits, e.AvailableBits)
}

// Is implements errors.Is for sentinel error matching.
func (e *CapacityError) Is(target error) bool {
	return target == e.reason
}
