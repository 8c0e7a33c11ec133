package pixelveil

import (
	"errors"
	"strings"
	"testing"
)

func TestCapacityError_Is(t *testing.T) {
	tests := []struct {
		name   string
		err    *CapacityError
		target error
		want   bool
	}{
		{
			name:   "too small matches ErrImageTooSmall",
			err:    &CapacityError{NeededBits: 64, AvailableBits: 10, reason: ErrImageTooSmall},
			target: ErrImageTooSmall,
			want:   true,
		},
		{
			name:   "too small does not match ErrMessageTooLarge",
			err:    &CapacityError{NeededBits: 64, AvailableBits: 10, reason: ErrImageTooSmall},
			target: ErrMessageTooLarge,
			want:   false,
		},
		{
			name:   "too large matches ErrMessageTooLarge",
			err:    &CapacityError{NeededBits: 1000, AvailableBits: 900, reason: ErrMessageTooLarge},
			target: ErrMessageTooLarge,
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.want {
				t.Errorf("errors.Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCapacityError_Message(t *testing.T) {
	err := &CapacityError{NeededBits: 1000, AvailableBits: 900, reason: ErrMessageTooLarge}

	msg := err.Error()
	if !strings.Contains(msg, "1000") || !strings.Contains(msg, "900") {
		t.Errorf("error message %q missing bit counts", msg)
	}
}
