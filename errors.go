package vectormap

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when a position does not address a live entry.
	ErrOutOfRange = errors.New("position out of range")

	// ErrCapacityBelowSize is returned when a capacity below the current size is requested.
	ErrCapacityBelowSize = errors.New("capacity below size")

	// ErrAllocationFailed is returned when a new buffer could not be obtained.
	// The container keeps its previous buffer.
	ErrAllocationFailed = errors.New("allocation failed")

	// ErrStaleHandle is returned when a handle is used after the map was mutated.
	ErrStaleHandle = errors.New("stale handle")

	// ErrInvalidDelta is returned when the growth delta is not positive.
	ErrInvalidDelta = errors.New("growth delta must be positive")

	// ErrIntegralKey is returned when the key type is an integer or boolean kind.
	// Integral keys are rejected so that key lookups are never confused with positions.
	ErrIntegralKey = errors.New("key type must not be integral")
)

// ErrIndexOutOfRange indicates access to a position outside [0, Size).
//
// It unwraps to ErrOutOfRange.
type ErrIndexOutOfRange struct {
	Pos  int
	Size int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("position %d out of range [0, %d)", e.Pos, e.Size)
}

func (e *ErrIndexOutOfRange) Unwrap() error { return ErrOutOfRange }

// ErrCapacityTooSmall indicates a Reserve or Resize below the current size.
//
// It unwraps to ErrCapacityBelowSize.
type ErrCapacityTooSmall struct {
	Requested int
	Size      int
}

func (e *ErrCapacityTooSmall) Error() string {
	return fmt.Sprintf("requested capacity %d is below size %d", e.Requested, e.Size)
}

func (e *ErrCapacityTooSmall) Unwrap() error { return ErrCapacityBelowSize }

func outOfRange(pos, size int) error {
	return &ErrIndexOutOfRange{Pos: pos, Size: size}
}

func allocationFailed(err error) error {
	return fmt.Errorf("%w: %w", ErrAllocationFailed, err)
}
