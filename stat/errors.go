// SPDX-License-Identifier: MIT
// Package stat: sentinel error set.
// Every message is prefixed with "stat: ..."; call sites add context with
// statErrorf and callers match with errors.Is.

package stat

import (
	"errors"
	"fmt"
)

var (
	// ErrNilInput indicates a nil well, set or plate, or a nil element of a
	// container slice.
	ErrNilInput = errors.New("stat: nil input")

	// ErrNilCalculator indicates construction without a plug-in.
	ErrNilCalculator = errors.New("stat: nil calculator")

	// ErrOutOfRange indicates a window with begin < 0, length < 0 or
	// begin+length beyond the well length.
	ErrOutOfRange = errors.New("stat: window out of range")

	// ErrWeightsOutOfBounds indicates fewer weights than window values.
	ErrWeightsOutOfBounds = errors.New("stat: weights out of bounds")

	// ErrBadQuantile indicates p outside [0, 1].
	ErrBadQuantile = errors.New("stat: quantile must be in [0, 1]")
)

// statErrorf tags err with the operation name.
func statErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
