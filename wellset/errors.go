// SPDX-License-Identifier: MIT
// Package wellset: sentinel error set.
// Every message is prefixed with "wellset: ..."; call sites add context with
// wellsetErrorf and callers match with errors.Is.

package wellset

import (
	"errors"
	"fmt"
)

var (
	// ErrNilWell indicates a nil *well.Well argument.
	ErrNilWell = errors.New("wellset: nil well")

	// ErrNilSet indicates a nil *WellSet argument.
	ErrNilSet = errors.New("wellset: nil well set")

	// ErrDuplicateWell indicates an add of a position already present.
	ErrDuplicateWell = errors.New("wellset: well already exists")

	// ErrWellNotFound indicates a remove or lookup of an absent position.
	ErrWellNotFound = errors.New("wellset: well not found")

	// ErrOutOfRange indicates rank bounds outside 0 ≤ begin ≤ end ≤ Len()-1,
	// or value bounds given in descending order.
	ErrOutOfRange = errors.New("wellset: index out of range")

	// ErrEmptySet indicates First/Last/Poll on an empty set.
	ErrEmptySet = errors.New("wellset: set is empty")
)

// wellsetErrorf tags err with the operation name.
func wellsetErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
