// SPDX-License-Identifier: MIT
// File: well.go
// Role: Well construction, data access and identity.
//
// Determinism:
//   - Compare/Equal depend on position only, never on data.
package well

import "fmt"

// New returns a well at (row, column) holding a copy of values.
//
// Errors:
//   - ErrNegativePosition if row or column is below zero.
//
// Complexity: O(len(values)).
func New[T any](row, column int, values ...T) (*Well[T], error) {
	return NewAt(ID{Row: row, Column: column}, values...)
}

// NewAt returns a well at id holding a copy of values.
func NewAt[T any](id ID, values ...T) (*Well[T], error) {
	if !id.Valid() {
		return nil, fmt.Errorf("NewAt %v: %w", id, ErrNegativePosition)
	}

	return &Well[T]{id: id, data: cloneValues(values)}, nil
}

// Parse returns a well at the position named by s (e.g. "B12") holding a copy of values.
//
// Errors:
//   - ErrBadID if s is not a well identifier.
func Parse[T any](s string, values ...T) (*Well[T], error) {
	id, err := ParseID(s)
	if err != nil {
		return nil, err
	}

	return NewAt(id, values...)
}

// Probe returns a data-less well usable as a lookup key for id.
// It performs no validation.
func Probe[T any](id ID) *Well[T] {
	return &Well[T]{id: id}
}

// IsNil reports whether the receiver is nil; safe on typed-nil interface values.
func (w *Well[T]) IsNil() bool { return w == nil }

// ID returns the well position.
func (w *Well[T]) ID() ID { return w.id }

// Row returns the zero-based row index.
func (w *Well[T]) Row() int { return w.id.Row }

// Column returns the zero-based column index.
func (w *Well[T]) Column() int { return w.id.Column }

// Len returns the number of values in the series.
func (w *Well[T]) Len() int { return len(w.data) }

// Data returns a copy of the series.
func (w *Well[T]) Data() []T { return cloneValues(w.data) }

// Values returns the live series without copying.
// The slice must be treated as read-only.
func (w *Well[T]) Values() []T { return w.data }

// SetData replaces the series with a copy of values.
func (w *Well[T]) SetData(values ...T) { w.data = cloneValues(values) }

// Append extends the series.
func (w *Well[T]) Append(values ...T) { w.data = append(w.data, values...) }

// Window returns the live sub-series [begin, begin+length) with capacity
// capped at its length, so appends by the caller never reach the well.
//
// Errors:
//   - ErrOutOfRange unless 0 ≤ begin, 0 ≤ length and begin+length ≤ Len().
//
// Complexity: O(1).
func (w *Well[T]) Window(begin, length int) ([]T, error) {
	if begin < 0 || length < 0 || begin > len(w.data)-length {
		return nil, fmt.Errorf("Window %s [%d,+%d) of %d: %w", w.id, begin, length, len(w.data), ErrOutOfRange)
	}
	end := begin + length

	return w.data[begin:end:end], nil
}

// Clone returns a deep copy: same position, independent data.
func (w *Well[T]) Clone() *Well[T] {
	if w == nil {
		return nil
	}

	return &Well[T]{id: w.id, data: cloneValues(w.data)}
}

// Compare orders wells row-major by position.
func (w *Well[T]) Compare(o *Well[T]) int { return w.id.Compare(o.id) }

// Less reports whether w sorts strictly before o.
func (w *Well[T]) Less(o *Well[T]) bool { return w.id.Compare(o.id) < 0 }

// Equal reports whether both wells occupy the same position.
func (w *Well[T]) Equal(o *Well[T]) bool {
	if w == nil || o == nil {
		return w == o
	}

	return w.id == o.id
}

// String renders the well as "A1[1 2 3]".
func (w *Well[T]) String() string {
	if w == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%s%v", w.id, w.data)
}

// cloneValues copies values; nil stays nil.
func cloneValues[T any](values []T) []T {
	if values == nil {
		return nil
	}
	out := make([]T, len(values))
	copy(out, values)

	return out
}
