// SPDX-License-Identifier: MIT

package well

import (
	"cmp"
	"errors"
	"strconv"
)

// Sentinel errors for well operations.
var (
	// ErrBadID indicates a well identifier string could not be parsed.
	ErrBadID = errors.New("well: malformed well id")

	// ErrNegativePosition indicates a row or column index below zero.
	ErrNegativePosition = errors.New("well: negative row or column")

	// ErrOutOfRange indicates a data window that does not fit the series.
	ErrOutOfRange = errors.New("well: window out of range")
)

// alphabet is the number of letters used for row labels.
const alphabet = 26

// ID addresses a well on a plate. Row and Column are zero-based.
type ID struct {
	Row    int
	Column int
}

// Compare orders IDs row-major: -1 if id sorts before o, +1 if after, 0 if equal.
func (id ID) Compare(o ID) int {
	if c := cmp.Compare(id.Row, o.Row); c != 0 {
		return c
	}

	return cmp.Compare(id.Column, o.Column)
}

// Valid reports whether both coordinates are non-negative.
func (id ID) Valid() bool { return id.Row >= 0 && id.Column >= 0 }

// RowLabel returns the letter form of the row: 0→"A", 25→"Z", 26→"AA".
func (id ID) RowLabel() string {
	return RowLabel(id.Row)
}

// String renders the ID as "A1". Invalid IDs render as "?r,c".
func (id ID) String() string {
	if !id.Valid() {
		return "?" + strconv.Itoa(id.Row) + "," + strconv.Itoa(id.Column)
	}

	return RowLabel(id.Row) + strconv.Itoa(id.Column+1)
}

// RowLabel converts a zero-based row index to bijective base-26 letters.
// Negative rows return the empty string.
func RowLabel(row int) string {
	if row < 0 {
		return ""
	}
	var buf [16]byte
	i := len(buf)
	for n := row + 1; n > 0; n = (n - 1) / alphabet {
		i--
		buf[i] = byte('A' + (n-1)%alphabet)
	}

	return string(buf[i:])
}

// Well is a measurement series at a fixed plate position.
//
// The position is immutable; the data may be replaced or extended.
type Well[T any] struct {
	id   ID
	data []T
}
