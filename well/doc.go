// Package well defines the Well type: a single measurement series at a
// plate position, and the ID type addressing that position.
//
// What:
//
//   - ID is a zero-based (Row, Column) pair. Its text form is the familiar
//     plate notation: row letters followed by a 1-based column number
//     ("A1" is row 0, column 0; "AA12" is row 26, column 11).
//   - Well owns an ordered sequence of values of any type T.
//
// Identity:
//
//   - Two wells are the same well when their positions are equal. Data is
//     never part of identity, so a Well can be used as an ordered key while
//     its data changes.
//   - Compare orders wells row-major: row ascending, then column ascending.
//
// Errors:
//
//   - ErrBadID: a well identifier could not be parsed.
//   - ErrNegativePosition: a row or column below zero.
//   - ErrOutOfRange: a data window outside the series.
//
// Concurrency:
//
//   - A Well is not synchronized. Callers must not mutate its data while
//     another goroutine reads it.
package well
