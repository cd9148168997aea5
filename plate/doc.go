// Package plate defines Plate, a fixed rows×columns grid of wells backed by a
// wellset.WellSet.
//
// What:
//
//   - A Plate owns a WellSet and rejects wells outside its grid.
//   - Standard microplate formats (6 … 1536 wells) via NewFormat.
//   - Row-major grid helpers: InBounds, Index, Coordinate.
//
// Ordering:
//
//   - Plates compare by label, then by dimensions, then by their well sets,
//     so they can key ordered result maps.
//
// Errors:
//
//   - ErrBadDimensions: rows or columns not positive.
//   - ErrUnknownFormat: a format without a standard layout.
//   - ErrOutOfBounds: a well positioned outside the grid.
package plate
