// SPDX-License-Identifier: MIT

package plate

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/platestat/wellset"
)

// Sentinel errors for plate operations.
var (
	// ErrBadDimensions indicates rows or columns ≤ 0.
	ErrBadDimensions = errors.New("plate: rows and columns must be > 0")

	// ErrUnknownFormat indicates a well count with no standard layout.
	ErrUnknownFormat = errors.New("plate: unknown plate format")

	// ErrOutOfBounds indicates a well outside the plate grid.
	ErrOutOfBounds = errors.New("plate: well outside plate bounds")
)

// Format is a standard microplate size, named by its well count.
type Format int

// Standard formats (ANSI/SLAS footprint).
const (
	Format6    Format = 6
	Format12   Format = 12
	Format24   Format = 24
	Format48   Format = 48
	Format96   Format = 96
	Format384  Format = 384
	Format1536 Format = 1536
)

// layouts maps each format to its rows×columns grid.
var layouts = map[Format][2]int{
	Format6:    {2, 3},
	Format12:   {3, 4},
	Format24:   {4, 6},
	Format48:   {6, 8},
	Format96:   {8, 12},
	Format384:  {16, 24},
	Format1536: {32, 48},
}

// Dimensions returns the rows and columns of a standard format.
//
// Errors:
//   - ErrUnknownFormat for a non-standard well count.
func (f Format) Dimensions() (rows, cols int, err error) {
	l, ok := layouts[f]
	if !ok {
		return 0, 0, ErrUnknownFormat
	}

	return l[0], l[1], nil
}

// DefaultLabel is the label of a plate built without WithLabel.
const DefaultLabel = "Plate"

// Option configures a Plate at construction.
type Option func(*options)

type options struct {
	label      string
	descriptor string
	logger     *slog.Logger
}

// WithLabel sets the plate label.
func WithLabel(label string) Option {
	return func(o *options) { o.label = label }
}

// WithDescriptor attaches free-form text (assay name, barcode) to the plate.
func WithDescriptor(descriptor string) Option {
	return func(o *options) { o.descriptor = descriptor }
}

// WithLogger sets the logger passed to the underlying WellSet.
// Panics if logger is nil.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic("plate: WithLogger: logger must be non-nil")
	}

	return func(o *options) { o.logger = logger }
}

// Plate is a rows×columns grid of wells.
//
// The grid dimensions are fixed at construction. The label lives in the
// underlying WellSet, so reads and writes of it are synchronized.
type Plate[T any] struct {
	rows, cols int
	descriptor string
	wells      *wellset.WellSet[T]
}
