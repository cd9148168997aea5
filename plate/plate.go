// SPDX-License-Identifier: MIT
// File: plate.go
// Role: Plate construction, grid helpers and well membership.
//
// Determinism:
//   - Wells/All enumerate row-major, the order of the underlying WellSet.
package plate

import (
	"cmp"
	"fmt"
	"iter"
	"log/slog"

	"github.com/katalvlaran/platestat/well"
	"github.com/katalvlaran/platestat/wellset"
)

// New returns an empty rows×cols plate.
//
// Errors:
//   - ErrBadDimensions if rows ≤ 0 or cols ≤ 0.
//
// Complexity: O(1).
func New[T any](rows, cols int, opts ...Option) (*Plate[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("New %dx%d: %w", rows, cols, ErrBadDimensions)
	}
	o := options{label: DefaultLabel, logger: slog.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return &Plate[T]{
		rows:       rows,
		cols:       cols,
		descriptor: o.descriptor,
		wells:      wellset.New[T](wellset.WithLabel(o.label), wellset.WithLogger(o.logger)),
	}, nil
}

// NewFormat returns an empty plate with a standard layout (e.g. Format96 → 8×12).
//
// Errors:
//   - ErrUnknownFormat for a non-standard format.
func NewFormat[T any](f Format, opts ...Option) (*Plate[T], error) {
	rows, cols, err := f.Dimensions()
	if err != nil {
		return nil, fmt.Errorf("NewFormat %d: %w", int(f), err)
	}

	return New[T](rows, cols, opts...)
}

// Filled returns a rows×cols plate with every position holding a well; data
// for each well is produced by fill, which may be nil for data-less wells.
func Filled[T any](rows, cols int, fill func(id well.ID) []T, opts ...Option) (*Plate[T], error) {
	p, err := New[T](rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := well.ID{Row: r, Column: c}
			var data []T
			if fill != nil {
				data = fill(id)
			}
			w, err := well.NewAt(id, data...)
			if err != nil {
				return nil, err
			}
			if err := p.wells.AddWell(w); err != nil {
				return nil, err
			}
		}
	}

	return p, nil
}

// IsNil reports whether the receiver is nil.
func (p *Plate[T]) IsNil() bool { return p == nil }

// Rows returns the number of rows.
func (p *Plate[T]) Rows() int { return p.rows }

// Columns returns the number of columns.
func (p *Plate[T]) Columns() int { return p.cols }

// Capacity returns rows×columns.
func (p *Plate[T]) Capacity() int { return p.rows * p.cols }

// Label returns the plate label.
func (p *Plate[T]) Label() string { return p.wells.Label() }

// SetLabel replaces the plate label.
func (p *Plate[T]) SetLabel(label string) { p.wells.SetLabel(label) }

// Descriptor returns the free-form description.
func (p *Plate[T]) Descriptor() string { return p.descriptor }

// Set exposes the contained WellSet. Mutations through it bypass the bounds
// check of AddWell.
func (p *Plate[T]) Set() *wellset.WellSet[T] { return p.wells }

// Len returns the number of wells present.
func (p *Plate[T]) Len() int { return p.wells.Len() }

// Wells returns the wells in row-major order (snapshot, wells shared).
func (p *Plate[T]) Wells() []*well.Well[T] { return p.wells.Wells() }

// All iterates the wells in row-major order.
func (p *Plate[T]) All() iter.Seq[*well.Well[T]] { return p.wells.All() }

// Get returns the well at id, or nil.
func (p *Plate[T]) Get(id well.ID) *well.Well[T] { return p.wells.Get(id) }

// Row returns the wells of zero-based row n, or nil.
func (p *Plate[T]) Row(n int) *wellset.WellSet[T] { return p.wells.Row(n) }

// Column returns the wells of zero-based column n, or nil.
func (p *Plate[T]) Column(n int) *wellset.WellSet[T] { return p.wells.Column(n) }

// InBounds reports whether (row, col) lies on the grid.
// Complexity: O(1).
func (p *Plate[T]) InBounds(row, col int) bool {
	return row >= 0 && row < p.rows && col >= 0 && col < p.cols
}

// Index maps (row, col) to its row-major index: row*Columns + col.
func (p *Plate[T]) Index(row, col int) int {
	return row*p.cols + col
}

// Coordinate converts a row-major index back to (row, col).
func (p *Plate[T]) Coordinate(idx int) (row, col int) {
	return idx / p.cols, idx % p.cols
}

// AddWell inserts w.
//
// Errors:
//   - wellset.ErrNilWell if w is nil.
//   - ErrOutOfBounds if w lies outside the grid.
//   - wellset.ErrDuplicateWell if the position is taken.
func (p *Plate[T]) AddWell(w *well.Well[T]) error {
	if err := p.checkBounds(w); err != nil {
		return err
	}

	return p.wells.AddWell(w)
}

// Add inserts every in-bounds, new well and reports whether all were
// inserted. Rejected wells are logged by the underlying set.
func (p *Plate[T]) Add(wells ...*well.Well[T]) bool {
	inside, ok := p.partition("Add", wells)

	return p.wells.Add(inside...) && ok
}

// Replace upserts every in-bounds well; see Add.
func (p *Plate[T]) Replace(wells ...*well.Well[T]) bool {
	inside, ok := p.partition("Replace", wells)

	return p.wells.Replace(inside...) && ok
}

// Remove deletes the given positions; see wellset.WellSet.Remove.
func (p *Plate[T]) Remove(wells ...*well.Well[T]) bool { return p.wells.Remove(wells...) }

// Clone returns a deep copy of the plate and its wells.
func (p *Plate[T]) Clone() *Plate[T] {
	if p == nil {
		return nil
	}

	return &Plate[T]{
		rows:       p.rows,
		cols:       p.cols,
		descriptor: p.descriptor,
		wells:      wellset.FromSet(p.wells),
	}
}

// Compare orders plates by label, then rows, then columns, then well sets.
// A nil plate sorts first.
func (p *Plate[T]) Compare(o *Plate[T]) int {
	switch {
	case p == o:
		return 0
	case p == nil:
		return -1
	case o == nil:
		return 1
	}
	if c := cmp.Compare(p.Label(), o.Label()); c != 0 {
		return c
	}
	if c := cmp.Compare(p.rows, o.rows); c != 0 {
		return c
	}
	if c := cmp.Compare(p.cols, o.cols); c != 0 {
		return c
	}

	return p.wells.Compare(o.wells)
}

// Equal reports whether both plates have the same dimensions, label and wells.
func (p *Plate[T]) Equal(o *Plate[T]) bool {
	if p == nil || o == nil {
		return p == o
	}

	return p.rows == o.rows && p.cols == o.cols && p.wells.Equal(o.wells)
}

// String renders the plate as "label[8x12]{A1,B2}".
func (p *Plate[T]) String() string {
	if p == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%s[%dx%d]{%s}", p.Label(), p.rows, p.cols, p.wells.IDs())
}

// checkBounds validates w against the grid.
func (p *Plate[T]) checkBounds(w *well.Well[T]) error {
	if w == nil {
		return fmt.Errorf("AddWell: %w", wellset.ErrNilWell)
	}
	if !p.InBounds(w.Row(), w.Column()) {
		return fmt.Errorf("AddWell %s on %dx%d: %w", w.ID(), p.rows, p.cols, ErrOutOfBounds)
	}

	return nil
}

// partition splits off out-of-bounds wells, logging each; nil wells pass
// through so the set reports them.
func (p *Plate[T]) partition(op string, wells []*well.Well[T]) ([]*well.Well[T], bool) {
	inside := make([]*well.Well[T], 0, len(wells))
	ok := true
	for _, w := range wells {
		if w != nil && !p.InBounds(w.Row(), w.Column()) {
			p.wells.Logger().Warn("plate: batch item rejected",
				slog.String("op", op),
				slog.String("plate", p.Label()),
				slog.String("well", w.ID().String()),
				slog.Any("error", ErrOutOfBounds),
			)
			ok = false
			continue
		}
		inside = append(inside, w)
	}

	return inside, ok
}
