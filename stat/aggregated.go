// SPDX-License-Identifier: MIT
// File: aggregated.go
// Role: aggregated mode, one result per container.
//
// Values of every well are pooled in row-major order (windowed and weighted
// per well), then the plug-in runs exactly once per container. Pooling never
// crosses container boundaries.
package stat

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/platestat/plate"
	"github.com/katalvlaran/platestat/well"
	"github.com/katalvlaran/platestat/wellset"
)

// PlateAggregated computes the statistic over all values of p.
//
// Errors:
//   - ErrNilInput if p is nil.
//   - ErrWeightsOutOfBounds, or a plug-in error, wrapped with the op name.
func (s *Statistic[T, R]) PlateAggregated(p *plate.Plate[T]) (R, error) {
	if p == nil {
		var zero R
		return zero, statErrorf("PlateAggregated", ErrNilInput)
	}

	return s.pooled("PlateAggregated", p.Wells(), whole)
}

// PlateAggregatedWindow pools values[begin : begin+length] of every well of p.
//
// Errors:
//   - ErrOutOfRange on the first well the window does not fit.
func (s *Statistic[T, R]) PlateAggregatedWindow(p *plate.Plate[T], begin, length int) (R, error) {
	if p == nil {
		var zero R
		return zero, statErrorf("PlateAggregatedWindow", ErrNilInput)
	}

	return s.pooled("PlateAggregatedWindow", p.Wells(), window(begin, length))
}

// PlatesAggregated computes one pooled result per plate, keyed by a copy of
// the plate.
func (s *Statistic[T, R]) PlatesAggregated(plates []*plate.Plate[T]) (*Results[*plate.Plate[T], R], error) {
	return pooledEach(s, "PlatesAggregated", plates, (*plate.Plate[T]).Wells, whole)
}

// PlatesAggregatedWindow is PlatesAggregated with a per-well window.
func (s *Statistic[T, R]) PlatesAggregatedWindow(plates []*plate.Plate[T], begin, length int) (*Results[*plate.Plate[T], R], error) {
	return pooledEach(s, "PlatesAggregatedWindow", plates, (*plate.Plate[T]).Wells, window(begin, length))
}

// SetAggregated computes the statistic over all values of set.
func (s *Statistic[T, R]) SetAggregated(set *wellset.WellSet[T]) (R, error) {
	if set == nil {
		var zero R
		return zero, statErrorf("SetAggregated", ErrNilInput)
	}

	return s.pooled("SetAggregated", set.Wells(), whole)
}

// SetAggregatedWindow pools values[begin : begin+length] of every well of set.
func (s *Statistic[T, R]) SetAggregatedWindow(set *wellset.WellSet[T], begin, length int) (R, error) {
	if set == nil {
		var zero R
		return zero, statErrorf("SetAggregatedWindow", ErrNilInput)
	}

	return s.pooled("SetAggregatedWindow", set.Wells(), window(begin, length))
}

// SetsAggregated computes one pooled result per set, keyed by a copy of the set.
func (s *Statistic[T, R]) SetsAggregated(sets []*wellset.WellSet[T]) (*Results[*wellset.WellSet[T], R], error) {
	return pooledEach(s, "SetsAggregated", sets, (*wellset.WellSet[T]).Wells, whole)
}

// SetsAggregatedWindow is SetsAggregated with a per-well window.
func (s *Statistic[T, R]) SetsAggregatedWindow(sets []*wellset.WellSet[T], begin, length int) (*Results[*wellset.WellSet[T], R], error) {
	return pooledEach(s, "SetsAggregatedWindow", sets, (*wellset.WellSet[T]).Wells, window(begin, length))
}

// WellsAggregated pools an arbitrary group of wells. The wells are visited in
// sorted position order whatever the argument order; the slice is not
// modified.
//
// Errors:
//   - ErrNilInput if any well is nil.
func (s *Statistic[T, R]) WellsAggregated(wells ...*well.Well[T]) (R, error) {
	return s.pooledLoose("WellsAggregated", wells, whole)
}

// WellsAggregatedWindow is WellsAggregated with a per-well window.
func (s *Statistic[T, R]) WellsAggregatedWindow(wells []*well.Well[T], begin, length int) (R, error) {
	return s.pooledLoose("WellsAggregatedWindow", wells, window(begin, length))
}

// pooled concatenates the spans of wells and applies the plug-in once.
func (s *Statistic[T, R]) pooled(op string, wells []*well.Well[T], sp span) (R, error) {
	var (
		zero R
		all  []T
		err  error
	)
	for _, w := range wells {
		if all, err = s.collect(all, w, sp); err != nil {
			return zero, statErrorf(op, err)
		}
	}

	return s.apply(op, all)
}

func (s *Statistic[T, R]) pooledLoose(op string, wells []*well.Well[T], sp span) (R, error) {
	if err := checkContainers(op, wells); err != nil {
		var zero R
		return zero, err
	}
	sorted := slices.Clone(wells)
	slices.SortStableFunc(sorted, (*well.Well[T]).Compare)

	return s.pooled(op, sorted, sp)
}

// pooledEach runs pooled over each container of a slice.
func pooledEach[T, R any, C container[C]](
	s *Statistic[T, R],
	op string,
	containers []C,
	wellsOf func(C) []*well.Well[T],
	sp span,
) (*Results[C, R], error) {
	if err := checkContainers(op, containers); err != nil {
		return nil, err
	}
	out := newResults[C, R]()
	for _, c := range containers {
		r, err := s.pooled(op, wellsOf(c), sp)
		if err != nil {
			return nil, err
		}
		out.put(c, r)
	}

	return out, nil
}

// checkContainers rejects nil elements before any work is done.
func checkContainers[C interface{ IsNil() bool }](op string, containers []C) error {
	for i, c := range containers {
		if c.IsNil() {
			return fmt.Errorf("%s [%d]: %w", op, i, ErrNilInput)
		}
	}

	return nil
}
