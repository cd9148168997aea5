// SPDX-License-Identifier: MIT
// File: standard.go
// Role: standard mode, one result per well.
//
// Every method walks its container in row-major order, fails fast on the
// first invalid well and returns no partial result.
package stat

import (
	"github.com/katalvlaran/platestat/plate"
	"github.com/katalvlaran/platestat/well"
	"github.com/katalvlaran/platestat/wellset"
)

// Well computes the statistic of w over all its values.
//
// Errors:
//   - ErrNilInput if w is nil.
//   - ErrWeightsOutOfBounds, or a plug-in error, wrapped with "Well".
func (s *Statistic[T, R]) Well(w *well.Well[T]) (*Results[*well.Well[T], R], error) {
	if w == nil {
		return nil, statErrorf("Well", ErrNilInput)
	}

	return s.perWell("Well", []*well.Well[T]{w}, whole)
}

// WellWindow computes the statistic of w over values[begin : begin+length].
//
// Errors:
//   - ErrNilInput if w is nil.
//   - ErrOutOfRange if the window does not fit w.
func (s *Statistic[T, R]) WellWindow(w *well.Well[T], begin, length int) (*Results[*well.Well[T], R], error) {
	if w == nil {
		return nil, statErrorf("WellWindow", ErrNilInput)
	}

	return s.perWell("WellWindow", []*well.Well[T]{w}, window(begin, length))
}

// Set computes one result per well of set.
func (s *Statistic[T, R]) Set(set *wellset.WellSet[T]) (*Results[*well.Well[T], R], error) {
	if set == nil {
		return nil, statErrorf("Set", ErrNilInput)
	}

	return s.perWell("Set", set.Wells(), whole)
}

// SetWindow computes one windowed result per well of set. The window is
// checked against each well in turn, not against any nominal length.
func (s *Statistic[T, R]) SetWindow(set *wellset.WellSet[T], begin, length int) (*Results[*well.Well[T], R], error) {
	if set == nil {
		return nil, statErrorf("SetWindow", ErrNilInput)
	}

	return s.perWell("SetWindow", set.Wells(), window(begin, length))
}

// Plate computes one result per well of p.
func (s *Statistic[T, R]) Plate(p *plate.Plate[T]) (*Results[*well.Well[T], R], error) {
	if p == nil {
		return nil, statErrorf("Plate", ErrNilInput)
	}

	return s.perWell("Plate", p.Wells(), whole)
}

// PlateWindow computes one windowed result per well of p.
func (s *Statistic[T, R]) PlateWindow(p *plate.Plate[T], begin, length int) (*Results[*well.Well[T], R], error) {
	if p == nil {
		return nil, statErrorf("PlateWindow", ErrNilInput)
	}

	return s.perWell("PlateWindow", p.Wells(), window(begin, length))
}

// Plates computes per-well results for every plate, keyed by a copy of the
// plate. Plates comparing equal share one entry; the last one wins.
//
// Errors:
//   - ErrNilInput if any plate is nil; nothing is computed.
func (s *Statistic[T, R]) Plates(plates []*plate.Plate[T]) (*Results[*plate.Plate[T], *Results[*well.Well[T], R]], error) {
	return nested(s, "Plates", plates, (*plate.Plate[T]).Wells, whole)
}

// PlatesWindow is Plates with a per-well window.
func (s *Statistic[T, R]) PlatesWindow(plates []*plate.Plate[T], begin, length int) (*Results[*plate.Plate[T], *Results[*well.Well[T], R]], error) {
	return nested(s, "PlatesWindow", plates, (*plate.Plate[T]).Wells, window(begin, length))
}

// Sets computes per-well results for every set, keyed by a copy of the set.
func (s *Statistic[T, R]) Sets(sets []*wellset.WellSet[T]) (*Results[*wellset.WellSet[T], *Results[*well.Well[T], R]], error) {
	return nested(s, "Sets", sets, (*wellset.WellSet[T]).Wells, whole)
}

// SetsWindow is Sets with a per-well window.
func (s *Statistic[T, R]) SetsWindow(sets []*wellset.WellSet[T], begin, length int) (*Results[*wellset.WellSet[T], *Results[*well.Well[T], R]], error) {
	return nested(s, "SetsWindow", sets, (*wellset.WellSet[T]).Wells, window(begin, length))
}

// perWell evaluates every well separately.
func (s *Statistic[T, R]) perWell(op string, wells []*well.Well[T], sp span) (*Results[*well.Well[T], R], error) {
	out := newResults[*well.Well[T], R]()
	for _, w := range wells {
		r, err := s.single(op, w, sp)
		if err != nil {
			return nil, err
		}
		out.put(w, r)
	}

	return out, nil
}

// nested runs perWell over each container of a slice.
func nested[T, R any, C container[C]](
	s *Statistic[T, R],
	op string,
	containers []C,
	wellsOf func(C) []*well.Well[T],
	sp span,
) (*Results[C, *Results[*well.Well[T], R]], error) {
	if err := checkContainers(op, containers); err != nil {
		return nil, err
	}
	out := newResults[C, *Results[*well.Well[T], R]]()
	for _, c := range containers {
		r, err := s.perWell(op, wellsOf(c), sp)
		if err != nil {
			return nil, err
		}
		out.put(c, r)
	}

	return out, nil
}
