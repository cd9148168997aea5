// SPDX-License-Identifier: MIT
// File: query.go
// Role: membership tests, lookups and row/column filters.
package wellset

import "github.com/katalvlaran/platestat/well"

// Contains reports whether w's position is a member. Nil → false.
// Complexity: O(log n).
func (s *WellSet[T]) Contains(w *well.Well[T]) bool {
	if w == nil {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tree.Has(w)
}

// ContainsAll reports whether every position in wells is a member. Any nil
// item yields false; an empty argument list yields true.
func (s *WellSet[T]) ContainsAll(wells ...*well.Well[T]) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, w := range wells {
		if w == nil || !s.tree.Has(w) {
			return false
		}
	}

	return true
}

// ContainsSet reports whether every member of src is a member. Nil → false.
func (s *WellSet[T]) ContainsSet(src *WellSet[T]) bool {
	if src == nil {
		return false
	}

	return s.ContainsAll(snapshotOf(src)...)
}

// ContainsIDs reports whether every position of a delimited list is a member.
//
// Errors:
//   - well.ErrBadID for a malformed list.
func (s *WellSet[T]) ContainsIDs(list string) (bool, error) {
	wells, err := s.probes(list)
	if err != nil {
		return false, wellsetErrorf("ContainsIDs", err)
	}

	return s.ContainsAll(wells...), nil
}

// Get returns the member at id, or nil.
// Complexity: O(log n).
func (s *WellSet[T]) Get(id well.ID) *well.Well[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, _ := s.tree.Get(well.Probe[T](id))

	return w
}

// GetWell returns the member at w's position, or nil.
func (s *WellSet[T]) GetWell(w *well.Well[T]) *well.Well[T] {
	if w == nil {
		return nil
	}

	return s.Get(w.ID())
}

// GetWells returns a set of the members at the given positions, or nil when
// none matches. Missing positions are not an error.
func (s *WellSet[T]) GetWells(wells ...*well.Well[T]) *WellSet[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var found []*well.Well[T]
	for _, w := range wells {
		if w == nil {
			continue
		}
		if m, ok := s.tree.Get(w); ok {
			found = append(found, m)
		}
	}
	if len(found) == 0 {
		return nil
	}

	return s.viewLocked(found)
}

// GetSet returns the members at the positions held by src, or nil.
func (s *WellSet[T]) GetSet(src *WellSet[T]) *WellSet[T] {
	if src == nil {
		return nil
	}

	return s.GetWells(snapshotOf(src)...)
}

// GetIDs returns the members named in a delimited list, or nil when none matches.
//
// Errors:
//   - well.ErrBadID for a malformed list.
func (s *WellSet[T]) GetIDs(list string) (*WellSet[T], error) {
	wells, err := s.probes(list)
	if err != nil {
		return nil, wellsetErrorf("GetIDs", err)
	}

	return s.GetWells(wells...), nil
}

// Row returns the members of zero-based row n, or nil when there are none.
// Complexity: O(log n + r) using the row-major order.
func (s *WellSet[T]) Row(n int) *WellSet[T] {
	if n < 0 {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var found []*well.Well[T]
	s.tree.AscendRange(
		well.Probe[T](well.ID{Row: n, Column: 0}),
		well.Probe[T](well.ID{Row: n + 1, Column: 0}),
		func(w *well.Well[T]) bool {
			found = append(found, w)
			return true
		},
	)
	if len(found) == 0 {
		return nil
	}

	return s.viewLocked(found)
}

// Column returns the members of zero-based column n, or nil when there are none.
// Complexity: O(n).
func (s *WellSet[T]) Column(n int) *WellSet[T] {
	if n < 0 {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var found []*well.Well[T]
	s.tree.Ascend(func(w *well.Well[T]) bool {
		if w.Column() == n {
			found = append(found, w)
		}
		return true
	})
	if len(found) == 0 {
		return nil
	}

	return s.viewLocked(found)
}
