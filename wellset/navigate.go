// SPDX-License-Identifier: MIT
// File: navigate.go
// Role: sorted-set navigation, value-bounded and rank-bounded views.
//
// Rank views:
//   - A rank is the 0-based position in row-major order.
//   - Ranks are resolved by counting along an in-order walk that stops at the
//     upper bound, so no index array is materialized.
package wellset

import (
	"fmt"

	"github.com/katalvlaran/platestat/well"
)

// First returns the lowest member.
//
// Errors:
//   - ErrEmptySet when the set is empty.
func (s *WellSet[T]) First() (*well.Well[T], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.tree.Min()
	if !ok {
		return nil, wellsetErrorf("First", ErrEmptySet)
	}

	return w, nil
}

// Last returns the highest member.
//
// Errors:
//   - ErrEmptySet when the set is empty.
func (s *WellSet[T]) Last() (*well.Well[T], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.tree.Max()
	if !ok {
		return nil, wellsetErrorf("Last", ErrEmptySet)
	}

	return w, nil
}

// PollFirst removes and returns the lowest member.
func (s *WellSet[T]) PollFirst() (*well.Well[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.tree.DeleteMin()
	if !ok {
		return nil, wellsetErrorf("PollFirst", ErrEmptySet)
	}

	return w, nil
}

// PollLast removes and returns the highest member.
func (s *WellSet[T]) PollLast() (*well.Well[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.tree.DeleteMax()
	if !ok {
		return nil, wellsetErrorf("PollLast", ErrEmptySet)
	}

	return w, nil
}

// Ceiling returns the least member ≥ w, or nil.
func (s *WellSet[T]) Ceiling(w *well.Well[T]) *well.Well[T] {
	return s.seekUp(w, true)
}

// Higher returns the least member > w, or nil.
func (s *WellSet[T]) Higher(w *well.Well[T]) *well.Well[T] {
	return s.seekUp(w, false)
}

// Floor returns the greatest member ≤ w, or nil.
func (s *WellSet[T]) Floor(w *well.Well[T]) *well.Well[T] {
	return s.seekDown(w, true)
}

// Lower returns the greatest member < w, or nil.
func (s *WellSet[T]) Lower(w *well.Well[T]) *well.Well[T] {
	return s.seekDown(w, false)
}

// HeadSet returns the members below to (or ≤ to when inclusive).
//
// Errors:
//   - ErrNilWell if to is nil.
func (s *WellSet[T]) HeadSet(to *well.Well[T], inclusive bool) (*WellSet[T], error) {
	if to == nil {
		return nil, wellsetErrorf("HeadSet", ErrNilWell)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var found []*well.Well[T]
	s.tree.Ascend(func(w *well.Well[T]) bool {
		c := w.Compare(to)
		if c > 0 || (c == 0 && !inclusive) {
			return false
		}
		found = append(found, w)
		return true
	})

	return s.viewLocked(found), nil
}

// TailSet returns the members above from (or ≥ from when inclusive).
//
// Errors:
//   - ErrNilWell if from is nil.
func (s *WellSet[T]) TailSet(from *well.Well[T], inclusive bool) (*WellSet[T], error) {
	if from == nil {
		return nil, wellsetErrorf("TailSet", ErrNilWell)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var found []*well.Well[T]
	s.tree.AscendGreaterOrEqual(from, func(w *well.Well[T]) bool {
		if !inclusive && w.Compare(from) == 0 {
			return true
		}
		found = append(found, w)
		return true
	})

	return s.viewLocked(found), nil
}

// SubSet returns the members between from and to; each flag decides whether
// its bound is included.
//
// Errors:
//   - ErrNilWell if a bound is nil.
//   - ErrOutOfRange if from sorts after to.
func (s *WellSet[T]) SubSet(from *well.Well[T], fromInclusive bool, to *well.Well[T], toInclusive bool) (*WellSet[T], error) {
	if from == nil || to == nil {
		return nil, wellsetErrorf("SubSet", ErrNilWell)
	}
	if from.Compare(to) > 0 {
		return nil, wellsetErrorf(fmt.Sprintf("SubSet %s > %s", from.ID(), to.ID()), ErrOutOfRange)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var found []*well.Well[T]
	s.tree.AscendGreaterOrEqual(from, func(w *well.Well[T]) bool {
		if c := w.Compare(to); c > 0 || (c == 0 && !toInclusive) {
			return false
		}
		if !fromInclusive && w.Compare(from) == 0 {
			return true
		}
		found = append(found, w)
		return true
	})

	return s.viewLocked(found), nil
}

// At returns the member at rank index.
//
// Errors:
//   - ErrOutOfRange unless 0 ≤ index < Len().
//
// Complexity: O(index).
func (s *WellSet[T]) At(index int) (*well.Well[T], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, err := s.atLocked(index)
	if err != nil {
		return nil, wellsetErrorf("At", err)
	}

	return w, nil
}

// HeadSetAt returns the members with rank below end (≤ end when inclusive).
//
// Errors:
//   - ErrOutOfRange unless 0 ≤ end ≤ Len()-1.
func (s *WellSet[T]) HeadSetAt(end int, inclusive bool) (*WellSet[T], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkRanksLocked(0, end); err != nil {
		return nil, wellsetErrorf("HeadSetAt", err)
	}

	return s.rangeLocked(0, true, end, inclusive), nil
}

// TailSetAt returns the members with rank above begin (≥ begin when inclusive).
//
// Errors:
//   - ErrOutOfRange unless 0 ≤ begin ≤ Len()-1.
func (s *WellSet[T]) TailSetAt(begin int, inclusive bool) (*WellSet[T], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	last := s.tree.Len() - 1
	if err := s.checkRanksLocked(begin, last); err != nil {
		return nil, wellsetErrorf("TailSetAt", err)
	}

	return s.rangeLocked(begin, inclusive, last, true), nil
}

// SubSetAt returns the members with rank in [begin, end).
//
// Errors:
//   - ErrOutOfRange unless 0 ≤ begin ≤ end ≤ Len()-1.
func (s *WellSet[T]) SubSetAt(begin, end int) (*WellSet[T], error) {
	return s.SubSetAtRange(begin, true, end, false)
}

// SubSetAtRange returns the members with rank between begin and end; each
// flag decides whether its bound is included.
//
// Errors:
//   - ErrOutOfRange unless 0 ≤ begin ≤ end ≤ Len()-1.
//
// Complexity: O(end).
func (s *WellSet[T]) SubSetAtRange(begin int, beginInclusive bool, end int, endInclusive bool) (*WellSet[T], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkRanksLocked(begin, end); err != nil {
		return nil, wellsetErrorf("SubSetAt", err)
	}

	return s.rangeLocked(begin, beginInclusive, end, endInclusive), nil
}

// checkRanksLocked validates 0 ≤ begin ≤ end ≤ Len()-1.
func (s *WellSet[T]) checkRanksLocked(begin, end int) error {
	n := s.tree.Len()
	if begin < 0 || end < begin || end > n-1 {
		return fmt.Errorf("ranks [%d,%d] of %d: %w", begin, end, n, ErrOutOfRange)
	}

	return nil
}

// rangeLocked collects members by rank; bounds are already validated.
func (s *WellSet[T]) rangeLocked(begin int, beginInclusive bool, end int, endInclusive bool) *WellSet[T] {
	lo, hi := begin, end
	if !beginInclusive {
		lo++
	}
	if !endInclusive {
		hi--
	}

	var found []*well.Well[T]
	rank := 0
	s.tree.Ascend(func(w *well.Well[T]) bool {
		if rank > hi {
			return false
		}
		if rank >= lo {
			found = append(found, w)
		}
		rank++
		return true
	})

	return s.viewLocked(found)
}

// atLocked resolves a rank by counting; caller holds mu.
func (s *WellSet[T]) atLocked(index int) (*well.Well[T], error) {
	n := s.tree.Len()
	if index < 0 || index >= n {
		return nil, fmt.Errorf("index %d of %d: %w", index, n, ErrOutOfRange)
	}

	var (
		found *well.Well[T]
		rank  int
	)
	s.tree.Ascend(func(w *well.Well[T]) bool {
		if rank == index {
			found = w
			return false
		}
		rank++
		return true
	})

	return found, nil
}

// seekUp returns the least member ≥ w (or > w when !orEqual).
func (s *WellSet[T]) seekUp(w *well.Well[T], orEqual bool) *well.Well[T] {
	if w == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var found *well.Well[T]
	s.tree.AscendGreaterOrEqual(w, func(m *well.Well[T]) bool {
		if !orEqual && m.Compare(w) == 0 {
			return true
		}
		found = m
		return false
	})

	return found
}

// seekDown returns the greatest member ≤ w (or < w when !orEqual).
func (s *WellSet[T]) seekDown(w *well.Well[T], orEqual bool) *well.Well[T] {
	if w == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var found *well.Well[T]
	s.tree.DescendLessOrEqual(w, func(m *well.Well[T]) bool {
		if !orEqual && m.Compare(w) == 0 {
			return true
		}
		found = m
		return false
	})

	return found
}
