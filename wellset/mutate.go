// SPDX-License-Identifier: MIT
// File: mutate.go
// Role: set algebra (add, remove, replace, retain).
//
// Failure policy:
//   - Primitives return sentinels.
//   - Batch wrappers keep going after a rejected item, log it, and report
//     overall success as a bool.
package wellset

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/platestat/well"
)

const (
	opAdd     = "Add"
	opRemove  = "Remove"
	opReplace = "Replace"
	opRetain  = "Retain"
)

// AddWell inserts w if its position is absent.
//
// Errors:
//   - ErrNilWell if w is nil.
//   - ErrDuplicateWell if the position is already present; the set is unchanged.
//
// Complexity: O(log n).
func (s *WellSet[T]) AddWell(w *well.Well[T]) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.addLocked(w)
}

// Add inserts every well it can and reports whether all were inserted.
// Rejected items (nil, duplicates) are logged and skipped.
// Complexity: O(k log n).
func (s *WellSet[T]) Add(wells ...*well.Well[T]) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok := true
	for _, w := range wells {
		if err := s.addLocked(w); err != nil {
			s.reject(opAdd, w, err)
			ok = false
		}
	}

	return ok
}

// AddSet inserts the members of src (shared, not copied); see Add.
// A nil src is a rejected item.
func (s *WellSet[T]) AddSet(src *WellSet[T]) bool {
	if src == nil {
		s.mu.RLock()
		s.reject(opAdd, nil, ErrNilSet)
		s.mu.RUnlock()
		return false
	}

	return s.Add(snapshotOf(src)...)
}

// AddIDs inserts data-less wells for each ID in a delimited list; see Add.
//
// Errors:
//   - well.ErrBadID when the list is malformed; nothing is added.
func (s *WellSet[T]) AddIDs(list string) (bool, error) {
	wells, err := s.probes(list)
	if err != nil {
		return false, wellsetErrorf("AddIDs", err)
	}

	return s.Add(wells...), nil
}

// RemoveWell deletes the member at w's position.
//
// Errors:
//   - ErrNilWell if w is nil.
//   - ErrWellNotFound if the position is absent.
//
// Complexity: O(log n).
func (s *WellSet[T]) RemoveWell(w *well.Well[T]) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.removeLocked(w)
}

// Remove deletes every listed position it can; see Add for the policy.
func (s *WellSet[T]) Remove(wells ...*well.Well[T]) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok := true
	for _, w := range wells {
		if err := s.removeLocked(w); err != nil {
			s.reject(opRemove, w, err)
			ok = false
		}
	}

	return ok
}

// RemoveSet deletes the positions held by src.
func (s *WellSet[T]) RemoveSet(src *WellSet[T]) bool {
	if src == nil {
		s.mu.RLock()
		s.reject(opRemove, nil, ErrNilSet)
		s.mu.RUnlock()
		return false
	}

	return s.Remove(snapshotOf(src)...)
}

// RemoveIDs deletes the positions named in a delimited list.
//
// Errors:
//   - well.ErrBadID when the list is malformed; nothing is removed.
func (s *WellSet[T]) RemoveIDs(list string) (bool, error) {
	wells, err := s.probes(list)
	if err != nil {
		return false, wellsetErrorf("RemoveIDs", err)
	}

	return s.Remove(wells...), nil
}

// RemoveAt deletes the member at the given rank.
//
// Errors:
//   - ErrOutOfRange unless 0 ≤ index < Len().
//
// Complexity: O(n) to locate the rank.
func (s *WellSet[T]) RemoveAt(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.atLocked(index)
	if err != nil {
		return wellsetErrorf("RemoveAt", err)
	}
	s.tree.Delete(w)

	return nil
}

// RemoveIndices deletes the members at the given ranks. All ranks refer to
// the order before any removal. Out-of-range ranks are logged and skipped;
// repeated ranks remove once and report failure for the repeat.
// Complexity: O(n + k log n).
func (s *WellSet[T]) RemoveIndices(indices ...int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	members := s.snapshotLocked()
	ok := true
	for _, i := range indices {
		if i < 0 || i >= len(members) {
			err := fmt.Errorf("index %d of %d: %w", i, len(members), ErrOutOfRange)
			s.logger.Warn("wellset: batch item rejected",
				slog.String("op", opRemove),
				slog.String("set", s.label),
				slog.Int("index", i),
				slog.Any("error", err),
			)
			ok = false
			continue
		}
		if err := s.removeLocked(members[i]); err != nil {
			s.reject(opRemove, members[i], err)
			ok = false
		}
	}

	return ok
}

// ReplaceWell upserts w: any member at the same position is dropped first.
//
// Errors:
//   - ErrNilWell if w is nil.
//
// Complexity: O(log n).
func (s *WellSet[T]) ReplaceWell(w *well.Well[T]) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.replaceLocked(w)
}

// Replace upserts every well; only nil items can fail.
func (s *WellSet[T]) Replace(wells ...*well.Well[T]) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok := true
	for _, w := range wells {
		if err := s.replaceLocked(w); err != nil {
			s.reject(opReplace, w, err)
			ok = false
		}
	}

	return ok
}

// ReplaceSet upserts the members of src.
func (s *WellSet[T]) ReplaceSet(src *WellSet[T]) bool {
	if src == nil {
		s.mu.RLock()
		s.reject(opReplace, nil, ErrNilSet)
		s.mu.RUnlock()
		return false
	}

	return s.Replace(snapshotOf(src)...)
}

// Retain keeps only members whose position is among wells and reports
// whether the set changed. Nil items are ignored.
// Complexity: O(n log k).
func (s *WellSet[T]) Retain(wells ...*well.Well[T]) bool {
	keep := make(map[well.ID]struct{}, len(wells))
	for _, w := range wells {
		if w != nil {
			keep[w.ID()] = struct{}{}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.retainLocked(keep)
}

// RetainSet intersects the set with src. A nil src retains nothing.
func (s *WellSet[T]) RetainSet(src *WellSet[T]) bool {
	return s.Retain(snapshotOf(src)...)
}

// RetainIDs intersects the set with the positions of a delimited list.
//
// Errors:
//   - well.ErrBadID when the list is malformed; the set is unchanged.
func (s *WellSet[T]) RetainIDs(list string) (bool, error) {
	wells, err := s.probes(list)
	if err != nil {
		return false, wellsetErrorf("RetainIDs", err)
	}

	return s.Retain(wells...), nil
}

// addLocked inserts w; caller holds the write lock.
func (s *WellSet[T]) addLocked(w *well.Well[T]) error {
	if w == nil {
		return wellsetErrorf(opAdd, ErrNilWell)
	}
	if s.tree.Has(w) {
		return wellsetErrorf(opAdd+" "+w.ID().String(), ErrDuplicateWell)
	}
	s.tree.ReplaceOrInsert(w)

	return nil
}

// removeLocked deletes w's position; caller holds the write lock.
func (s *WellSet[T]) removeLocked(w *well.Well[T]) error {
	if w == nil {
		return wellsetErrorf(opRemove, ErrNilWell)
	}
	if _, found := s.tree.Delete(w); !found {
		return wellsetErrorf(opRemove+" "+w.ID().String(), ErrWellNotFound)
	}

	return nil
}

// replaceLocked upserts w; caller holds the write lock.
func (s *WellSet[T]) replaceLocked(w *well.Well[T]) error {
	if w == nil {
		return wellsetErrorf(opReplace, ErrNilWell)
	}
	s.tree.ReplaceOrInsert(w)

	return nil
}

// retainLocked drops members absent from keep; caller holds the write lock.
func (s *WellSet[T]) retainLocked(keep map[well.ID]struct{}) bool {
	var drop []*well.Well[T]
	s.tree.Ascend(func(w *well.Well[T]) bool {
		if _, ok := keep[w.ID()]; !ok {
			drop = append(drop, w)
		}
		return true
	})
	for _, w := range drop {
		s.tree.Delete(w)
	}
	if len(drop) > 0 {
		s.logger.Debug("wellset: retain dropped wells",
			slog.String("op", opRetain),
			slog.String("set", s.label),
			slog.Int("dropped", len(drop)),
		)
	}

	return len(drop) > 0
}

// probes parses a delimited list into data-less lookup wells.
func (s *WellSet[T]) probes(list string) ([]*well.Well[T], error) {
	ids, err := well.ParseIDs(list, s.delimiter)
	if err != nil {
		return nil, err
	}
	out := make([]*well.Well[T], len(ids))
	for i, id := range ids {
		out[i] = well.Probe[T](id)
	}

	return out, nil
}

// reject logs a batch item that could not be applied; caller holds mu.
func (s *WellSet[T]) reject(op string, w *well.Well[T], err error) {
	id := "<nil>"
	if w != nil {
		id = w.ID().String()
	}
	s.logger.Warn("wellset: batch item rejected",
		slog.String("op", op),
		slog.String("set", s.label),
		slog.String("well", id),
		slog.Any("error", err),
	)
}
