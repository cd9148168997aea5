// SPDX-License-Identifier: MIT
// File: compare.go
// Role: equality and total ordering of whole sets.
//
// Determinism:
//   - Both operations read label and members under one read lock per set,
//     so each side is a consistent snapshot.
//   - Neither operation looks at well data, only at positions.
package wellset

import (
	"cmp"
	"strings"

	"github.com/katalvlaran/platestat/well"
)

// Equal reports whether both sets hold the same positions and carry the same label.
// Data inside the wells is not compared.
//
// Implementation:
//   - Stage 1: Nil and identity short-cuts.
//   - Stage 2: Snapshot both sides, compare label and size.
//   - Stage 3: Walk members pairwise in row-major order.
//
// Complexity: O(n).
func (s *WellSet[T]) Equal(o *WellSet[T]) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s == o {
		return true
	}
	sl, sw := s.labelAndMembers()
	ol, ow := o.labelAndMembers()
	if sl != ol || len(sw) != len(ow) {
		return false
	}
	for i := range sw {
		if !sw[i].Equal(ow[i]) {
			return false
		}
	}

	return true
}

// Compare is a three-way order over sets: label (lexicographic), then size,
// then members pairwise in row-major order. It is consistent with Equal, so
// sets can key ordered maps. A nil set sorts first.
//
// Returns:
//   - -1, 0 or +1.
//
// Complexity: O(n) for the snapshots, whatever decides the order.
func (s *WellSet[T]) Compare(o *WellSet[T]) int {
	switch {
	case s == o:
		return 0
	case s == nil:
		return -1
	case o == nil:
		return 1
	}
	sl, sw := s.labelAndMembers()
	ol, ow := o.labelAndMembers()

	if c := strings.Compare(sl, ol); c != 0 {
		return c
	}
	if c := cmp.Compare(len(sw), len(ow)); c != 0 {
		return c
	}
	for i := range sw {
		if c := sw[i].Compare(ow[i]); c != 0 {
			return c
		}
	}

	return 0
}

// labelAndMembers reads label and members under one read lock.
func (s *WellSet[T]) labelAndMembers() (string, []*well.Well[T]) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.label, s.snapshotLocked()
}
