// SPDX-License-Identifier: MIT
// File: wellset.go
// Role: WellSet type, constructors and basic accessors.
//
// Determinism:
//   - Every enumeration (Wells, All, IDs, String) is in row-major order.
//
// Concurrency:
//   - mu guards tree, label; delimiter and logger are fixed at construction.
package wellset

import (
	"errors"
	"iter"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/btree"

	"github.com/katalvlaran/platestat/well"
)

// WellSet is an ordered, deduplicated collection of wells.
type WellSet[T any] struct {
	mu        sync.RWMutex
	tree      *btree.BTreeG[*well.Well[T]]
	label     string
	delimiter string
	logger    *slog.Logger
}

// lessWell is the B-tree ordering: row-major by position.
func lessWell[T any](a, b *well.Well[T]) bool { return a.Less(b) }

// newWithOptions allocates an empty set with resolved options.
func newWithOptions[T any](o options) *WellSet[T] {
	return &WellSet[T]{
		tree:      btree.NewG[*well.Well[T]](treeDegree, lessWell[T]),
		label:     o.label,
		delimiter: o.delimiter,
		logger:    o.logger,
	}
}

// New returns an empty set.
// Complexity: O(1).
func New[T any](opts ...Option) *WellSet[T] {
	return newWithOptions[T](gatherOptions(defaultOptions(), opts...))
}

// FromSet returns a deep copy of src: every member well is cloned. Label,
// delimiter and logger are inherited unless overridden by opts.
// A nil src yields an empty set.
// Complexity: O(n·d) where d is the mean series length.
func FromSet[T any](src *WellSet[T], opts ...Option) *WellSet[T] {
	if src == nil {
		return New[T](opts...)
	}
	src.mu.RLock()
	base := src.optionsLocked()
	members := src.snapshotLocked()
	src.mu.RUnlock()

	dst := newWithOptions[T](gatherOptions(base, opts...))
	for _, w := range members {
		dst.tree.ReplaceOrInsert(w.Clone())
	}

	return dst
}

// FromWells builds a set holding the given wells (not copied).
//
// Errors:
//   - ErrNilWell / ErrDuplicateWell for each offending item, joined; the set
//     is not returned when any item fails.
func FromWells[T any](wells []*well.Well[T], opts ...Option) (*WellSet[T], error) {
	s := New[T](opts...)
	var errs []error
	for _, w := range wells {
		if err := s.addLocked(w); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, wellsetErrorf("FromWells", errors.Join(errs...))
	}

	return s, nil
}

// FromIDs builds a set of data-less wells from a delimited ID list, split
// with the configured delimiter.
//
// Errors:
//   - well.ErrBadID for a malformed list.
//   - ErrDuplicateWell if the list names a position twice.
func FromIDs[T any](list string, opts ...Option) (*WellSet[T], error) {
	o := gatherOptions(defaultOptions(), opts...)
	ids, err := well.ParseIDs(list, o.delimiter)
	if err != nil {
		return nil, wellsetErrorf("FromIDs", err)
	}
	wells := make([]*well.Well[T], len(ids))
	for i, id := range ids {
		wells[i] = well.Probe[T](id)
	}

	return FromWells(wells, opts...)
}

// Label returns the display label.
func (s *WellSet[T]) Label() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.label
}

// SetLabel replaces the display label.
func (s *WellSet[T]) SetLabel(label string) {
	s.mu.Lock()
	s.label = label
	s.mu.Unlock()
}

// Delimiter returns the separator used for delimited ID lists.
func (s *WellSet[T]) Delimiter() string { return s.delimiter }

// Logger returns the logger receiving rejected batch items.
func (s *WellSet[T]) Logger() *slog.Logger { return s.logger }

// IsNil reports whether the receiver is nil.
func (s *WellSet[T]) IsNil() bool { return s == nil }

// Len returns the number of wells.
func (s *WellSet[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tree.Len()
}

// IsEmpty reports whether the set holds no wells.
func (s *WellSet[T]) IsEmpty() bool { return s.Len() == 0 }

// Wells returns the members in row-major order. The slice is a snapshot; the
// wells are shared with the set.
// Complexity: O(n).
func (s *WellSet[T]) Wells() []*well.Well[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshotLocked()
}

// All iterates the members in row-major order over a snapshot taken when
// iteration starts, so the loop body may mutate the set.
func (s *WellSet[T]) All() iter.Seq[*well.Well[T]] {
	return func(yield func(*well.Well[T]) bool) {
		for _, w := range s.Wells() {
			if !yield(w) {
				return
			}
		}
	}
}

// IDs returns the member positions as a delimited list ("A1,A2,B1").
func (s *WellSet[T]) IDs() string {
	members := s.Wells()
	ids := make([]well.ID, len(members))
	for i, w := range members {
		ids[i] = w.ID()
	}

	return well.JoinIDs(ids, s.delimiter)
}

// String renders the set as "label{A1,A2}".
func (s *WellSet[T]) String() string {
	if s == nil {
		return "<nil>"
	}
	var sb strings.Builder
	sb.WriteString(s.Label())
	sb.WriteByte('{')
	sb.WriteString(s.IDs())
	sb.WriteByte('}')

	return sb.String()
}

// Clear removes every well.
func (s *WellSet[T]) Clear() {
	s.mu.Lock()
	s.tree.Clear(false)
	s.mu.Unlock()
}

// Clone returns a deep copy (see FromSet).
func (s *WellSet[T]) Clone() *WellSet[T] {
	if s == nil {
		return nil
	}

	return FromSet(s)
}

// snapshotLocked returns members in order; caller holds mu (read or write).
func (s *WellSet[T]) snapshotLocked() []*well.Well[T] {
	out := make([]*well.Well[T], 0, s.tree.Len())
	s.tree.Ascend(func(w *well.Well[T]) bool {
		out = append(out, w)
		return true
	})

	return out
}

// optionsLocked reports the configuration of s; caller holds mu.
func (s *WellSet[T]) optionsLocked() options {
	return options{label: s.label, delimiter: s.delimiter, logger: s.logger}
}

// deriveLocked returns an empty set configured like s; caller holds mu.
func (s *WellSet[T]) deriveLocked() *WellSet[T] {
	return newWithOptions[T](s.optionsLocked())
}

// viewLocked wraps members (already ordered) in a set configured like s;
// caller holds mu.
func (s *WellSet[T]) viewLocked(members []*well.Well[T]) *WellSet[T] {
	v := s.deriveLocked()
	for _, w := range members {
		v.tree.ReplaceOrInsert(w)
	}

	return v
}

// snapshotOf returns the members of other, or nil when other is nil.
// It takes other's read lock only, never the receiver's.
func snapshotOf[T any](other *WellSet[T]) []*well.Well[T] {
	if other == nil {
		return nil
	}

	return other.Wells()
}
