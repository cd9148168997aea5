// SPDX-License-Identifier: MIT
// File: results.go
// Role: Results, the ordered key → result map returned by the engine.
//
// Determinism:
//   - Keys, Values and All enumerate in the key's Compare order, which for
//     wells is row-major.
//
// Ownership:
//   - put stores a Clone of the key; callers never share keys with inputs.
package stat

import (
	"iter"

	"github.com/google/btree"
)

// resultsDegree is the B-tree degree of a Results map.
const resultsDegree = 16

// entry is one key/value pair of a Results map.
type entry[K Keyed[K], R any] struct {
	key   K
	value R
}

// Results is an ordered map from a container (well, set or plate) to a
// result, sorted by the key's Compare. Keys are copies taken when the result
// was stored, so later changes to the original container do not affect them.
//
// A Results value is built by the engine and then only read; concurrent reads
// are safe.
type Results[K Keyed[K], R any] struct {
	tree *btree.BTreeG[entry[K, R]]
}

func newResults[K Keyed[K], R any]() *Results[K, R] {
	return &Results[K, R]{
		tree: btree.NewG(resultsDegree, func(a, b entry[K, R]) bool {
			return a.key.Compare(b.key) < 0
		}),
	}
}

// put stores a clone of key; an equal key is replaced.
// Complexity: O(log n) plus the cost of Clone.
func (r *Results[K, R]) put(key K, value R) {
	r.tree.ReplaceOrInsert(entry[K, R]{key: key.Clone(), value: value})
}

// Len returns the number of results.
func (r *Results[K, R]) Len() int {
	if r == nil {
		return 0
	}

	return r.tree.Len()
}

// Get returns the result stored under a key equal to key (by Compare, so a
// well is found by position alone). key must be non-nil.
//
// Complexity: O(log n).
func (r *Results[K, R]) Get(key K) (R, bool) {
	var zero R
	if r == nil {
		return zero, false
	}
	e, ok := r.tree.Get(entry[K, R]{key: key})
	if !ok {
		return zero, false
	}

	return e.value, true
}

// Keys returns the stored keys in order.
func (r *Results[K, R]) Keys() []K {
	out := make([]K, 0, r.Len())
	for k := range r.All() {
		out = append(out, k)
	}

	return out
}

// Values returns the results in key order.
func (r *Results[K, R]) Values() []R {
	out := make([]R, 0, r.Len())
	for _, v := range r.All() {
		out = append(out, v)
	}

	return out
}

// All iterates key/result pairs in key order.
func (r *Results[K, R]) All() iter.Seq2[K, R] {
	return func(yield func(K, R) bool) {
		if r == nil {
			return
		}
		r.tree.Ascend(func(e entry[K, R]) bool {
			return yield(e.key, e.value)
		})
	}
}
