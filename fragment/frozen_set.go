// SPDX-License-Identifier: MIT

package fragment

import "iter"

// FrozenSet is an insertion-ordered set of canonical fragments.
// Membership is structural: two fragments with equal sources and equal
// labels occupy one slot, whatever merge order produced them.
//
// Entries are bucketed by Hash and resolved with Equal on collision.
// The zero value is not usable; call NewFrozenSet.
type FrozenSet[T comparable] struct {
	buckets map[uint64][]int // hash → indexes into items
	items   []Fragment[T]    // frozen members in insertion order
}

// NewFrozenSet returns an empty set, pre-sized for capacity members.
func NewFrozenSet[T comparable](capacity int) *FrozenSet[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &FrozenSet[T]{
		buckets: make(map[uint64][]int, capacity),
		items:   make([]Fragment[T], 0, capacity),
	}
}

// Add freezes f and inserts it unless an equal fragment is present.
// It reports whether f was new.
//
// Complexity: O(|f|) amortized.
func (s *FrozenSet[T]) Add(f Fragment[T]) bool {
	c := f.Frozen()
	if s.index(c) >= 0 {
		return false
	}
	s.buckets[c.hash] = append(s.buckets[c.hash], len(s.items))
	s.items = append(s.items, c)

	return true
}

// Contains reports whether a fragment equal to f is a member.
func (s *FrozenSet[T]) Contains(f Fragment[T]) bool {
	return s.index(f.Frozen()) >= 0
}

// Len returns the number of distinct members.
func (s *FrozenSet[T]) Len() int {
	return len(s.items)
}

// All iterates the members in insertion order.
func (s *FrozenSet[T]) All() iter.Seq[Fragment[T]] {
	return func(yield func(Fragment[T]) bool) {
		for _, f := range s.items {
			if !yield(f) {
				return
			}
		}
	}
}

// Slice returns a copy of the members in insertion order.
func (s *FrozenSet[T]) Slice() []Fragment[T] {
	out := make([]Fragment[T], len(s.items))
	copy(out, s.items)

	return out
}

func (s *FrozenSet[T]) index(c Fragment[T]) int {
	for _, i := range s.buckets[c.hash] {
		if s.items[i].Equal(c) {
			return i
		}
	}

	return -1
}
