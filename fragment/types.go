// SPDX-License-Identifier: MIT

package fragment

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Fragment pairs a set of source identifiers with a set of labels.
//
// A Fragment exists in two forms sharing one type:
//   - builder form, returned by New, FromSets and Merge;
//   - frozen (canonical) form, returned by Frozen, which caches the content
//     hash and is what FrozenSet stores.
//
// Both forms are immutable from the caller's perspective: the backing sets
// are never handed out, accessors return copies. The zero Fragment is a
// valid builder-form fragment with no sources and no labels.
type Fragment[T comparable] struct {
	sources mapset.Set[T] // footprint; decides compatibility
	labels  mapset.Set[T] // metadata carried along merges

	frozen bool   // canonical form marker
	hash   uint64 // content hash, valid iff frozen
}

// New builds a builder-form Fragment from the given identifiers.
// Duplicates collapse; empty or nil sources are legal; nil labels means ∅.
//
// Complexity: O(len(sources)+len(labels)).
func New[T comparable](sources, labels []T) Fragment[T] {
	return Fragment[T]{
		sources: mapset.NewThreadUnsafeSet[T](sources...),
		labels:  mapset.NewThreadUnsafeSet[T](labels...),
	}
}

// FromSets builds a builder-form Fragment from existing sets.
// Both sets are copied, so later changes by the caller are not observed.
// A nil set is treated as empty.
//
// Complexity: O(|sources|+|labels|).
func FromSets[T comparable](sources, labels mapset.Set[T]) Fragment[T] {
	return Fragment[T]{
		sources: copySet(sources),
		labels:  copySet(labels),
	}
}

// copySet returns a thread-unsafe copy of s. All sets inside this package
// share the thread-unsafe implementation, which mapset requires for Union
// and Intersect between two sets.
func copySet[T comparable](s mapset.Set[T]) mapset.Set[T] {
	out := mapset.NewThreadUnsafeSet[T]()
	if s == nil {
		return out
	}
	s.Each(func(v T) bool {
		out.Add(v)
		return false
	})

	return out
}

// orEmpty lets the zero Fragment behave like an empty one.
func orEmpty[T comparable](s mapset.Set[T]) mapset.Set[T] {
	if s == nil {
		return mapset.NewThreadUnsafeSet[T]()
	}

	return s
}
