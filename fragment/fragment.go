// SPDX-License-Identifier: MIT

package fragment

import (
	"fmt"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Excludes reports whether f and other share at least one source.
// The smaller source set is scanned against the larger one.
//
// Complexity: O(min(|f.sources|, |other.sources|)).
func (f Fragment[T]) Excludes(other Fragment[T]) bool {
	small, large := orEmpty(f.sources), orEmpty(other.sources)
	if small.Cardinality() > large.Cardinality() {
		small, large = large, small
	}

	shared := false
	small.Each(func(s T) bool {
		if large.Contains(s) {
			shared = true
			return true // stop
		}
		return false
	})

	return shared
}

// Compatible reports whether f and other may merge: their sources are disjoint.
func (f Fragment[T]) Compatible(other Fragment[T]) bool {
	return !f.Excludes(other)
}

// Merge returns a new builder-form Fragment whose sources and labels are the
// unions of f's and other's. Neither operand is modified.
//
// Merge does not check compatibility. Callers test Compatible first;
// merging excluding fragments yields a fragment whose shared sources
// appear once.
//
// Complexity: O(|f|+|other|).
func (f Fragment[T]) Merge(other Fragment[T]) Fragment[T] {
	return Fragment[T]{
		sources: orEmpty(f.sources).Union(orEmpty(other.sources)),
		labels:  orEmpty(f.labels).Union(orEmpty(other.labels)),
	}
}

// Frozen returns the canonical form of f. On an already frozen value it
// returns f unchanged; otherwise it copies both sets and computes the hash.
//
// Complexity: O(1) if frozen, O(|sources|+|labels|) otherwise.
func (f Fragment[T]) Frozen() Fragment[T] {
	if f.frozen {
		return f
	}
	out := Fragment[T]{
		sources: copySet(f.sources),
		labels:  copySet(f.labels),
		frozen:  true,
	}
	out.hash = contentHash(out.sources, out.labels)

	return out
}

// IsFrozen reports whether f is in canonical form.
func (f Fragment[T]) IsFrozen() bool {
	return f.frozen
}

// Hash returns the content hash of f. It depends only on the members of
// both sets, never on insertion order or on the form of f. Values are
// stable within one process only.
func (f Fragment[T]) Hash() uint64 {
	if f.frozen {
		return f.hash
	}

	return contentHash(f.sources, f.labels)
}

// Equal reports whether f and other have equal sources and equal labels.
// The form (builder or frozen) is irrelevant.
func (f Fragment[T]) Equal(other Fragment[T]) bool {
	if f.frozen && other.frozen && f.hash != other.hash {
		return false
	}

	return orEmpty(f.sources).Equal(orEmpty(other.sources)) &&
		orEmpty(f.labels).Equal(orEmpty(other.labels))
}

// Covers reports whether the sources of f contain every identifier in ids.
// An empty ids is covered by every fragment. ids may be any mapset
// implementation.
func (f Fragment[T]) Covers(ids mapset.Set[T]) bool {
	if ids == nil {
		return true
	}
	src := orEmpty(f.sources)
	if ids.Cardinality() > src.Cardinality() {
		return false
	}

	covered := true
	ids.Each(func(id T) bool {
		if !src.Contains(id) {
			covered = false
			return true
		}
		return false
	})

	return covered
}

// Sources returns the source identifiers in unspecified order.
func (f Fragment[T]) Sources() []T {
	return orEmpty(f.sources).ToSlice()
}

// Labels returns the labels in unspecified order.
func (f Fragment[T]) Labels() []T {
	return orEmpty(f.labels).ToSlice()
}

// SourceSet returns a copy of the source set.
func (f Fragment[T]) SourceSet() mapset.Set[T] {
	return copySet(f.sources)
}

// LabelSet returns a copy of the label set.
func (f Fragment[T]) LabelSet() mapset.Set[T] {
	return copySet(f.labels)
}

// NumSources returns |sources|.
func (f Fragment[T]) NumSources() int {
	if f.sources == nil {
		return 0
	}

	return f.sources.Cardinality()
}

// NumLabels returns |labels|.
func (f Fragment[T]) NumLabels() int {
	if f.labels == nil {
		return 0
	}

	return f.labels.Cardinality()
}

// String renders f as "<{s1, s2}, {l1}>". Members are sorted by their
// formatted text so the output is stable across runs.
func (f Fragment[T]) String() string {
	return "<" + render(f.sources) + ", " + render(f.labels) + ">"
}

func render[T comparable](s mapset.Set[T]) string {
	items := make([]string, 0, orEmpty(s).Cardinality())
	orEmpty(s).Each(func(v T) bool {
		items = append(items, fmt.Sprint(v))
		return false
	})
	sort.Strings(items)

	return "{" + strings.Join(items, ", ") + "}"
}

// UnionSources returns the union of the sources of all frags. It is the
// default coverage requirement of the exhaustive closure.
//
// Complexity: O(Σ|sources|).
func UnionSources[T comparable](frags []Fragment[T]) mapset.Set[T] {
	out := mapset.NewThreadUnsafeSet[T]()
	for _, f := range frags {
		orEmpty(f.sources).Each(func(s T) bool {
			out.Add(s)
			return false
		})
	}

	return out
}
