// SPDX-License-Identifier: MIT

package compat

import (
	"iter"

	mapset "github.com/deckarep/golang-set/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/fragmerge/fragment"
)

// Merger runs the incremental merge over a Graph, one maximal fragment at
// a time.
type Merger[T comparable] struct {
	g     *Graph[T]
	opts  Options
	stats Stats
}

// Merge returns a Merger that consumes g. Nothing happens until Next or
// All is called.
func Merge[T comparable](g *Graph[T], opts ...Option) *Merger[T] {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if g == nil {
		g = NewGraph[T]()
	}

	return &Merger[T]{g: g, opts: o}
}

// Next advances the merge until the next maximal fragment is retired and
// returns it. It returns false once the graph is empty.
func (m *Merger[T]) Next() (fragment.Fragment[T], bool) {
	g, log := m.g, m.opts.Logger
	for {
		// 1) Empty graph: exhausted
		a, ok := g.oldest()
		if !ok {
			return fragment.Fragment[T]{}, false
		}
		fa := g.frags[a]
		compatA := g.adj[a]

		// 2) No partner left: A is maximal
		if compatA.Cardinality() == 0 {
			g.remove(a)
			m.stats.Emitted++
			if ce := log.Check(zap.DebugLevel, "final node"); ce != nil {
				ce.Write(zap.Int("node", int(a)), zap.Stringer("fragment", fa))
			}
			return fa, true
		}

		// 3) Oldest partner; a stale one is dropped and the loop restarts
		b := minID(compatA)
		fb, live := g.frags[b]
		if !live {
			compatA.Remove(b)
			m.stats.Pruned++
			if ce := log.Check(zap.DebugLevel, "stale partner"); ce != nil {
				ce.Write(zap.Int("node", int(a)), zap.Int("partner", int(b)))
			}
			continue
		}
		compatB := g.adj[b]

		// 4) Collapse A and B
		merged := fa.Merge(fb)
		compatAB := compatA.Intersect(compatB)
		compatAB.Remove(a)
		compatAB.Remove(b)
		if m.opts.RepairAdjacency {
			m.detach(a, b, compatA.Union(compatB))
		}
		g.remove(a)
		g.remove(b)
		ab := g.AddNode(merged)
		g.adj[ab] = compatAB
		if m.opts.RepairAdjacency {
			compatAB.Each(func(c NodeID) bool {
				if set, ok := g.adj[c]; ok {
					set.Add(ab)
				}
				return false
			})
		}
		m.stats.Merges++

		if ce := log.Check(zap.DebugLevel, "merged"); ce != nil {
			ce.Write(
				zap.Int("left", int(a)),
				zap.Int("right", int(b)),
				zap.Int("node", int(ab)),
				zap.Stringer("fragment", merged),
				zap.Ints("compatible", nodeInts(g.Compatible(ab))),
			)
		}
	}
}

// detach removes a and b from the adjacency of every live neighbour.
func (m *Merger[T]) detach(a, b NodeID, neighbours mapset.Set[NodeID]) {
	neighbours.Each(func(c NodeID) bool {
		if set, ok := m.g.adj[c]; ok {
			set.Remove(a)
			set.Remove(b)
		}
		return false
	})
}

// All returns a single-use sequence of the remaining maximal fragments.
// Breaking out of the loop leaves the rest of the graph in place for a
// later Next or All. Consumers must not rely on any particular order.
func (m *Merger[T]) All() iter.Seq[fragment.Fragment[T]] {
	return func(yield func(fragment.Fragment[T]) bool) {
		for {
			f, ok := m.Next()
			if !ok || !yield(f) {
				return
			}
		}
	}
}

// Stats returns the step counters accumulated so far.
func (m *Merger[T]) Stats() Stats {
	return m.stats
}

// MaximalFragments builds the compatibility graph of base and collects
// every fragment the incremental merge emits.
func MaximalFragments[T comparable](base []fragment.Fragment[T], opts ...Option) []fragment.Fragment[T] {
	m := Merge(Build(base), opts...)
	out := make([]fragment.Fragment[T], 0, len(base))
	for f := range m.All() {
		out = append(out, f)
	}

	return out
}

func nodeInts(ids []NodeID) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = int(id)
	}

	return out
}
