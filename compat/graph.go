// SPDX-License-Identifier: MIT

package compat

import (
	"fmt"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/fragmerge/fragment"
)

// Graph maps each live fragment node to the set of nodes it is known to be
// compatible with.
type Graph[T comparable] struct {
	frags map[NodeID]fragment.Fragment[T] // live nodes
	adj   map[NodeID]mapset.Set[NodeID]   // node → compatible nodes (may hold stale IDs)

	order []NodeID // every ID ever added, ascending
	head  int      // order[:head] holds no live node
	next  NodeID   // next ID to assign
}

// NewGraph returns an empty Graph.
func NewGraph[T comparable]() *Graph[T] {
	return &Graph[T]{
		frags: make(map[NodeID]fragment.Fragment[T]),
		adj:   make(map[NodeID]mapset.Set[NodeID]),
	}
}

// Build adds every fragment of base as a node, in order, and connects
// every pair with disjoint sources.
//
// Complexity: O(n²·s).
func Build[T comparable](base []fragment.Fragment[T]) *Graph[T] {
	g := NewGraph[T]()
	ids := make([]NodeID, len(base))
	for i, f := range base {
		ids[i] = g.AddNode(f)
	}
	for i := 0; i < len(base); i++ {
		for j := i + 1; j < len(base); j++ {
			if base[i].Compatible(base[j]) {
				g.link(ids[i], ids[j])
			}
		}
	}

	return g
}

// AddNode inserts f as a new node with no compatible partners and returns
// its ID.
//
// Complexity: O(1) amortized.
func (g *Graph[T]) AddNode(f fragment.Fragment[T]) NodeID {
	id := g.next
	g.next++
	g.frags[id] = f
	g.adj[id] = mapset.NewThreadUnsafeSet[NodeID]()
	g.order = append(g.order, id)

	return id
}

// Connect records that a and b are compatible, symmetrically.
// Connect does not check the fragments' sources; callers may declare any
// relation they like.
func (g *Graph[T]) Connect(a, b NodeID) error {
	if a == b {
		return fmt.Errorf("compat: Connect(%d, %d): %w", a, b, ErrSelfLoop)
	}
	if !g.Has(a) {
		return fmt.Errorf("compat: Connect(%d, %d): node %d: %w", a, b, a, ErrNodeNotFound)
	}
	if !g.Has(b) {
		return fmt.Errorf("compat: Connect(%d, %d): node %d: %w", a, b, b, ErrNodeNotFound)
	}
	g.link(a, b)

	return nil
}

func (g *Graph[T]) link(a, b NodeID) {
	g.adj[a].Add(b)
	g.adj[b].Add(a)
}

// Has reports whether id is a live node.
func (g *Graph[T]) Has(id NodeID) bool {
	_, ok := g.frags[id]
	return ok
}

// Len returns the number of live nodes.
func (g *Graph[T]) Len() int {
	return len(g.frags)
}

// Fragment returns the fragment stored at id.
func (g *Graph[T]) Fragment(id NodeID) (fragment.Fragment[T], bool) {
	f, ok := g.frags[id]
	return f, ok
}

// Compatible returns the recorded partners of id in ascending order,
// stale references included, or nil if id is not live.
func (g *Graph[T]) Compatible(id NodeID) []NodeID {
	set, ok := g.adj[id]
	if !ok {
		return nil
	}
	out := set.ToSlice()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Nodes returns the live node IDs in insertion order.
func (g *Graph[T]) Nodes() []NodeID {
	out := make([]NodeID, 0, len(g.frags))
	for _, id := range g.order[g.head:] {
		if g.Has(id) {
			out = append(out, id)
		}
	}

	return out
}

// oldest returns the live node with the smallest ID.
func (g *Graph[T]) oldest() (NodeID, bool) {
	for g.head < len(g.order) {
		if id := g.order[g.head]; g.Has(id) {
			return id, true
		}
		g.head++
	}

	return 0, false
}

// remove drops id and its own adjacency entry. References held by other
// nodes are left alone.
func (g *Graph[T]) remove(id NodeID) {
	delete(g.frags, id)
	delete(g.adj, id)
}

// minID returns the smallest member of a non-empty set.
func minID(s mapset.Set[NodeID]) NodeID {
	first := true
	var low NodeID
	s.Each(func(id NodeID) bool {
		if first || id < low {
			low, first = id, false
		}
		return false
	})

	return low
}
