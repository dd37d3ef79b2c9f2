// SPDX-License-Identifier: MIT

// Package compat implements the compatibility graph of a fragment list and
// the incremental merge that greedily collapses compatible nodes until only
// maximal fragments remain.
//
// Graph:
//
//	Nodes are fragments addressed by NodeID; two structurally equal
//	fragments added twice are two nodes. Each node maps to the set of nodes
//	it is known to be compatible with. Build connects every disjoint pair of
//	a base list. NodeIDs grow monotonically, so ascending ID order is
//	insertion order, and every "arbitrary" choice below takes the smallest
//	live ID.
//
// Incremental merge (Merger.Next):
//
//  1. Graph empty → done.
//  2. A = oldest live node.
//  3. compat(A) empty → remove A, emit it as maximal.
//  4. B = oldest node in compat(A).
//  5. AB = A.Merge(B); compat(AB) = compat(A) ∩ compat(B) \ {A, B}.
//  6. Remove A and B, insert AB as the newest node.
//
// Stale adjacency:
//
//	Step 6 does not touch third nodes. A node C that listed A or B keeps
//	those references and never gains AB, even when C is compatible with AB.
//	When step 4 picks a partner that is no longer live, the reference is
//	dropped (Stats.Pruned) and the loop restarts; C may then be emitted as
//	maximal although AB could still absorb it. This is the default.
//	WithRepairAdjacency changes the behavior: every reference to A and B is
//	removed and every node of compat(AB) gains AB, which keeps adjacency
//	exact and makes emitted fragments pairwise excluding.
//
// Complexity:
//
//   - Build: O(n²·s) for n fragments with at most s sources.
//   - Merge: at most n-1 merges and n emissions; each merge intersects two
//     adjacency sets, O(n), so O(n²) overall plus stale-reference pruning.
//
// Errors:
//
//   - ErrNodeNotFound   Connect on an unknown node.
//   - ErrSelfLoop       Connect(a, a).
//
// A Graph and its Merger are not safe for concurrent use. The Merger
// consumes the Graph it was given.
package compat
