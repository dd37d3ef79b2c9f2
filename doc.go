// SPDX-License-Identifier: MIT

// Package fragmerge combines partial observations ("fragments") into larger
// ones whenever they do not claim the same source.
//
// 🚀 What is a fragment?
//
//	A pair of sets: the sources it was built from and the labels it carries.
//	Two fragments are compatible when their sources are disjoint; merging
//	them unions both sets.
//
// ✨ Two solvers:
//
//   - closure/ – exhaustive pairwise closure; returns every distinct fragment
//     reachable by merging whose sources cover a required set. Exponential
//     in the worst case, bounded by a capacity limit that fails the whole
//     run without partial results.
//   - compat/  – incremental greedy merge over a compatibility graph; emits
//     maximal fragments one at a time in at most n-1 merges.
//
// Supporting packages:
//
//	fragment/ — Fragment, frozen (hashable) form, FrozenSet dedup
//	builder/  — synthetic workloads: Singletons, Chain, RandomSparse
//	cmd/      — fragmerge CLI (closure, incremental, compare, generate)
//
// Quick ASCII example (Chain(3), sources a1..a3):
//
//	{a1} {a2} {a3}      singletons
//	[a1 a2]  [a2 a3]    overlapping pairs, never merged with each other
//
// yields the covering partitions {a1}{a2}{a3}, {a1}[a2 a3] and [a1 a2]{a3}.
//
//	go install github.com/katalvlaran/fragmerge/cmd/fragmerge@latest
package fragmerge
