// SPDX-License-Identifier: MIT

// Package builder generates base-fragment workloads for the fragment
// solvers: fixtures for tests, inputs for benchmarks and demo files for the
// CLI. Generators follow the functional-options style:
//
//   - Configuration primitives:
//     – Option:   a function that mutates config before use.
//     – config:   holds RNG and the source ID scheme.
//   - Source-ID schemes (IDFn implementations):
//     – DefaultIDFn:       "s0","s1",…
//     – SymbolNumberIDFn:  prefix + decimal index.
//     – OneBasedIDFn:      prefix + (index+1), e.g. "a1","a2",…
//   - Generators:
//     – Singletons(n):               n disjoint one-source fragments.
//     – Chain(n):                    singletons plus each adjacent pair.
//     – RandomSparse(u, count, p):   Bernoulli(p) source membership.
//
// Guarantees:
//
//   - Deterministic output for a fixed option set (seeded RNG, fixed trial
//     order: fragment index asc, then source index asc).
//   - Option constructors panic on meaningless values; generators return
//     sentinel errors wrapped with the generator name and never panic.
//
// Errors:
//
//	ErrTooFewSources       n, universe or count below the minimum.
//	ErrInvalidProbability  p outside [0,1].
//	ErrNeedRandSource      0<p<1 without WithSeed/WithRand.
package builder
