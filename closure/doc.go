// SPDX-License-Identifier: MIT

// Package closure enumerates the full merge-closure of a list of base
// fragments and keeps the members that cover a required set of sources.
//
// What:
//
//   - Closure(base, opts...): mustcover defaults to the union of all base
//     sources.
//   - ClosureCovering(base, mustcover, opts...): explicit requirement; an
//     empty mustcover keeps every fragment of the closure.
//
// How:
//
//	The working list starts as a copy of base. Index i walks the list and,
//	for each i, index j walks every later position. Both loops re-read the
//	list length on each step, so a merge appended while visiting (i, j)
//	becomes a partner for every pair not yet visited. Compatible pairs
//	append their merge. The list stops growing because only finitely many
//	source subsets exist; the same subset may be reached along several merge
//	orders and is kept each time. Survivors of the coverage filter are
//	canonicalized into a fragment.FrozenSet, which collapses duplicates.
//
// Complexity:
//
//   - Time:   O(L²·s) where L is the final list length (worst case
//     exponential in len(base)) and s the largest source set.
//   - Memory: O(L·s).
//
// Options:
//
//   - WithContext(ctx)        cancellation, checked once per outer index.
//   - WithMaxFragments(n)     capacity of the working list (default 1<<20).
//   - WithLogger(l)           debug trace of every merge (zap).
//   - WithOnMerge(fn)         hook per merge; an error aborts the run.
//
// Errors:
//
//   - ErrCapacityExceeded     the working list would outgrow MaxFragments.
//   - context.Canceled / context.DeadlineExceeded from the context.
//   - any error returned by the OnMerge hook.
//
// No partial result is returned with an error.
package closure
