// SPDX-License-Identifier: MIT

// Package fragment defines the Fragment value type: a set of source
// identifiers paired with a set of descriptive labels.
//
// What:
//
//   - Fragment[T]: immutable-by-contract value holding sources and labels.
//   - Excludes/Compatible: two fragments are compatible iff their source
//     sets are disjoint. The relation is symmetric and not transitive.
//   - Merge: union of sources and labels into a new Fragment. Merge never
//     checks compatibility; merging excluding fragments silently absorbs the
//     shared sources.
//   - Frozen: canonical form with a cached, order-independent content hash.
//     Frozen fragments are the dedup keys of FrozenSet.
//   - FrozenSet[T]: insertion-ordered set of canonical fragments; two
//     fragments built in different merge orders collapse to one entry.
//
// Identifiers are any comparable type (strings, small integers, ...).
// Labels never take part in compatibility decisions.
//
// Complexity:
//
//   - Excludes:  O(min(|a|,|b|))
//   - Merge:     O(|a|+|b|)
//   - Frozen:    O(|sources|+|labels|) once, O(1) on a frozen value
//   - Equal:     O(1) hash reject, O(|sources|+|labels|) otherwise
//
// Errors:
//
//	None. Every operation is total.
package fragment
