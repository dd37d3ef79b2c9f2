// SPDX-License-Identifier: MIT

package closure

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/fragmerge/fragment"
)

// Closure computes the merge-closure of base and returns the distinct
// canonical fragments whose sources cover the union of all base sources.
// base is not modified.
func Closure[T comparable](base []fragment.Fragment[T], opts ...Option) (*fragment.FrozenSet[T], error) {
	return run(base, fragment.UnionSources(base), opts)
}

// ClosureCovering is Closure with an explicit coverage requirement.
// Every fragment of the closure covers an empty mustcover.
func ClosureCovering[T comparable](base []fragment.Fragment[T], mustcover []T, opts ...Option) (*fragment.FrozenSet[T], error) {
	return run(base, mapset.NewThreadUnsafeSet[T](mustcover...), opts)
}

func run[T comparable](base []fragment.Fragment[T], mustcover mapset.Set[T], opts []Option) (*fragment.FrozenSet[T], error) {
	// 1) Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	log := o.Logger

	// 2) Working list starts as a private copy of base
	if len(base) > o.MaxFragments {
		return nil, fmt.Errorf("closure: %d base fragments > max %d: %w",
			len(base), o.MaxFragments, ErrCapacityExceeded)
	}
	frags := make([]fragment.Fragment[T], len(base))
	copy(frags, base)

	// 3) Pairwise sweep; len(frags) is re-read on every step because merges append
	var visits, merges int
	for i := 0; i < len(frags); i++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		first := frags[i]
		for j := i + 1; j < len(frags); j++ {
			visits++
			second := frags[j]
			if first.Excludes(second) {
				continue
			}
			if len(frags) >= o.MaxFragments {
				return nil, fmt.Errorf("closure: merging #%d x #%d at %d fragments: %w",
					i, j, len(frags), ErrCapacityExceeded)
			}
			merged := first.Merge(second)
			if ce := log.Check(zap.DebugLevel, "merge"); ce != nil {
				ce.Write(
					zap.Stringer("left", first),
					zap.Stringer("right", second),
					zap.Stringer("merged", merged),
				)
			}
			if o.OnMerge != nil {
				if err := o.OnMerge(i, j, len(frags)); err != nil {
					return nil, fmt.Errorf("closure: OnMerge hook for #%d x #%d: %w", i, j, err)
				}
			}
			frags = append(frags, merged)
			merges++
		}
	}

	// 4) Keep covering fragments; the frozen set collapses equal ones
	results := fragment.NewFrozenSet[T](0)
	for _, f := range frags {
		if f.Covers(mustcover) {
			results.Add(f)
		}
	}

	log.Info("closure complete",
		zap.Int("base", len(base)),
		zap.Int("fragments", len(frags)),
		zap.Int("visits", visits),
		zap.Int("merges", merges),
		zap.Int("results", results.Len()),
	)

	return results, nil
}
