// SPDX-License-Identifier: MIT

package compat_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/fragmerge/builder"
	"github.com/katalvlaran/fragmerge/compat"
)

// BenchmarkMaximalFragments measures Build plus the full merge on random
// sparse workloads, with and without adjacency repair.
func BenchmarkMaximalFragments(b *testing.B) {
	for _, n := range []int{50, 200} {
		base, err := builder.RandomSparse(4*n, n, 0.01, builder.WithSeed(7))
		if err != nil {
			b.Fatal(err)
		}
		for _, repair := range []bool{false, true} {
			var opts []compat.Option
			if repair {
				opts = append(opts, compat.WithRepairAdjacency())
			}
			b.Run(fmt.Sprintf("n=%d/repair=%t", n, repair), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					_ = compat.MaximalFragments(base, opts...)
				}
			})
		}
	}
}
