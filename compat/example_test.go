// SPDX-License-Identifier: MIT

package compat_test

import (
	"fmt"

	"github.com/katalvlaran/fragmerge/compat"
	"github.com/katalvlaran/fragmerge/fragment"
)

// ExampleMerge collapses three disjoint fragments. Without repair, {z}
// keeps pointing at the two merged nodes and is retired on its own.
func ExampleMerge() {
	base := []fragment.Fragment[string]{
		fragment.New([]string{"x"}, nil),
		fragment.New([]string{"y"}, nil),
		fragment.New([]string{"z"}, nil),
	}

	for f := range compat.Merge(compat.Build(base)).All() {
		fmt.Println("stale: ", f)
	}
	for f := range compat.Merge(compat.Build(base), compat.WithRepairAdjacency()).All() {
		fmt.Println("repair:", f)
	}

	// Output:
	// stale:  <{z}, {}>
	// stale:  <{x, y}, {}>
	// repair: <{x, y, z}, {}>
}
