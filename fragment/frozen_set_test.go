// SPDX-License-Identifier: MIT

package fragment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fragmerge/fragment"
)

// TestFrozenSet_CollapsesMergeOrders verifies that fragments produced by
// different merge orders occupy a single slot.
func TestFrozenSet_CollapsesMergeOrders(t *testing.T) {
	f1 := fragment.New([]string{"a1"}, []string{"a1"})
	f3 := fragment.New([]string{"a3"}, []string{"a3"})
	f4 := fragment.New([]string{"a1", "a2"}, []string{"a12"})
	f5 := fragment.New([]string{"a2", "a3"}, []string{"a23"})

	set := fragment.NewFrozenSet[string](4)
	require.True(t, set.Add(f1.Merge(f5)))
	require.True(t, set.Add(f4.Merge(f3)), "different labels, different member")
	require.False(t, set.Add(f5.Merge(f1)), "same content as first member")
	require.False(t, set.Add(f1.Merge(f5).Frozen()))

	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains(f5.Merge(f1)))
	assert.False(t, set.Contains(f1))
}

// TestFrozenSet_InsertionOrderAndFrozenMembers checks iteration order and
// that members are stored in canonical form.
func TestFrozenSet_InsertionOrderAndFrozenMembers(t *testing.T) {
	set := fragment.NewFrozenSet[int](-1)
	for _, src := range [][]int{{3}, {1}, {2}, {1}} {
		set.Add(fragment.New(src, nil))
	}

	var got []int
	for f := range set.All() {
		require.True(t, f.IsFrozen())
		got = append(got, f.Sources()[0])
	}
	assert.Equal(t, []int{3, 1, 2}, got)

	// early break is honoured
	n := 0
	for range set.All() {
		n++
		break
	}
	assert.Equal(t, 1, n)

	// Slice is a copy
	s := set.Slice()
	s[0] = fragment.New([]int{99}, nil)
	assert.True(t, set.Contains(fragment.New([]int{3}, nil)))
	assert.Len(t, set.Slice(), 3)
}

// TestFrozenSet_EmptyFragment covers the degenerate member.
func TestFrozenSet_EmptyFragment(t *testing.T) {
	set := fragment.NewFrozenSet[string](0)
	var zero fragment.Fragment[string]
	assert.True(t, set.Add(zero))
	assert.False(t, set.Add(fragment.New[string](nil, nil)))
	assert.Equal(t, 1, set.Len())
}
