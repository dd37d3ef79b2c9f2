// SPDX-License-Identifier: MIT

package fragment_test

import (
	"sort"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/fragmerge/fragment"
)

type FragmentSuite struct {
	suite.Suite
	a, b, ab, bc fragment.Fragment[string]
}

func (s *FragmentSuite) SetupTest() {
	s.a = fragment.New([]string{"a1"}, []string{"x"})
	s.b = fragment.New([]string{"a2"}, []string{"y"})
	s.ab = fragment.New([]string{"a1", "a2"}, []string{"a12"})
	s.bc = fragment.New([]string{"a2", "a3"}, []string{"a23"})
}

func (s *FragmentSuite) TestNewCollapsesDuplicates() {
	require := require.New(s.T())
	f := fragment.New([]string{"s", "s", "t"}, []string{"l", "l"})
	require.Equal(2, f.NumSources())
	require.Equal(1, f.NumLabels())
	require.ElementsMatch([]string{"s", "t"}, f.Sources())
	require.ElementsMatch([]string{"l"}, f.Labels())
}

func (s *FragmentSuite) TestEmptyAndZeroValue() {
	require := require.New(s.T())
	empty := fragment.New[string](nil, nil)
	var zero fragment.Fragment[string]

	require.Equal(0, empty.NumSources())
	require.Equal(0, zero.NumSources())
	require.True(empty.Equal(zero), "zero value behaves as the empty fragment")
	require.False(zero.Excludes(s.a), "empty sources exclude nothing")
	require.True(zero.Merge(s.a).Equal(s.a))
	require.Equal("<{}, {}>", zero.String())
}

func (s *FragmentSuite) TestExcludesIsSymmetric() {
	pairs := [][2]fragment.Fragment[string]{
		{s.a, s.b}, {s.a, s.ab}, {s.b, s.bc}, {s.ab, s.bc}, {s.a, s.bc},
	}
	for _, p := range pairs {
		s.Equal(p[0].Excludes(p[1]), p[1].Excludes(p[0]), "%v vs %v", p[0], p[1])
		s.Equal(!p[0].Excludes(p[1]), p[0].Compatible(p[1]))
	}
	s.False(s.a.Excludes(s.b))
	s.True(s.a.Excludes(s.ab))
	s.True(s.ab.Excludes(s.bc), "shared a2")
	s.False(s.a.Excludes(s.bc))
}

func (s *FragmentSuite) TestLabelsNeverDecideCompatibility() {
	x := fragment.New([]string{"1"}, []string{"same"})
	y := fragment.New([]string{"2"}, []string{"same"})
	s.True(x.Compatible(y))
}

func (s *FragmentSuite) TestMergeUnionsAndDoesNotMutate() {
	require := require.New(s.T())
	m := s.a.Merge(s.bc)
	require.ElementsMatch([]string{"a1", "a2", "a3"}, m.Sources())
	require.ElementsMatch([]string{"x", "a23"}, m.Labels())
	require.False(m.IsFrozen(), "merge yields builder form")

	// operands untouched
	require.ElementsMatch([]string{"a1"}, s.a.Sources())
	require.ElementsMatch([]string{"a2", "a3"}, s.bc.Sources())
}

func (s *FragmentSuite) TestMergeIsCommutativeAndAssociative() {
	require := require.New(s.T())
	c := fragment.New([]string{"a3"}, []string{"z"})

	require.True(s.a.Merge(s.b).Equal(s.b.Merge(s.a)))
	left := s.a.Merge(s.b).Merge(c)
	right := s.a.Merge(s.b.Merge(c))
	require.True(left.Equal(right))
	require.Equal(left.Frozen().Hash(), right.Frozen().Hash())
}

func (s *FragmentSuite) TestMergeOfExcludingFragmentsAbsorbsSharedSources() {
	m := s.ab.Merge(s.bc)
	s.ElementsMatch([]string{"a1", "a2", "a3"}, m.Sources())
	s.ElementsMatch([]string{"a12", "a23"}, m.Labels())
}

func (s *FragmentSuite) TestFrozenIsIdempotent() {
	require := require.New(s.T())
	f := s.ab.Frozen()
	require.True(f.IsFrozen())
	require.False(s.ab.IsFrozen(), "Frozen does not modify the receiver")

	ff := f.Frozen()
	require.True(ff.Equal(f))
	require.Equal(f.Hash(), ff.Hash())
}

func (s *FragmentSuite) TestCanonicalEqualityIgnoresOrder() {
	x := fragment.New([]int{1, 2}, nil).Frozen()
	y := fragment.New([]int{2, 1}, nil).Frozen()
	s.True(x.Equal(y))
	s.Equal(x.Hash(), y.Hash())

	// builder and frozen forms compare by content
	s.True(fragment.New([]int{2, 1}, nil).Equal(x))
	s.Equal(fragment.New([]int{2, 1}, nil).Hash(), x.Hash())
}

func (s *FragmentSuite) TestEqualityNeedsBothSets() {
	x := fragment.New([]string{"1"}, []string{"p"})
	y := fragment.New([]string{"1"}, []string{"q"})
	z := fragment.New([]string{"p"}, []string{"1"})
	s.False(x.Equal(y))
	s.False(x.Frozen().Equal(z.Frozen()), "sources and labels are not interchangeable")
}

func (s *FragmentSuite) TestCoversAndCopies() {
	require := require.New(s.T())
	m := s.a.Merge(s.bc)
	require.True(m.Covers(mapset.NewThreadUnsafeSet("a1", "a3")))
	require.False(s.ab.Covers(mapset.NewThreadUnsafeSet("a1", "a3")))
	require.True(s.a.Covers(mapset.NewThreadUnsafeSet[string]()))
	require.True(s.a.Covers(nil))

	// copies do not leak into the fragment
	set := s.a.SourceSet()
	set.Add("intruder")
	require.Equal(1, s.a.NumSources())
	labels := s.a.LabelSet()
	labels.Add("intruder")
	require.Equal(1, s.a.NumLabels())
}

func (s *FragmentSuite) TestFromSetsCopies() {
	src := mapset.NewSet("a", "b")
	f := fragment.FromSets(src, nil)
	src.Add("c")
	s.Equal(2, f.NumSources())
	s.Equal(0, f.NumLabels())
}

func (s *FragmentSuite) TestString() {
	s.Equal("<{a1, a2}, {a12}>", s.ab.String())
	s.Equal("<{a1, a2}, {a12}>", s.ab.Frozen().String())
}

func TestFragmentSuite(t *testing.T) {
	suite.Run(t, new(FragmentSuite))
}

// TestUnionSources checks the default coverage requirement.
func TestUnionSources(t *testing.T) {
	frags := []fragment.Fragment[string]{
		fragment.New([]string{"a1"}, nil),
		fragment.New([]string{"a1", "a2"}, nil),
		fragment.New([]string{"a3"}, nil),
	}
	got := fragment.UnionSources(frags).ToSlice()
	sort.Strings(got)
	assert.Equal(t, []string{"a1", "a2", "a3"}, got)
	assert.Equal(t, 0, fragment.UnionSources[string](nil).Cardinality())
}
