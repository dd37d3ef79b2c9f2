// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/fragmerge/fragment"
)

const (
	methodSingletons  = "Singletons"
	methodChain       = "Chain"
	minSingletonCount = 1
	minChainLength    = 2
)

// Singletons returns n disjoint fragments, fragment i holding source
// idFn(i) and the same identifier as its only label.
//
// Complexity: O(n).
func Singletons(n int, opts ...Option) ([]fragment.Fragment[string], error) {
	if n < minSingletonCount {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
			methodSingletons, n, minSingletonCount, ErrTooFewSources)
	}
	cfg := newConfig(opts...)

	out := make([]fragment.Fragment[string], 0, n)
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		out = append(out, fragment.New([]string{id}, []string{id}))
	}

	return out, nil
}

// Chain returns the n singletons followed by the n-1 adjacent pairs
// {s_i, s_i+1}, each pair labelled "s_i+s_i+1". Chain(3) with
// WithIDScheme(OneBasedIDFn("a")) is the classic a1/a2/a3 workload whose
// pairs overlap on a2.
//
// Complexity: O(n).
func Chain(n int, opts ...Option) ([]fragment.Fragment[string], error) {
	if n < minChainLength {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
			methodChain, n, minChainLength, ErrTooFewSources)
	}
	cfg := newConfig(opts...)

	// 1) singletons in index order
	out, err := Singletons(n, WithIDScheme(cfg.idFn))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodChain, err)
	}

	// 2) overlapping neighbours
	var u, v string
	for i := 0; i+1 < n; i++ {
		u, v = cfg.idFn(i), cfg.idFn(i+1)
		out = append(out, fragment.New([]string{u, v}, []string{u + "+" + v}))
	}

	return out, nil
}
