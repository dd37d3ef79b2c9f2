// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/fragmerge/fragment"
)

const (
	methodRandomSparse = "RandomSparse"
	minUniverse        = 1
	minFragmentCount   = 1
	probMin            = 0.0
	probMax            = 1.0
)

// RandomSparse draws count fragments over a universe of sources
// idFn(0..universe-1). Fragment k includes each source independently with
// probability p; a fragment that drew nothing gets one source, picked
// uniformly (or k mod universe when no RNG is set). Fragment k is
// labelled "f<k>".
//
// Contract:
//   - universe ≥ 1, count ≥ 1 (else ErrTooFewSources).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - RNG required for 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity: O(count·universe) Bernoulli trials.
func RandomSparse(universe, count int, p float64, opts ...Option) ([]fragment.Fragment[string], error) {
	// 1) Validate parameters before touching the RNG
	if universe < minUniverse {
		return nil, fmt.Errorf("%s: universe=%d < min=%d: %w",
			methodRandomSparse, universe, minUniverse, ErrTooFewSources)
	}
	if count < minFragmentCount {
		return nil, fmt.Errorf("%s: count=%d < min=%d: %w",
			methodRandomSparse, count, minFragmentCount, ErrTooFewSources)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
	}
	cfg := newConfig(opts...)
	rng := cfg.rng
	if rng == nil && p > probMin && p < probMax {
		return nil, fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
	}

	// 2) Stable trial order: fragment k asc, source j asc
	out := make([]fragment.Fragment[string], 0, count)
	for k := 0; k < count; k++ {
		var sources []string
		for j := 0; j < universe; j++ {
			if keep(rng, p) {
				sources = append(sources, cfg.idFn(j))
			}
		}
		if len(sources) == 0 {
			pick := k % universe
			if rng != nil {
				pick = rng.Intn(universe)
			}
			sources = append(sources, cfg.idFn(pick))
		}
		out = append(out, fragment.New(sources, []string{fmt.Sprintf("f%d", k)}))
	}

	return out, nil
}

// keep performs one Bernoulli(p) trial; p ∈ {0,1} needs no RNG.
func keep(rng *rand.Rand, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	}

	return rng.Float64() < p
}
