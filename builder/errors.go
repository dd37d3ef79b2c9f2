// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewSources indicates a size parameter (n, universe, count) below
// the generator's minimum.
// Usage: if errors.Is(err, ErrTooFewSources) { /* report invalid size */ }.
var ErrTooFewSources = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed
// interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic generator ran without an RNG
// (see WithSeed and WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")
