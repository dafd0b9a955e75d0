// SPDX-License-Identifier: MIT
// Package: spatialgraph/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach method context via %w wrapping; sentinels are
//     never stringified with parameters at definition site.
//   - Generators never panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrBadThreshold indicates that the SISG multiplier k is NaN or not
// strictly positive. The model is undefined for such thresholds, so they are
// rejected up front rather than left as silent no-ops.
// Usage: if errors.Is(err, ErrBadThreshold) { /* fix k */ }.
var ErrBadThreshold = errors.New("builder: threshold multiplier out of range")

// ErrInvalidProbability indicates that an edge probability lies outside the
// closed interval [0,1].
// Usage: if errors.Is(err, ErrInvalidProbability) { /* clamp or reject p */ }.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic generator requires a non-nil
// *rand.Rand in the resolved config (set WithSeed or WithRand). The
// degenerate probabilities 0 and 1, and n == 0 sampling, do not draw and so
// do not require one.
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadSize indicates a negative sample count passed to RandomPoints.
// Usage: if errors.Is(err, ErrBadSize) { /* fix n */ }.
var ErrBadSize = errors.New("builder: invalid size")

// ErrNilGraph indicates that Build was handed a nil target graph.
var ErrNilGraph = errors.New("builder: nil graph")

// ErrGenerateFailed indicates a nil Generator reached Build; it communicates
// a programmer error without panicking inside the orchestration loop.
var ErrGenerateFailed = errors.New("builder: generation failed")
