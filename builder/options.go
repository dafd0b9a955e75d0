// SPDX-License-Identifier: MIT
// Package: spatialgraph/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   - Options are functional (type Option func(*generatorConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     generators themselves MUST NOT panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.
//   - No hidden globals; everything flows through generatorConfig.

package builder

import (
	"math"
	"math/rand"

	"github.com/TUW-GEO/spatialgraph/core"
	"github.com/TUW-GEO/spatialgraph/geodist"
)

// Option customizes generator behavior by mutating a generatorConfig
// instance before generation begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*generatorConfig)

// WithRand provides an explicit RNG for stochastic generators.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *generatorConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *generatorConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithDistanceFunc overrides the distance metric consumed by SISG.
// The function must be symmetric and non-negative for the model to make
// sense; that property is the caller's responsibility. Panics on nil.
func WithDistanceFunc(fn geodist.DistanceFunc) Option {
	if fn == nil {
		panic("builder: WithDistanceFunc(nil)")
	}

	return func(c *generatorConfig) { c.distFn = fn }
}

// WithNameScheme sets the deterministic name generator for sampled nodes:
// batch index -> name. Panics on nil.
func WithNameScheme(fn func(int) string) Option {
	if fn == nil {
		panic("builder: WithNameScheme(nil)")
	}

	return func(c *generatorConfig) { c.nameFn = fn }
}

// WithSampleBox restricts RandomPoints to the axis-aligned rectangle spanned
// by min and max. Panics when any component is NaN or when min exceeds max
// in either component (programmer error, caught early).
func WithSampleBox(min, max core.Coordinate) Option {
	if math.IsNaN(min.Lat) || math.IsNaN(min.Lng) || math.IsNaN(max.Lat) || math.IsNaN(max.Lng) {
		panic("builder: WithSampleBox(NaN bound)")
	}
	if min.Lat > max.Lat || min.Lng > max.Lng {
		panic("builder: WithSampleBox(min exceeds max)")
	}

	return func(c *generatorConfig) { c.box = sampleBox{min: min, max: max} }
}
