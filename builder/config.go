// SPDX-License-Identifier: MIT
// Package: spatialgraph/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   - generatorConfig is the single source of truth for all generator knobs.
//   - Defaults are deterministic and documented; no globals.
//   - newGeneratorConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   - rng     = nil                    (pure/deterministic unless seeded)
//   - distFn  = geodist.Distance      (equirectangular great-circle metric)
//   - nameFn  = unnamed                ("" for every sampled node)
//   - box     = whole globe            (lat [-90,90], lng [-180,180])

package builder

import (
	"math/rand"

	"github.com/TUW-GEO/spatialgraph/core"
	"github.com/TUW-GEO/spatialgraph/geodist"
)

// sampleBox is the axis-aligned latitude/longitude rectangle RandomPoints
// samples from, inclusive of Min and exclusive of Max in each component.
type sampleBox struct {
	min core.Coordinate
	max core.Coordinate
}

// generatorConfig aggregates all knobs used by generators.
// It is passed by VALUE to generators (immutable to callers).
type generatorConfig struct {
	// RNG for stochastic choices; nil means "no randomness available".
	rng *rand.Rand

	// Distance metric consumed by SISG; never nil after resolution.
	distFn geodist.DistanceFunc

	// Name strategy for sampled nodes: batch index -> name ("" = unnamed).
	nameFn func(int) string

	// Sampling rectangle for RandomPoints.
	box sampleBox
}

// Whole-globe sampling defaults (named, no magic numbers).
const (
	defaultMinLat = -90.0
	defaultMaxLat = 90.0
	defaultMinLng = -180.0
	defaultMaxLng = 180.0
)

// unnamed is the default node-name strategy: every sampled node is unnamed.
func unnamed(int) string { return "" }

// newGeneratorConfig constructs a config with deterministic defaults and
// applies all options in order (last-wins semantics).
// Complexity: O(len(opts)) time, O(1) space.
func newGeneratorConfig(opts ...Option) generatorConfig {
	cfg := generatorConfig{
		rng:    nil,              // no RNG unless explicitly set
		distFn: geodist.Distance, // canonical geodesic metric
		nameFn: unnamed,          // sampled nodes are unnamed
		box: sampleBox{
			min: core.Coordinate{Lat: defaultMinLat, Lng: defaultMinLng},
			max: core.Coordinate{Lat: defaultMaxLat, Lng: defaultMaxLng},
		},
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
