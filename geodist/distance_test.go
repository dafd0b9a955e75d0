// SPDX-License-Identifier: MIT
package geodist_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TUW-GEO/spatialgraph/core"
	"github.com/TUW-GEO/spatialgraph/geodist"
)

// TestDistance_Identity verifies distance(A,A) == 0 for assorted points.
func TestDistance_Identity(t *testing.T) {
	t.Parallel()

	for _, c := range []core.Coordinate{
		{Lat: 0, Lng: 0},
		{Lat: 52, Lng: 8},
		{Lat: -33.9, Lng: 151.2},
		{Lat: 90, Lng: 0},
	} {
		assert.Zero(t, geodist.Distance(c, c), "distance(A,A) must be zero for %+v", c)
	}
}

// TestDistance_SymmetryAndNonNegativity verifies distance(A,B) == distance(B,A)
// and distance(A,B) >= 0 over a grid of coordinate pairs.
func TestDistance_SymmetryAndNonNegativity(t *testing.T) {
	t.Parallel()

	points := []core.Coordinate{
		{Lat: 0, Lng: 0},
		{Lat: 51.5, Lng: -0.12},
		{Lat: 48.2, Lng: 16.37},
		{Lat: -90, Lng: 180},
		{Lat: 10, Lng: -179.5},
	}
	for _, a := range points {
		for _, b := range points {
			ab := geodist.Distance(a, b)
			ba := geodist.Distance(b, a)
			assert.GreaterOrEqual(t, ab, 0.0, "distance must be non-negative (%+v,%+v)", a, b)
			assert.InDelta(t, ab, ba, 1e-9, "distance must be symmetric (%+v,%+v)", a, b)
		}
	}
}

// TestDistance_OneDegreeMeridian checks the scale: one degree of latitude on
// the prime meridian is one degree of arc, ≈ 111.195 km at radius 6371.009.
func TestDistance_OneDegreeMeridian(t *testing.T) {
	t.Parallel()

	got := geodist.Distance(core.Coordinate{Lat: 0, Lng: 0}, core.Coordinate{Lat: 1, Lng: 0})
	want := geodist.EarthRadius * math.Pi / 180
	assert.InDelta(t, want, got, 1e-9, "one degree of latitude must equal one degree of arc")
}

// TestDistance_AntimeridianWraparound verifies that the angular reduction
// maps a longitude difference near ±2π·(179.5°…−179.5°) onto the short way
// around: two points straddling the antimeridian are close, not half a world
// apart.
func TestDistance_AntimeridianWraparound(t *testing.T) {
	t.Parallel()

	west := core.Coordinate{Lat: 0, Lng: 179.5}
	east := core.Coordinate{Lat: 0, Lng: -179.5}

	short := geodist.Distance(west, east)
	oneDegree := geodist.Distance(core.Coordinate{Lat: 0, Lng: 0}, core.Coordinate{Lat: 0, Lng: 1})
	assert.InDelta(t, oneDegree, short, 1e-6, "antimeridian neighbors must be one degree apart")
}

// TestDistance_NaNPropagates verifies the degrade-gracefully contract:
// malformed coordinates yield NaN, never a panic or a bogus finite value.
func TestDistance_NaNPropagates(t *testing.T) {
	t.Parallel()

	bad := core.Coordinate{Lat: math.NaN(), Lng: 0}
	assert.True(t, math.IsNaN(geodist.Distance(bad, core.Coordinate{Lat: 1, Lng: 1})),
		"NaN latitude must propagate to a NaN distance")
}
