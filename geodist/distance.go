// SPDX-License-Identifier: MIT
// Package: spatialgraph/geodist
//
// distance.go - equirectangular great-circle distance with angular reduction.

package geodist

import (
	"math"

	"github.com/TUW-GEO/spatialgraph/core"
)

// EarthRadius is the mean Earth radius used to scale angular distances,
// in kilometers (IUGG mean radius R1).
const EarthRadius = 6371.009

// degToRad converts degrees to radians.
const degToRad = math.Pi / 180

// halfPi bounds the reduced angular difference domain (-π/2, π/2].
const halfPi = math.Pi / 2

// DistanceFunc is the distance-metric contract consumed by edge generators:
// any non-negative, symmetric function over coordinate pairs. Distance is the
// canonical implementation; tests inject planar or constant metrics.
type DistanceFunc func(a, b core.Coordinate) float64

// Distance returns the approximate great-circle distance between a and b in
// the units of EarthRadius (kilometers).
//
// The approximation is equirectangular, not haversine: both angular
// differences are reduced into (-π/2, π/2] and combined with the cosine of
// the mean latitude weighting the longitude term. Symmetric, non-negative,
// and zero for identical coordinates.
// Complexity: O(1).
func Distance(a, b core.Coordinate) float64 {
	latA := a.Lat * degToRad
	latB := b.Lat * degToRad

	dLat := reduceAngle(latB - latA)
	dLng := reduceAngle((b.Lng - a.Lng) * degToRad)

	meanLat := (latA + latB) / 2
	dx := math.Cos(meanLat) * dLng

	return EarthRadius * math.Sqrt(dLat*dLat+dx*dx)
}

// reduceAngle shifts d by whole multiples of π until it lies in (-π/2, π/2].
// The recursion mirrors the reduction's definition and terminates for every
// finite input; NaN falls through both guards and is returned unchanged.
func reduceAngle(d float64) float64 {
	if d > halfPi {
		return reduceAngle(d - math.Pi)
	}
	if d <= -halfPi {
		return reduceAngle(d + math.Pi)
	}

	return d
}
