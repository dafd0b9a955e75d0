// Package geodist computes great-circle distances between geographic
// coordinates using a deliberately cheap equirectangular approximation.
//
// What:
//
//   - Distance(a, b) converts both coordinates to radians, reduces the
//     latitude and longitude differences into (-π/2, π/2] by repeated ±π
//     shifts, and combines them as
//     EarthRadius * sqrt(dLat² + (cos(meanLat)·dLng)²).
//
// Why:
//
//   - The edge generators in the builder package only need CONSISTENT
//     relative distances, not geodetic exactness. The angular reduction
//     handles antipodal wraparound for longitude differences near ±π, at the
//     price of exactness near the poles and the antimeridian. This trade-off
//     is part of the behavioral contract and must not be "fixed" into a
//     haversine: downstream thresholds were tuned against it.
//
// Errors:
//
//   - None. NaN coordinates propagate to a NaN distance, which the SISG
//     generator treats as never qualifying (NaN comparisons are false).
//
// Complexity:
//
//   - O(1) per call; the reduction terminates in at most a handful of steps
//     for any finite input.
package geodist
