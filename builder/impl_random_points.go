// SPDX-License-Identifier: MIT
// Package: spatialgraph/builder
//
// impl_random_points.go - implementation of the RandomPoints(n) generator.
//
// Canonical model:
//   - Sample n nodes uniformly inside the configured latitude/longitude box
//     (default: the whole globe) and append them to the graph.
//   - Uniformity is per component over the box, i.e. uniform in coordinate
//     space, not equal-area on the sphere. That matches the intended use:
//     quick synthetic inputs for the edge generators.
//
// Contract:
//   - n ≥ 0 (negative → ErrBadSize); n == 0 is a no-op and needs no RNG.
//   - cfg.rng must be non-nil for n > 0 (else ErrNeedRandSource).
//   - Names come from cfg.nameFn(batch index); default is unnamed.
//   - Duplicate draws collapse through the AddNodes dedup postcondition, so
//     the resulting node count can be smaller than n.
//
// Complexity: O(n) draws + O(N) dedup over the resulting sequence.
//
// Determinism: fixed seed and box ⇒ identical sample, draw order i asc
// (latitude drawn before longitude for each point).

package builder

import (
	"fmt"

	"github.com/TUW-GEO/spatialgraph/core"
)

const methodRandomPoints = "RandomPoints"

// RandomPoints returns a Generator that appends n uniformly sampled nodes
// inside the configured sample box.
func RandomPoints(n int) Generator {
	return func(g *core.Graph, cfg generatorConfig) error {
		// 1) Validate the sample count.
		if n < 0 {
			return fmt.Errorf("%s: n=%d is negative: %w", methodRandomPoints, n, ErrBadSize)
		}
		if n == 0 {
			return nil
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomPoints, ErrNeedRandSource)
		}

		latSpan := cfg.box.max.Lat - cfg.box.min.Lat
		lngSpan := cfg.box.max.Lng - cfg.box.min.Lng

		// 2) Draw the batch in a stable order: per point, latitude then longitude.
		batch := make([]core.Node, 0, n)
		for i := 0; i < n; i++ {
			batch = append(batch, core.Node{
				Coord: core.Coordinate{
					Lat: cfg.box.min.Lat + cfg.rng.Float64()*latSpan,
					Lng: cfg.box.min.Lng + cfg.rng.Float64()*lngSpan,
				},
				Name: cfg.nameFn(i),
			})
		}

		// 3) Append through the mutation API; dedup is the postcondition.
		g.AddNodes(batch...)

		return nil
	}
}
