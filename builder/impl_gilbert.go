// SPDX-License-Identifier: MIT
// Package: spatialgraph/builder
//
// impl_gilbert.go - implementation of the Gilbert(p) generator.
//
// Canonical model:
//   - Classical Gilbert / Erdős–Rényi independent-edge model: every
//     unordered pair of distinct nodes is connected with probability p.
//   - Each pair is visited exactly once as (i, j) with j preceding i in the
//     node sequence; the emitted record is the directed edge i→j.
//
// Contract:
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource);
//     p == 0 emits nothing and p == 1 emits every pair without drawing.
//     The p == 0 short-circuit deviates from the literal inclusive rule
//     "draw ≤ p": a draw of exactly 0.0 would qualify at p = 0, but that
//     event has vanishing probability and skipping it keeps the degenerate
//     probabilities RNG-free and reproducible.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials. Space: O(E) for the candidate batch.
//
// Determinism:
//   - Stable trial order: i asc, j asc with j < i. A fixed seed therefore
//     reproduces the exact same edge set.

package builder

import (
	"fmt"

	"github.com/TUW-GEO/spatialgraph/core"
)

const (
	methodGilbert = "Gilbert"
	probMin       = 0.0
	probMax       = 1.0
)

// Gilbert returns a Generator that connects each unordered node pair
// independently with probability p, drawing one uniform value per pair and
// including the edge when the draw is ≤ p.
func Gilbert(p float64) Generator {
	return func(g *core.Graph, cfg generatorConfig) error {
		// 1) Validate the probability domain (NaN fails both comparisons via negation).
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%v not in [%v,%v]: %w",
				methodGilbert, p, probMin, probMax, ErrInvalidProbability)
		}

		// RNG is only required for true stochastic sampling.
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodGilbert, ErrNeedRandSource)
		}

		// p == 0 cannot emit anything; skip the quadratic walk entirely.
		if p == probMin {
			return nil
		}

		nodes := g.Nodes()
		rng := cfg.rng

		var batch []core.Edge
		var i, j int
		// 2) One trial per unordered pair, stable order: i asc, j < i asc.
		for i = 1; i < len(nodes); i++ {
			for j = 0; j < i; j++ {
				if p == probMax || rng.Float64() <= p {
					batch = append(batch, core.Edge{From: nodes[i].Coord, To: nodes[j].Coord})
				}
			}
		}

		// 3) Write back through the mutation API; dedup is the postcondition.
		g.AddEdges(batch...)

		return nil
	}
}
