// SPDX-License-Identifier: MIT
// Package: spatialgraph/builder
//
// impl_sisg.go - implementation of the SISG(k) generator.
//
// Canonical model:
//   - For each node i, distMin(i) = min over j≠i of dist(i,j).
//   - Emit directed edge i→j for every j≠i with dist(i,j) ≤ k·distMin(i)
//     (exact equality includes the edge).
//   - The relation is NOT symmetric: i and j carry different thresholds, so
//     both directions, one, or neither may appear. Duplicate directions are
//     collapsed by the core dedup postcondition; the single-direction case
//     survives as a valid edge.
//
// Contract:
//   - k must be a positive real (else ErrBadThreshold).
//   - Fewer than 2 nodes: distMin is undefined (treated as infinite) and no
//     edges are generated; this is not an error.
//   - NaN distances (malformed nodes) never qualify: NaN comparisons are
//     false, so such nodes silently gain no outgoing edges.
//
// Complexity:
//   - Time: O(n²) distance evaluations (one pass for the minimum, one for
//     thresholding, per node). No spatial indexing; target sizes are
//     hundreds to low thousands of nodes.
//   - Space: O(E) for the candidate batch.
//
// Determinism:
//   - Pure given the metric: stable node order i asc, j asc; no randomness.

package builder

import (
	"fmt"
	"math"

	"github.com/TUW-GEO/spatialgraph/core"
)

const methodSISG = "SISG"

// SISG returns a Generator implementing the Scale-Invariant Spatial Graph
// model: every node connects to all neighbors within k times its own
// nearest-neighbor distance, so local connectivity scales with local node
// density. At k ≥ 1 every node with at least one neighbor gains at least one
// outgoing edge (its nearest neighbor always qualifies); growing k never
// removes an edge present at a smaller k.
func SISG(k float64) Generator {
	return func(g *core.Graph, cfg generatorConfig) error {
		// 1) Validate the multiplier early; the model is undefined otherwise.
		if math.IsNaN(k) || k <= 0 {
			return fmt.Errorf("%s: k=%v not a positive real: %w", methodSISG, k, ErrBadThreshold)
		}

		// 2) Snapshot the node sequence; generators never alias graph internals.
		nodes := g.Nodes()
		if len(nodes) < 2 {
			// distMin is undefined for a lone node; nothing to generate.
			return nil
		}

		dist := cfg.distFn
		var batch []core.Edge

		var i, j int
		var d, distMin, threshold float64
		for i = range nodes {
			// 3) Nearest-neighbor pass: minimum distance from i to any j≠i.
			// NaN never wins the comparison, so malformed neighbors are ignored.
			distMin = math.Inf(1)
			for j = range nodes {
				if j == i {
					continue
				}
				if d = dist(nodes[i].Coord, nodes[j].Coord); d < distMin {
					distMin = d
				}
			}

			// 4) Thresholding pass: include every j within k·distMin(i).
			// For a node whose distances are all NaN, d <= threshold is false
			// for every j and the node contributes no edges.
			threshold = k * distMin
			for j = range nodes {
				if j == i {
					continue
				}
				if d = dist(nodes[i].Coord, nodes[j].Coord); d <= threshold {
					batch = append(batch, core.Edge{From: nodes[i].Coord, To: nodes[j].Coord})
				}
			}
		}

		// 5) Write back through the mutation API; dedup is the postcondition.
		g.AddEdges(batch...)

		return nil
	}
}
