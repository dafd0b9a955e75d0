// SPDX-License-Identifier: MIT
// Package: spatialgraph/core
//
// methods.go - mutation and query methods on Graph.
//
// Contract (strict):
//   - Every mutator returns the receiver for fluent chaining.
//   - AddNodes/AddEdges run the corresponding dedup as a postcondition.
//   - Dedup preserves first-occurrence order and is idempotent.
//   - Nodes/Edges return defensive copies; the Graph is the sole owner
//     of its backing sequences.

package core

import "math"

// AddNodes appends the given nodes to the node sequence, then deduplicates.
// Malformed nodes (NaN coordinates) are accepted silently; see the package
// documentation for how they degrade downstream.
// Complexity: O(n) over the resulting sequence.
func (g *Graph) AddNodes(nodes ...Node) *Graph {
	g.nodes = append(g.nodes, nodes...)

	return g.DedupeNodes()
}

// AddEdges appends the given edges to the edge sequence, then deduplicates.
// Generators write their candidate edge sets back through this method, which
// makes edge uniqueness a postcondition of every generation run.
// Complexity: O(m) over the resulting sequence.
func (g *Graph) AddEdges(edges ...Edge) *Graph {
	g.edges = append(g.edges, edges...)

	return g.DedupeEdges()
}

// ClearGraph empties both the node and the edge sequence.
// Complexity: O(1).
func (g *Graph) ClearGraph() *Graph {
	g.nodes = nil
	g.edges = nil

	return g
}

// ClearEdges empties the edge sequence only. Existing edges referencing the
// remaining nodes are discarded wholesale; there is no per-edge removal.
// Complexity: O(1).
func (g *Graph) ClearEdges() *Graph {
	g.edges = nil

	return g
}

// DedupeNodes removes structurally duplicate nodes, keeping the first
// occurrence of each canonical key in insertion order. Two nodes with equal
// coordinates but different names remain distinct; two unnamed nodes at the
// same coordinates collapse into one. Idempotent.
// Complexity: O(n) time, O(n) space for the key set.
func (g *Graph) DedupeNodes() *Graph {
	if len(g.nodes) < 2 {
		return g
	}

	seen := make(map[string]struct{}, len(g.nodes))
	kept := g.nodes[:0]
	for _, n := range g.nodes {
		k := n.key()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		kept = append(kept, n)
	}
	g.nodes = kept

	return g
}

// DedupeEdges removes structurally duplicate edges, keeping the first
// occurrence of each endpoint-pair key in insertion order. The key is
// directed: (A,B) and (B,A) are distinct edges. Idempotent.
// Complexity: O(m) time, O(m) space for the key set.
func (g *Graph) DedupeEdges() *Graph {
	if len(g.edges) < 2 {
		return g
	}

	seen := make(map[string]struct{}, len(g.edges))
	kept := g.edges[:0]
	for _, e := range g.edges {
		k := e.key()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		kept = append(kept, e)
	}
	g.edges = kept

	return g
}

// BoundingBox returns the axis-aligned rectangle spanning all node
// coordinates as componentwise minima and maxima of latitude and longitude
// independently (not a geodesic bound). ok is false when the graph holds no
// nodes. NaN components are skipped componentwise: a NaN candidate never
// wins a comparison, and a NaN bound always loses to a finite candidate, so
// malformed nodes cannot poison the box regardless of their position in the
// sequence. A component that is NaN in every node stays NaN.
// Complexity: O(n).
func (g *Graph) BoundingBox() (min, max Coordinate, ok bool) {
	if len(g.nodes) == 0 {
		return Coordinate{}, Coordinate{}, false
	}

	min = g.nodes[0].Coord
	max = g.nodes[0].Coord
	for _, n := range g.nodes[1:] {
		if math.IsNaN(min.Lat) || n.Coord.Lat < min.Lat {
			min.Lat = n.Coord.Lat
		}
		if math.IsNaN(max.Lat) || n.Coord.Lat > max.Lat {
			max.Lat = n.Coord.Lat
		}
		if math.IsNaN(min.Lng) || n.Coord.Lng < min.Lng {
			min.Lng = n.Coord.Lng
		}
		if math.IsNaN(max.Lng) || n.Coord.Lng > max.Lng {
			max.Lng = n.Coord.Lng
		}
	}

	return min, max, true
}

// Nodes returns a copy of the node sequence in insertion order.
// Complexity: O(n) time and space.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Edges returns a copy of the edge sequence in insertion order.
// Complexity: O(m) time and space.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// NodeCount reports the number of stored nodes. Complexity: O(1).
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount reports the number of stored edges. Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// IndexOfCoordinate returns the 0-based position of the FIRST node whose
// coordinate equals c by numeric comparison, or -1 when no node matches.
// When several nodes share a coordinate the first is always reported, which
// can misattribute edges between duplicate-coordinate nodes with different
// names; NaN components never match, so stale or malformed endpoints resolve
// to -1 rather than failing.
// Complexity: O(n).
func (g *Graph) IndexOfCoordinate(c Coordinate) int {
	for i, n := range g.nodes {
		if n.Coord.Lat == c.Lat && n.Coord.Lng == c.Lng {
			return i
		}
	}

	return -1
}
