// SPDX-License-Identifier: MIT
// Package: spatialgraph/core
//
// types.go - Coordinate, Node, Edge, Graph declarations, canonical keys,
// and the NewGraph constructor.

package core

import (
	"strconv"
	"strings"
)

// keySep separates serialized fields inside canonical keys. The unit
// separator cannot appear in a formatted float and is vanishingly unlikely
// in a node name, so keys never collide across field boundaries.
const keySep = "\x1f"

// Coordinate is a geographic position in degrees, latitude first.
// Latitude is expected in [-90, 90] and longitude in [-180, 180]; the range
// is assumed for geodesic correctness but deliberately not enforced.
type Coordinate struct {
	// Lat is the latitude in degrees.
	Lat float64

	// Lng is the longitude in degrees.
	Lng float64
}

// appendKey writes the canonical field-ordered serialization of c to b.
// FormatFloat with precision -1 is the shortest round-trip form, so equal
// float values always serialize identically (NaN serializes as "NaN").
func (c Coordinate) appendKey(b *strings.Builder) {
	b.WriteString(strconv.FormatFloat(c.Lat, 'g', -1, 64))
	b.WriteString(keySep)
	b.WriteString(strconv.FormatFloat(c.Lng, 'g', -1, 64))
}

// Node is a graph vertex embedded at a geographic Coordinate.
//
// Name is optional; the empty string means unnamed. Nodes carry no persistent
// identifier: their position in the node sequence at the time of an operation
// is their only addressable handle, and deduplication can shift positions, so
// callers must not cache indices across mutating calls.
type Node struct {
	// Coord is the node's geographic position.
	Coord Coordinate

	// Name is an optional human-readable label ("" = unnamed).
	Name string
}

// key returns the canonical serialization of n used for structural
// deduplication: (Lat, Lng, Name) in fixed field order.
func (n Node) key() string {
	var b strings.Builder
	n.Coord.appendKey(&b)
	b.WriteString(keySep)
	b.WriteString(n.Name)

	return b.String()
}

// Edge is a directed connection between two coordinate values.
//
// Endpoints are held by value, not by node reference: two nodes with equal
// coordinates are indistinguishable as endpoints, and an edge can outlive the
// node it was generated from (see the export package's -1 sentinel).
type Edge struct {
	// From is the source endpoint.
	From Coordinate

	// To is the destination endpoint.
	To Coordinate
}

// key returns the canonical serialization of e used for structural
// deduplication: (From, To) in fixed field order.
func (e Edge) key() string {
	var b strings.Builder
	e.From.appendKey(&b)
	b.WriteString(keySep)
	e.To.appendKey(&b)

	return b.String()
}

// Graph is the in-memory spatial graph store.
//
// It owns an insertion-ordered node sequence and an insertion-ordered edge
// sequence. Nodes enter through AddNodes (bulk producers, samplers, readers);
// edges enter through AddEdges (generators). Removal is wholesale only:
// ClearEdges or ClearGraph. Not safe for concurrent use.
type Graph struct {
	nodes []Node
	edges []Edge
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{}
}
