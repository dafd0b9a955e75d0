// SPDX-License-Identifier: MIT
// Package builder contains unit tests for the SISG generator: validation,
// minimum connectivity, monotonicity in k, and the asymmetric threshold
// relation.
package builder_test

import (
	"errors"
	"math"
	"testing"

	"github.com/TUW-GEO/spatialgraph/builder"
	"github.com/TUW-GEO/spatialgraph/core"
)

// planar is a Euclidean toy metric over raw coordinate components, which
// makes expected distances exact in tests.
func planar(a, b core.Coordinate) float64 {
	return math.Hypot(a.Lat-b.Lat, a.Lng-b.Lng)
}

// edgeSet collects the graph's edges into a set keyed by endpoint values.
func edgeSet(g *core.Graph) map[core.Edge]bool {
	set := make(map[core.Edge]bool, g.EdgeCount())
	for _, e := range g.Edges() {
		set[e] = true
	}

	return set
}

// triangle returns a fresh graph with the canonical 3-node fixture
// (0,0), (0,1), (1,0).
func triangle() *core.Graph {
	return core.NewGraph().AddNodes(
		core.Node{Coord: core.Coordinate{Lat: 0, Lng: 0}},
		core.Node{Coord: core.Coordinate{Lat: 0, Lng: 1}},
		core.Node{Coord: core.Coordinate{Lat: 1, Lng: 0}},
	)
}

// TestSISG_BadThreshold verifies that k ≤ 0 and NaN k are rejected with
// ErrBadThreshold before any node is read.
func TestSISG_BadThreshold(t *testing.T) {
	t.Parallel()

	for _, k := range []float64{0, -1, math.NaN()} {
		err := builder.Build(triangle(), nil, builder.SISG(k))
		if !errors.Is(err, builder.ErrBadThreshold) {
			t.Errorf("SISG(k=%v): err = %v; want ErrBadThreshold", k, err)
		}
	}
}

// TestSISG_TooFewNodes verifies that empty and single-node graphs generate
// no edges and no error: distMin is undefined, so nothing qualifies.
func TestSISG_TooFewNodes(t *testing.T) {
	t.Parallel()

	empty := core.NewGraph()
	if err := builder.Build(empty, nil, builder.SISG(1)); err != nil {
		t.Fatalf("SISG on empty graph: err = %v; want nil", err)
	}
	if empty.EdgeCount() != 0 {
		t.Errorf("SISG on empty graph produced %d edges; want 0", empty.EdgeCount())
	}

	lone := core.NewGraph().AddNodes(core.Node{Coord: core.Coordinate{Lat: 1, Lng: 1}})
	if err := builder.Build(lone, nil, builder.SISG(1)); err != nil {
		t.Fatalf("SISG on single node: err = %v; want nil", err)
	}
	if lone.EdgeCount() != 0 {
		t.Errorf("SISG on single node produced %d edges; want 0", lone.EdgeCount())
	}
}

// TestSISG_MinimumConnectivity verifies that at k = 1 every node gains at
// least one outgoing edge: its own nearest neighbor always satisfies
// dist ≤ k·distMin. On the (0,0),(0,1),(1,0) planar triangle the exact edge
// set is known: the corner node reaches both neighbors (tie at distance 1),
// the other two reach only the corner.
func TestSISG_MinimumConnectivity(t *testing.T) {
	t.Parallel()

	g := triangle()
	if err := builder.Build(g, []builder.Option{builder.WithDistanceFunc(planar)}, builder.SISG(1)); err != nil {
		t.Fatalf("Build: %v", err)
	}

	o := core.Coordinate{Lat: 0, Lng: 0}
	e := core.Coordinate{Lat: 0, Lng: 1}
	n := core.Coordinate{Lat: 1, Lng: 0}

	want := map[core.Edge]bool{
		{From: o, To: e}: true, // tie: dist == k·distMin includes the edge
		{From: o, To: n}: true,
		{From: e, To: o}: true,
		{From: n, To: o}: true,
	}
	got := edgeSet(g)
	if len(got) != len(want) {
		t.Fatalf("edge count = %d; want %d (got %v)", len(got), len(want), got)
	}
	for w := range want {
		if !got[w] {
			t.Errorf("missing edge %v", w)
		}
	}

	// Per-node minimum connectivity: every node has an outgoing edge.
	for _, node := range g.Nodes() {
		out := 0
		for edge := range got {
			if edge.From == node.Coord {
				out++
			}
		}
		if out == 0 {
			t.Errorf("node %v has no outgoing edge at k=1", node.Coord)
		}
	}
}

// TestSISG_Asymmetry verifies the one-directional case on collinear points
// 0, 1, 3: the far node reaches its nearest neighbor at exactly its own
// threshold, while the middle node's tighter threshold excludes the far one.
func TestSISG_Asymmetry(t *testing.T) {
	t.Parallel()

	a := core.Coordinate{Lat: 0, Lng: 0}
	b := core.Coordinate{Lat: 0, Lng: 1}
	c := core.Coordinate{Lat: 0, Lng: 3}

	g := core.NewGraph().AddNodes(
		core.Node{Coord: a}, core.Node{Coord: b}, core.Node{Coord: c},
	)
	if err := builder.Build(g, []builder.Option{builder.WithDistanceFunc(planar)}, builder.SISG(1)); err != nil {
		t.Fatalf("Build: %v", err)
	}

	got := edgeSet(g)
	if !got[core.Edge{From: c, To: b}] {
		t.Error("expected edge c→b (dist 2 == c's threshold 2)")
	}
	if got[core.Edge{From: b, To: c}] {
		t.Error("unexpected edge b→c (dist 2 > b's threshold 1)")
	}
}

// TestSISG_MonotonicInK verifies that increasing k never removes an edge:
// the threshold k·distMin is non-decreasing in k.
func TestSISG_MonotonicInK(t *testing.T) {
	t.Parallel()

	nodes := []core.Node{
		{Coord: core.Coordinate{Lat: 0, Lng: 0}},
		{Coord: core.Coordinate{Lat: 0, Lng: 1}},
		{Coord: core.Coordinate{Lat: 0, Lng: 3}},
		{Coord: core.Coordinate{Lat: 2, Lng: 2}},
		{Coord: core.Coordinate{Lat: 5, Lng: 5}},
	}
	opts := []builder.Option{builder.WithDistanceFunc(planar)}

	small := core.NewGraph().AddNodes(nodes...)
	if err := builder.Build(small, opts, builder.SISG(1)); err != nil {
		t.Fatalf("Build(k=1): %v", err)
	}
	large := core.NewGraph().AddNodes(nodes...)
	if err := builder.Build(large, opts, builder.SISG(2.5)); err != nil {
		t.Fatalf("Build(k=2.5): %v", err)
	}

	largeSet := edgeSet(large)
	for edge := range edgeSet(small) {
		if !largeSet[edge] {
			t.Errorf("edge %v present at k=1 but missing at k=2.5", edge)
		}
	}
}

// TestSISG_NaNNodeGainsNoEdges verifies degrade-gracefully semantics:
// a malformed node produces NaN distances, which never qualify, so it gains
// no outgoing edges while clean nodes are unaffected.
func TestSISG_NaNNodeGainsNoEdges(t *testing.T) {
	t.Parallel()

	bad := core.Coordinate{Lat: math.NaN(), Lng: 0}
	g := core.NewGraph().AddNodes(
		core.Node{Coord: core.Coordinate{Lat: 0, Lng: 0}},
		core.Node{Coord: core.Coordinate{Lat: 0, Lng: 1}},
		core.Node{Coord: bad},
	)
	if err := builder.Build(g, []builder.Option{builder.WithDistanceFunc(planar)}, builder.SISG(1)); err != nil {
		t.Fatalf("Build: %v", err)
	}

	for edge := range edgeSet(g) {
		if math.IsNaN(edge.From.Lat) || math.IsNaN(edge.To.Lat) {
			t.Errorf("malformed node participated in edge %v", edge)
		}
	}
	if g.EdgeCount() != 2 {
		t.Errorf("edge count = %d; want 2 (the clean pair, both directions)", g.EdgeCount())
	}
}

// TestSISG_DefaultGeodesicMetric verifies the generator runs against the
// default geodist metric when no distance option is given.
func TestSISG_DefaultGeodesicMetric(t *testing.T) {
	t.Parallel()

	g := triangle()
	if err := builder.Build(g, nil, builder.SISG(1)); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.EdgeCount() == 0 {
		t.Fatal("no edges generated under the default geodesic metric")
	}
}
