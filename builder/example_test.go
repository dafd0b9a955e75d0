// SPDX-License-Identifier: MIT
package builder_test

import (
	"fmt"

	"github.com/TUW-GEO/spatialgraph/builder"
	"github.com/TUW-GEO/spatialgraph/core"
)

// Example demonstrates the intended pipeline: seed a graph with three fixed
// stations, connect each to every neighbor within 1× its nearest-neighbor
// distance, and count the result. SISG is deterministic, so no seed is
// needed here.
func Example() {
	g := core.NewGraph().AddNodes(
		core.Node{Coord: core.Coordinate{Lat: 0, Lng: 0}},
		core.Node{Coord: core.Coordinate{Lat: 0, Lng: 1}},
		core.Node{Coord: core.Coordinate{Lat: 1, Lng: 0}},
	)

	if err := builder.Build(g, nil, builder.SISG(1)); err != nil {
		fmt.Println("build failed:", err)

		return
	}

	fmt.Println(g.NodeCount(), "nodes,", g.EdgeCount(), "edges")
	// Output: 3 nodes, 4 edges
}
