// SPDX-License-Identifier: MIT
// Package: spatialgraph/export
//
// tgf.go — Trivial Graph Format: a node section, a '#' separator, and an
// edge section of index pairs.

package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/TUW-GEO/spatialgraph/core"
)

// tgfSeparator divides the node section from the edge section.
const tgfSeparator = "#"

// TGF writes the graph to w in Trivial Graph Format. Each node line carries
// its 0-based index, the name followed by " - " when the node is named, and
// the coordinate as "lat,lng"; after the separator, each edge line carries
// the resolved `from to` index pair (-1 for endpoints with no matching
// node). Index resolution matches the CSV exporter.
// Complexity: O(n) node lines + O(m·n) index lookups.
func TGF(g *core.Graph, w io.Writer) error {
	bw := bufio.NewWriter(w)

	for i, n := range g.Nodes() {
		label := formatCoordinate(n.Coord)
		if n.Name != "" {
			label = n.Name + " - " + label
		}
		if _, err := fmt.Fprintf(bw, "%d %s\n", i, label); err != nil {
			return fmt.Errorf("export: write TGF node: %w", err)
		}
	}
	if _, err := fmt.Fprintln(bw, tgfSeparator); err != nil {
		return fmt.Errorf("export: write TGF separator: %w", err)
	}
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "%d %d\n",
			g.IndexOfCoordinate(e.From), g.IndexOfCoordinate(e.To)); err != nil {
			return fmt.Errorf("export: write TGF edge: %w", err)
		}
	}

	return bw.Flush()
}

// formatCoordinate renders a coordinate as "lat,lng" in shortest round-trip
// form, the same float rendering the core uses for canonical keys.
func formatCoordinate(c core.Coordinate) string {
	return strconv.FormatFloat(c.Lat, 'g', -1, 64) + "," + strconv.FormatFloat(c.Lng, 'g', -1, 64)
}
