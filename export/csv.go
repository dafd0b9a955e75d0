// SPDX-License-Identifier: MIT
// Package: spatialgraph/export
//
// csv.go — edge list as CSV index pairs.

package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/TUW-GEO/spatialgraph/core"
)

// csvHeader is the fixed CSV header row.
var csvHeader = []string{"from", "to"}

// CSV writes the graph's edges to w as CSV: a `from,to` header followed by
// one row per edge carrying the 0-based indices of each endpoint's first
// matching node (-1 when no node matches). Insertion order is preserved.
// Complexity: O(m·n) index lookups.
func CSV(g *core.Graph, w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("export: write CSV header: %w", err)
	}
	for _, e := range g.Edges() {
		row := []string{
			strconv.Itoa(g.IndexOfCoordinate(e.From)),
			strconv.Itoa(g.IndexOfCoordinate(e.To)),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: write CSV row: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}
