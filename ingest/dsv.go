// SPDX-License-Identifier: MIT
// Package: spatialgraph/ingest
//
// dsv.go — delimiter-separated point reader: latitude, longitude, optional
// name per line. Unusable lines are dropped, never fatal.

package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/TUW-GEO/spatialgraph/core"
)

// ErrRead indicates the underlying reader failed mid-stream; per-line parse
// problems are skipped and never raise it.
var ErrRead = errors.New("ingest: read failed")

// minDSVFields is the smallest usable record: latitude and longitude.
const minDSVFields = 2

// nameField is the index of the optional label column.
const nameField = 2

// DSV reads delimiter-separated records from r and returns one node per
// parseable line. A record needs at least two numeric fields (latitude,
// longitude); a third field, when present, becomes the node's Name. Records
// with too few fields or non-numeric coordinates are dropped (logged at
// Debug when a logger is configured), so header lines skip naturally.
// Complexity: O(lines).
func DSV(r io.Reader, opts ...Option) ([]core.Node, error) {
	cfg := newReaderConfig(opts...)

	cr := csv.NewReader(r)
	cr.Comma = cfg.comma
	cr.FieldsPerRecord = -1 // variable column counts are expected
	cr.TrimLeadingSpace = true

	var nodes []core.Node
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				// Structurally broken line (e.g. a stray quote): drop it.
				cfg.logger.Debug("skipping unparseable line", zap.Int("line", line), zap.Error(err))

				continue
			}

			return nil, fmt.Errorf("%w: %v", ErrRead, err)
		}

		if len(rec) < minDSVFields {
			cfg.logger.Debug("skipping short record", zap.Int("line", line), zap.Int("fields", len(rec)))

			continue
		}

		lat, errLat := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		lng, errLng := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if errLat != nil || errLng != nil {
			cfg.logger.Debug("skipping non-numeric record", zap.Int("line", line), zap.Strings("fields", rec))

			continue
		}

		node := core.Node{Coord: core.Coordinate{Lat: lat, Lng: lng}}
		if len(rec) > nameField {
			node.Name = strings.TrimSpace(rec[nameField])
		}
		nodes = append(nodes, node)
	}

	return nodes, nil
}
