// SPDX-License-Identifier: MIT
// Package: spatialgraph/ingest
//
// geojson.go — GeoJSON FeatureCollection reader for Point features.
//
// GeoJSON positions are [longitude, latitude]; the core Coordinate is
// latitude-first, so the reader swaps each pair on the way in.

package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/TUW-GEO/spatialgraph/core"
)

// ErrBadGeoJSON indicates the input was not a decodable GeoJSON document.
// Per-feature problems never raise it; they are skipped instead.
var ErrBadGeoJSON = errors.New("ingest: malformed GeoJSON document")

// geometryPoint is the only geometry type this reader keeps.
const geometryPoint = "Point"

// featureCollection mirrors the standard GeoJSON structure, narrowed to the
// fields this reader consumes.
type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

type feature struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   geometry               `json:"geometry"`
}

type geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"` // [Lon, Lat]
}

// namePropertyKey is the feature property promoted to Node.Name.
const namePropertyKey = "name"

// GeoJSON reads a FeatureCollection from r and returns one node per Point
// feature, with coordinate order reversed from GeoJSON's [lon, lat] to the
// core's (lat, lng). Non-Point features and malformed coordinate arrays are
// skipped (logged at Debug when a logger is configured). A document that
// fails to decode returns ErrBadGeoJSON with decode context.
// Complexity: O(bytes) decode + O(features).
func GeoJSON(r io.Reader, opts ...Option) ([]core.Node, error) {
	cfg := newReaderConfig(opts...)

	var doc featureCollection
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadGeoJSON, err)
	}

	nodes := make([]core.Node, 0, len(doc.Features))
	for i, f := range doc.Features {
		if f.Geometry.Type != geometryPoint {
			cfg.logger.Debug("skipping non-Point feature",
				zap.Int("feature", i), zap.String("geometry", f.Geometry.Type))

			continue
		}
		if len(f.Geometry.Coordinates) < 2 {
			cfg.logger.Debug("skipping Point with short coordinate array",
				zap.Int("feature", i), zap.Int("len", len(f.Geometry.Coordinates)))

			continue
		}

		node := core.Node{
			// GeoJSON is longitude-first; flip into latitude-first.
			Coord: core.Coordinate{
				Lat: f.Geometry.Coordinates[1],
				Lng: f.Geometry.Coordinates[0],
			},
		}
		if name, ok := f.Properties[namePropertyKey].(string); ok {
			node.Name = name
		}
		nodes = append(nodes, node)
	}

	return nodes, nil
}
