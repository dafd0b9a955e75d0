// Package ingest turns external point data into core.Node sequences ready
// for Graph.AddNodes. It is boundary glue: all parsing tolerance lives here,
// none of it leaks into the core.
//
// What:
//
//   - GeoJSON(r): reads a FeatureCollection and keeps its Point features.
//     GeoJSON stores positions longitude-first; the reader reverses each
//     pair into the core's latitude-first Coordinate. A feature's
//     "name" property (string) becomes the node's Name.
//   - DSV(r): reads delimiter-separated lines of two or three columns —
//     latitude, longitude, optional name. The delimiter defaults to a comma
//     and is configurable via WithComma.
//
// Degrade gracefully:
//
//   - Records that cannot be used — non-Point geometries, short coordinate
//     arrays, non-numeric latitude/longitude, too few columns — are dropped
//     without failing the whole read. Only a structurally broken document
//     (GeoJSON that does not decode) is an error.
//   - Diagnostics are opt-in: WithLogger attaches a *zap.Logger and every
//     skipped record is logged at Debug with its reason. The default logger
//     is a no-op, preserving the silent-tolerance contract.
//
// Readers return fresh slices; they never touch a Graph themselves. Feed the
// result to AddNodes, which deduplicates as a postcondition.
package ingest
