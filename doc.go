// Package spatialgraph builds and analyzes spatial graphs: graphs whose
// nodes carry geographic coordinates and whose edges come from geometric
// or probabilistic generation rules rather than explicit input.
//
// 🚀 What is spatialgraph?
//
//	A small, deterministic library organized around one in-memory store and
//	two classic edge-generation models:
//		• Core store: insertion-ordered nodes & edges with structural dedup
//		• SISG model: density-adaptive edges within k× each node's
//		  nearest-neighbor distance
//		• Gilbert model: independent edges with fixed probability p
//		• Geodesic metric: cheap equirectangular great-circle distance
//		• Ingest: GeoJSON & delimited-text point readers, random sampling
//		• Export: CSV index pairs and Trivial Graph Format
//
// ✨ Why choose spatialgraph?
//
//   - Deterministic by construction – randomness is injected, never global
//   - Degrade gracefully – malformed points are tolerated, not fatal
//   - Fluent mutation – every store mutator returns the graph for chaining
//   - Pure Go core – no cgo, no network, no persistence
//
// Everything is organized under five subpackages:
//
//	core/     — Coordinate, Node, Edge, Graph: the owned mutable store
//	geodist/  — the great-circle distance metric
//	builder/  — SISG & Gilbert edge generators, random point sampling
//	ingest/   — GeoJSON and delimited-text node producers
//	export/   — CSV and TGF serialization of the current graph state
//
// Quick sketch:
//
//	g := core.NewGraph().AddNodes(nodes...)
//	_ = builder.Build(g, []builder.Option{builder.WithSeed(1)},
//		builder.Gilbert(0.2))
//	_ = export.TGF(g, os.Stdout)
//
//	go get github.com/TUW-GEO/spatialgraph
package spatialgraph
