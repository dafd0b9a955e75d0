// Package core defines the central Graph, Node, Edge, and Coordinate types
// for building spatial graphs: graphs whose nodes carry geographic positions
// and whose edges are produced by geometric or probabilistic generators.
//
// What:
//
//   - Coordinate is a latitude-first (Lat, Lng) pair in degrees.
//   - Node couples a Coordinate with an optional Name.
//   - Edge references its endpoints by coordinate VALUE, never by node identity.
//   - Graph owns one insertion-ordered node sequence and one insertion-ordered
//     edge sequence, with structural deduplication over both.
//
// Why:
//
//   - Generators (see the builder package) read the node sequence, compute a
//     candidate edge set, and write it back through AddEdges; deduplication is
//     a postcondition of every bulk write.
//   - Exporters resolve edge endpoints back to node indices by first-match
//     coordinate equality; IndexOfCoordinate is that shared lookup.
//
// Identity:
//
//   - Two nodes are the same iff their canonical serializations (Lat, Lng,
//     Name, in that field order) are identical. Same coordinates under
//     different names are distinct nodes; same coordinates with both names
//     absent are duplicates.
//   - Two edges are the same iff both endpoint coordinates serialize equally.
//
// Ownership & concurrency:
//
//   - The Graph is the sole owner of both sequences: Nodes and Edges return
//     copies, and all writes go through Graph methods. Every mutator returns
//     the receiver so calls chain fluently.
//   - A Graph is meant to be mutated by exactly one logical owner at a time;
//     no internal locking is provided. Wrap calls in your own mutex if you
//     must share one across goroutines.
//
// Degraded input:
//
//   - Malformed nodes (NaN coordinates) are accepted silently. They serialize
//     stably, so duplicates still collapse, but NaN never matches a numeric
//     comparison: such nodes gain no generated edges and resolve to index -1
//     on export. Callers wanting diagnostics should validate up front.
//
// Complexity:
//
//   - AddNodes/AddEdges/Dedupe*: O(n) over the affected sequence.
//   - BoundingBox: O(n). IndexOfCoordinate: O(n).
package core
