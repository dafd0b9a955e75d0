// Package export serializes a spatial graph's edge structure to simple text
// formats: CSV index pairs and the Trivial Graph Format (TGF).
//
// Both exporters are pure read-only views over the graph's current state.
// Edge endpoints are resolved to 0-based node indices by first-match
// coordinate equality (core.Graph.IndexOfCoordinate): when several nodes
// share a coordinate the first is always reported, and an endpoint that no
// longer matches any node — a stale edge after node removal, or a malformed
// NaN coordinate — is written as the sentinel index -1 rather than failing.
//
// The formats are output-only; this module owns no corresponding parser.
package export
