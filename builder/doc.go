// Package builder generates spatial-graph content: edges from geometric or
// probabilistic models, and nodes from random sampling.
//
// What:
//
//   - SISG(k): the Scale-Invariant Spatial Graph model. Each node connects to
//     every other node within k times its own nearest-neighbor distance, so
//     local connectivity adapts to local density. The relation is not
//     symmetric: i→j may qualify while j→i does not.
//   - Gilbert(p): the classical Gilbert / Erdős–Rényi model. Each unordered
//     node pair is connected independently with probability p.
//   - RandomPoints(n): uniform node sampling inside a configurable
//     latitude/longitude box.
//
// How:
//
//   - Each factory returns a Generator closure; Build(g, opts, gens...)
//     resolves functional options into an immutable config and applies the
//     generators in order against the target core.Graph.
//   - Generators read nodes through the Graph's accessor, never alias its
//     internals, and write results back through AddNodes/AddEdges — so
//     deduplication is a postcondition of every run.
//
// Determinism:
//
//   - Randomness is injected, never global: seed via WithSeed or supply a
//     *rand.Rand via WithRand. Trial order is fixed and documented per
//     generator, so a fixed seed reproduces the exact same graph.
//   - The distance metric is injectable via WithDistanceFunc (default:
//     geodist.Distance), which makes SISG testable on planar toy metrics.
//
// Errors:
//
//   - ErrBadThreshold: SISG multiplier k is NaN or not positive.
//   - ErrInvalidProbability: Gilbert p outside [0,1].
//   - ErrNeedRandSource: stochastic generator invoked without an RNG.
//   - ErrBadSize: RandomPoints n is negative.
//   - ErrNilGraph, ErrGenerateFailed: programmer errors at the Build boundary.
//
// Generators validate early, return sentinel errors wrapped with method
// context, and never panic; option constructors panic on meaningless input.
package builder
