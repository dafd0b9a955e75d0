// SPDX-License-Identifier: MIT
// Package: spatialgraph/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Build(g, opts, gens...). Resolves cfg, runs gens in order.
//   - All public factories are declared in impl_*.go files, one model each.
//   - Functional options (Option) resolve into an immutable generatorConfig.
//   - Determinism: same graph state, options/seed, and generator order ⇒
//     identical resulting graphs.
//   - Safety: never panic; return sentinel errors from generators.

package builder

import (
	"fmt"

	"github.com/TUW-GEO/spatialgraph/core"
)

// Generator applies one generation model against the target graph using the
// resolved generatorConfig. Generators MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Read nodes only through the Graph accessor (no internal aliasing).
//   - Write results back only via AddNodes/AddEdges (dedup postcondition).
//   - Preserve determinism for the same config and call order.
type Generator func(g *core.Graph, cfg generatorConfig) error

// Build resolves the generator configuration from opts and applies all
// generators in order against g. Any generator error is wrapped with the
// context "Build: %w" and returned immediately; edges already written by
// earlier generators remain (no rollback by design — the caller owns g and
// can ClearEdges).
//
// Complexity: O(len(opts)) resolution + Σ cost of each generator.
//
// Errors: wraps generator errors via %w; branch with errors.Is against the
// package sentinels (ErrBadThreshold, ErrInvalidProbability, ...).
func Build(g *core.Graph, opts []Option, gens ...Generator) error {
	if g == nil {
		return fmt.Errorf("Build: %w", ErrNilGraph)
	}

	// Resolve deterministic configuration once for the whole run.
	cfg := newGeneratorConfig(opts...)

	// Apply each generator sequentially to preserve deterministic order.
	for i, gen := range gens {
		if gen == nil {
			return fmt.Errorf("Build: nil generator at index %d: %w", i, ErrGenerateFailed)
		}
		if err := gen(g, cfg); err != nil {
			return fmt.Errorf("Build: %w", err)
		}
	}

	return nil
}
