// SPDX-License-Identifier: MIT
// Package: cflreach/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits each unordered pair {i,j} with i<j as two directed edges
//     (i→j and j→i), so every pair is mutually reachable.
//   • Label policy: each edge labeled via cfg.labelFn(cfg.rng).
//   • Honors core mode flags (Loops/Multigraph) without silent degrade.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n) vertices + O(n²) edges emission.
//   • Space: O(n) extra for the precomputed ID slice.
//
// Determinism:
//   • Deterministic IDs via cfg.idFn.
//   • Deterministic pair order: lexicographic by (i,j), i<j.
//   • Deterministic labels for a fixed cfg.rng/labelFn.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cflreach/core"
)

// Complete returns a Constructor that builds the complete mutually-reachable
// graph K_n.
func Complete(n int) Constructor {
	// The returned closure captures n; BuildGraph supplies (g,cfg).
	return func(g *core.Graph, cfg builderConfig) error {
		// Early parameter validation: K_n is defined for n≥1.
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}

		// Add n vertices with deterministic IDs produced by cfg.idFn.
		if err := addVerticesWithIDFn(g, n, cfg.idFn); err != nil {
			return fmt.Errorf("%s: %w", MethodComplete, err)
		}

		// Recompute the same deterministic IDs for stable reuse in the edge pass.
		ids := make([]string, n) // O(n) space
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
		}

		// Connect every pair in both directions via the shared helper.
		if err := addCompleteEdges(g, ids, cfg.labelFn, cfg.rng); err != nil {
			return fmt.Errorf("%s: %w", MethodComplete, err)
		}

		// Success: complete graph constructed deterministically.
		return nil
	}
}
