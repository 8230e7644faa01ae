// SPDX-License-Identifier: MIT
// Package: cflreach/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits edges in stable order i -> (i+1)%n for i=0..n-1.
//   • Label policy: each edge labeled via cfg.labelFn(cfg.rng).
//   • Honors core mode flags (Loops/Multigraph) without silent degrade.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.
//   • Space: O(1) extra (iter vars only).
//
// Determinism:
//   • Deterministic IDs via cfg.idFn.
//   • Deterministic edge emission order by increasing i.
//   • Deterministic labels given fixed cfg.rng/labelFn.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cflreach/core"
)

// Cycle returns a Constructor that builds an n-vertex directed simple cycle C_n.
func Cycle(n int) Constructor {
	// Return a closure capturing n; BuildGraph will pass (g,cfg).
	return func(g *core.Graph, cfg builderConfig) error {
		// Validate parameter domain early (fail fast, no work on invalid input).
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}

		// Add n vertices with deterministic IDs produced by cfg.idFn.
		if err := addVerticesWithIDFn(g, n, cfg.idFn); err != nil {
			return fmt.Errorf("%s: %w", MethodCycle, err)
		}

		// Emit edges in ascending i; for i==n-1, connect to 0 to close the ring.
		for i := 0; i < n; i++ {
			// Compute ordered pair (u,v) for the ring step.
			uID := cfg.idFn(i)
			vID := cfg.idFn((i + 1) % n)
			label := cfg.labelFn(cfg.rng)

			// Add the ring edge.
			if _, err := g.AddEdge(uID, vID, label); err != nil {
				// Wrap and return immediately on first failure (no partial cleanup).
				return fmt.Errorf("%s: AddEdge(%s→%s, label=%s): %w", MethodCycle, uID, vID, label, err)
			}
		}

		// Success: cycle fully constructed.
		return nil
	}
}
