// SPDX-License-Identifier: MIT
// Package: cflreach/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges (i-1) -> i for i=1..n-1 in stable increasing order.
//   - Label policy: each edge labeled via cfg.labelFn(cfg.rng).
//   - Honors core mode flags (Loops/Multigraph) without silent degrade.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.
//   - Space: O(1) extra.
//
// Determinism:
//   - Deterministic IDs via cfg.idFn.
//   - Deterministic edge emission order by increasing i.
//   - Deterministic labels given fixed cfg.rng/labelFn.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cflreach/core"
)

// Path returns a Constructor that builds a directed simple path P_n.
func Path(n int) Constructor {
	// Return a closure capturing n; BuildGraph supplies (g,cfg).
	return func(g *core.Graph, cfg builderConfig) error {
		// Validate parameter domain early.
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}

		// Add n vertices with deterministic IDs produced by cfg.idFn.
		if err := addVerticesWithIDFn(g, n, cfg.idFn); err != nil {
			return fmt.Errorf("%s: %w", MethodPath, err)
		}

		var (
			i        int    // loop iterator
			uID, vID string // edge endpoints
		)
		// Emit path edges from 0->1->2->...->(n-1) in stable order.
		for i = 1; i < n; i++ {
			// Determine endpoints for the current segment.
			uID = cfg.idFn(i - 1)
			vID = cfg.idFn(i)
			label := cfg.labelFn(cfg.rng)

			// Add the path edge.
			if _, err := g.AddEdge(uID, vID, label); err != nil {
				// Wrap context and surface the error.
				return fmt.Errorf("%s: AddEdge(%s→%s, label=%s): %w", MethodPath, uID, vID, label, err)
			}
		}

		// Success: path fully constructed.
		return nil
	}
}
