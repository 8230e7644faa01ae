// SPDX-License-Identifier: MIT
// Package: cflreach/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator over a directed graph: include each ordered
//     pair (i,j) independently with probability p; self-loops (i==j) are
//     included only when g.Looped() is true.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil whenever 0 < p < 1 (else ErrNeedRandSource).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Label policy: each sampled edge labeled via cfg.labelFn(cfg.rng).
//   - Honors core flags (Loops/Multigraph) without silent degrade.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) vertices + O(n²) Bernoulli trials / edge checks.
//   - Space: O(1) extra (no global buffers).
//
// Determinism:
//   - Stable vertex order: i asc.
//   - Stable edge-trial order: for each i asc, j asc.
//   - Deterministic outcomes for fixed seed/options due to fixed trial order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cflreach/core"
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like
// directed graph over n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	// The returned closure captures (n, p); BuildGraph supplies (g, cfg).
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if err := validateMin(MethodRandomSparse, n, MinCompleteNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}

		// RNG is only required when 0 < p < 1 (true stochastic sampling).
		if cfg.rng == nil && p > 0.0 && p < 1.0 {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		// 2) Add all vertices deterministically via cfg.idFn (IDs 0..n-1).
		if err := addVerticesWithIDFn(g, n, cfg.idFn); err != nil {
			return fmt.Errorf("%s: %w", MethodRandomSparse, err)
		}

		// 3) Cache mode flags for single-branch logic and dereference RNG once.
		rng := cfg.rng      // local alias for RNG (may be nil for p∈{0,1})
		loops := g.Looped() // whether self-loops are allowed

		var (
			i, j int    // loop iterators
			u, v string // edge endpoints
		)
		// 4) Sample edges over all ordered pairs (i,j) with a stable, documented order.
		for i = 0; i < n; i++ { // stable outer loop: i asc
			u = cfg.idFn(i)         // left endpoint ID
			for j = 0; j < n; j++ { // inner loop: j asc
				// Disallow self-loops unless explicitly permitted by mode flags.
				if i == j && !loops {
					continue
				}

				// Bernoulli trial: include edge with probability p.
				include := false
				switch {
				case rng == nil && p == 1.0:
					include = true
				case rng == nil:
					include = false
				default:
					include = rng.Float64() < p
				}
				if !include {
					continue
				}

				v = cfg.idFn(j) // right endpoint ID
				label := cfg.labelFn(rng)

				// Add directed edge u→v; core handles multigraph/parallel policies.
				if _, err := g.AddEdge(u, v, label); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, label=%s): %w",
						MethodRandomSparse, u, v, label, err)
				}
			}
		}

		// 5) Success: random sparse graph sampled deterministically for a fixed seed.
		return nil
	}
}
