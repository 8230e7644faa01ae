// Package builder provides internal helper functions and constants
// used by Constructor implementations to build common topologies.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: wrap errors with fmt.Errorf and %w for uniform reporting.
//   - Performance: avoid unnecessary allocations; reuse loop variables.
//   - Readability: explicit naming, minimal nesting, consistent style.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/cflreach/core"
)

// addVerticesWithIDFn adds vertices idFn(0..n-1), returning the first
// AddVertex failure unwrapped; callers add the constructor's method tag.
func addVerticesWithIDFn(g *core.Graph, n int, idFn IDFn) error {
	var (
		i   int
		vid string
		err error
	)
	for i = 0; i < n; i++ {
		vid = idFn(i)
		if err = g.AddVertex(vid); err != nil {
			return err
		}
	}
	return nil
}

// addCompleteEdges connects every unordered pair in ids with a forward and a
// mirrored backward edge, each labeled via labelFn(rng). core.Graph is
// always directed, so mutual reachability between every pair requires both
// directions to be added explicitly.
//
// Parameters:
//   - g:       target graph.
//   - ids:     slice of vertex IDs.
//   - labelFn: label generator; rng may be nil (labelFn must tolerate it).
//   - rng:     optional randomness source passed through to labelFn.
//
// Returns the first error encountered, wrapped with context.
//
// Complexity: O(m²) time where m = len(ids), O(1) extra space.
func addCompleteEdges(g *core.Graph, ids []string, labelFn LabelFn, rng *rand.Rand) error {
	var (
		i, j int
		u, v string
		err  error
	)
	// outer loop over vertex IDs
	for i = 0; i < len(ids); i++ {
		u = ids[i] // source vertex ID
		// inner loop over subsequent IDs to avoid duplicates
		for j = i + 1; j < len(ids); j++ {
			v = ids[j] // target vertex ID
			label := labelFn(rng)
			// add edge u -> v
			if _, err = g.AddEdge(u, v, label); err != nil {
				return fmt.Errorf("addCompleteEdges: AddEdge(%s->%s,label=%s): %w", u, v, label, err)
			}
			// mirror v -> u so every pair is mutually reachable
			if _, err = g.AddEdge(v, u, label); err != nil {
				return fmt.Errorf("addCompleteEdges: AddEdge(%s->%s,label=%s): %w", v, u, label, err)
			}
		}
	}

	// all pairs connected successfully
	return nil
}
