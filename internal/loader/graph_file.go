package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/cflreach/core"
	"github.com/katalvlaran/cflreach/grammar"
)

// Edge is a dense initial edge ready for a store, produced by LoadGraph.
type Edge struct {
	From, To int
	Label    grammar.Symbol
}

// LoadGraph reads one edge per line from r as "FROM TO LABEL" (spec.md §6)
// into a core.Graph (the input-side labeled multigraph, loops and
// multi-edges both allowed since a CFL input graph may have either), then
// projects it into the dense int-id, grammar-symbol edge list a store
// consumes. FROM and TO must be non-negative integers; a line that doesn't
// parse that way wraps ErrMalformedGraphLine. A line whose LABEL is absent
// from idx is dropped from the returned edge list and does not grow the
// returned vertex count n either (resolves spec.md §9's open question: does
// N include vertices only touched by a dropped-label edge? no — matching
// `_examples/original_source/src/utils/graphs/Graph.cpp`'s loader, which
// `continue`s past its `numNodes_ = std::max(...)` update before reaching it
// whenever a label isn't in the grammar's symbol map, and independently
// `tests/simple_solver_test.cpp`'s `loadEdgesFromFile`, which does the same).
func LoadGraph(r io.Reader, idx *grammar.Index) (edges []Edge, n int, err error) {
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		tokens := strings.Fields(line)
		if len(tokens) != 3 {
			return nil, 0, fmt.Errorf("loader: graph line %d: %w", lineNo, ErrMalformedGraphLine)
		}

		from, ferr := strconv.Atoi(tokens[0])
		to, terr := strconv.Atoi(tokens[1])
		if ferr != nil || terr != nil || from < 0 || to < 0 {
			return nil, 0, fmt.Errorf("loader: graph line %d: %w", lineNo, ErrMalformedGraphLine)
		}

		if _, err := g.AddEdge(tokens[0], tokens[1], tokens[2]); err != nil {
			return nil, 0, fmt.Errorf("loader: graph line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("loader: reading graph: %w", err)
	}

	for _, e := range g.Edges() {
		label, ok := idx.Lookup(e.Label)
		if !ok {
			continue
		}
		from, ferr := strconv.Atoi(e.From)
		to, terr := strconv.Atoi(e.To)
		if ferr != nil {
			return nil, 0, fmt.Errorf("loader: internal vertex id %q: %w", e.From, ferr)
		}
		if terr != nil {
			return nil, 0, fmt.Errorf("loader: internal vertex id %q: %w", e.To, terr)
		}
		if from+1 > n {
			n = from + 1
		}
		if to+1 > n {
			n = to + 1
		}
		edges = append(edges, Edge{From: from, To: to, Label: label})
	}

	return edges, n, nil
}
