// Package loader parses the grammar and graph input files described in
// spec.md §6 into a grammar.Index and a dense initial-edge list, grounded
// on builder/id_fn.go's style of small, pure, single-purpose parsing
// helpers and builder/errors.go's sentinel-plus-%w-wrapping error policy.
package loader

import "errors"

var (
	// ErrMalformedGrammarLine indicates a grammar line with more than 3
	// whitespace-separated tokens (spec.md §6, §7).
	ErrMalformedGrammarLine = errors.New("loader: grammar line has more than 3 symbols")

	// ErrMalformedGraphLine indicates a graph line that is not exactly
	// "FROM TO LABEL" or whose FROM/TO is not a non-negative integer
	// (spec.md §6, §7 "vertex id overflow / negative").
	ErrMalformedGraphLine = errors.New("loader: graph line is not FROM TO LABEL with non-negative integer ids")
)
