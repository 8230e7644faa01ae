// Package grammar indexes a normalized context-free grammar (productions of
// arity 0, 1, or 2) over a single label alphabet shared with the input
// graph, for O(1) rule lookup during saturation.
//
// Errors:
//
//	ErrMalformedProduction - a production line has more than 3 symbols.
//	ErrEmptyProduction     - a production line has zero symbols.
package grammar

import "errors"

var (
	// ErrMalformedProduction indicates a production with more than 3 symbols
	// (grammar not in normal form).
	ErrMalformedProduction = errors.New("grammar: production has more than 3 symbols")

	// ErrEmptyProduction indicates a production line with zero symbols.
	ErrEmptyProduction = errors.New("grammar: production has no symbols")
)
