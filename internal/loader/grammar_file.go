package loader

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/cflreach/grammar"
)

// LoadGrammar reads one production per line from r (spec.md §6): tokens are
// ASCII-whitespace separated, 1 token is an epsilon rule, 2 a unary rule, 3
// a binary rule. Blank lines and surrounding whitespace are tolerated; any
// other arity is a fatal error wrapping ErrMalformedGrammarLine with its
// line number.
func LoadGrammar(r io.Reader) (*grammar.Index, error) {
	idx := grammar.NewIndex()

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		tokens := strings.Fields(line)
		if err := idx.AddProduction(tokens); err != nil {
			return nil, fmt.Errorf("loader: grammar line %d: %w: %w", lineNo, ErrMalformedGrammarLine, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loader: reading grammar: %w", err)
	}

	return idx, nil
}
