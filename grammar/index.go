package grammar

import "fmt"

// Symbol is a dense integer id assigned to a label the first time it is seen
// while a grammar is loaded. The mapping is bijective
// with the symbol table held by Index.
type Symbol int

// BinRef is one entry of a binary-production adjacency list: given a peer
// symbol (the other RHS symbol of a binary production), Lhs is the
// production's left-hand side.
type BinRef struct {
	Peer Symbol
	Lhs  Symbol
}

// pairKey indexes binByPair by an ordered (B, C) pair. A map is used instead
// of a flat L·L table (spec.md §4.1 allows either) since grammars seen in
// practice have far fewer distinct (B,C) pairs than L².
type pairKey struct {
	b, c Symbol
}

// Index holds a grammar's symbol table and the five lookup structures
// saturation strategies need: hasEpsilon, unaryByRhs, binByPair, binByLeft,
// binByRight. Immutable once built; safe for concurrent reads from any
// number of saturation workers.
type Index struct {
	byName map[string]Symbol
	names  []string // names[s] is the source text of symbol s

	hasEpsilon map[Symbol]bool
	unaryByRhs map[Symbol][]Symbol
	binByPair  map[pairKey][]Symbol
	binByLeft  map[Symbol][]BinRef
	binByRight map[Symbol][]BinRef
}

// NewIndex returns an empty grammar index ready for AddProduction calls.
func NewIndex() *Index {
	return &Index{
		byName:     make(map[string]Symbol),
		hasEpsilon: make(map[Symbol]bool),
		unaryByRhs: make(map[Symbol][]Symbol),
		binByPair:  make(map[pairKey][]Symbol),
		binByLeft:  make(map[Symbol][]BinRef),
		binByRight: make(map[Symbol][]BinRef),
	}
}

// Intern returns the dense id for name, assigning the next sequential id on
// first occurrence. Complexity: amortized O(1).
func (idx *Index) Intern(name string) Symbol {
	if s, ok := idx.byName[name]; ok {
		return s
	}
	s := Symbol(len(idx.names))
	idx.byName[name] = s
	idx.names = append(idx.names, name)

	return s
}

// Lookup returns the dense id for name without interning it, reporting ok
// false if name was never seen during grammar load. Used by the graph loader
// to test a graph edge's label against the grammar alphabet (spec.md §6: a
// label absent from the grammar causes the edge to be silently dropped).
func (idx *Index) Lookup(name string) (Symbol, bool) {
	s, ok := idx.byName[name]

	return s, ok
}

// Name returns the source text a symbol was interned from.
func (idx *Index) Name(s Symbol) string {
	if int(s) < 0 || int(s) >= len(idx.names) {
		return ""
	}

	return idx.names[s]
}

// NumSymbols returns L, the size of the label alphabet (one past the
// largest assigned Symbol id).
func (idx *Index) NumSymbols() int {
	return len(idx.names)
}

// AddProduction indexes one grammar line already split into tokens.
// len(tokens) == 1 is an epsilon rule (A → ε); == 2 is unary (A → B); == 3
// is binary (A → B C). Any other length is ErrEmptyProduction or
// ErrMalformedProduction (spec.md §4.1, §6).
// Complexity: O(1) amortized.
func (idx *Index) AddProduction(tokens []string) error {
	switch len(tokens) {
	case 0:
		return ErrEmptyProduction
	case 1:
		a := idx.Intern(tokens[0])
		idx.hasEpsilon[a] = true
	case 2:
		a := idx.Intern(tokens[0])
		b := idx.Intern(tokens[1])
		idx.unaryByRhs[b] = append(idx.unaryByRhs[b], a)
	case 3:
		a := idx.Intern(tokens[0])
		b := idx.Intern(tokens[1])
		c := idx.Intern(tokens[2])
		idx.binByPair[pairKey{b, c}] = append(idx.binByPair[pairKey{b, c}], a)
		idx.binByLeft[b] = append(idx.binByLeft[b], BinRef{Peer: c, Lhs: a})
		idx.binByRight[c] = append(idx.binByRight[c], BinRef{Peer: b, Lhs: a})
	default:
		return fmt.Errorf("grammar: line has %d symbols: %w", len(tokens), ErrMalformedProduction)
	}

	return nil
}

// HasEpsilon reports whether A → ε is a production of the grammar.
func (idx *Index) HasEpsilon(a Symbol) bool {
	return idx.hasEpsilon[a]
}

// UnaryByRhs returns every A such that A → B is a production, for the given
// RHS symbol B. The returned slice must not be mutated by the caller.
func (idx *Index) UnaryByRhs(b Symbol) []Symbol {
	return idx.unaryByRhs[b]
}

// BinByPair returns every A such that A → B C is a production, for the
// given ordered RHS pair (B, C).
func (idx *Index) BinByPair(b, c Symbol) []Symbol {
	return idx.binByPair[pairKey{b, c}]
}

// BinByLeft returns every (C, A) such that A → B C is a production, for the
// given left RHS symbol B. Used by forward/gram-driven sweeps: a new
// out-edge labeled B combines with a peer out-edge labeled C.
func (idx *Index) BinByLeft(b Symbol) []BinRef {
	return idx.binByLeft[b]
}

// BinByRight returns every (B, A) such that A → B C is a production, for
// the given right RHS symbol C. Used by backward/gram-driven sweeps.
func (idx *Index) BinByRight(c Symbol) []BinRef {
	return idx.binByRight[c]
}
