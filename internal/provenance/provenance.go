// Package provenance verifies that every edge produced by a saturation
// strategy traces back to an initial edge or an epsilon production through
// a finite derivation (spec.md §8 testable property 7, "no spurious
// edges"). It is a memoized recursive proof search over derivation
// premises, guarded with the three-color technique read from (the now
// removed) dfs/cycle.go to refuse a derivation that only justifies itself
// through a cycle — see DESIGN.md for why the teacher's DFS walker itself
// could not be reused here (derivation proofs need AND-OR reachability,
// which plain DFS cannot express).
package provenance

import "github.com/katalvlaran/cflreach/grammar"

// Edge is an (from, to, label) triple, shared input/output shape for both
// the initial edge list and the derived set under check.
type Edge struct {
	From, To int
	Label    grammar.Symbol
}

type color int

const (
	white color = iota
	gray
	black
)

// prover walks derivation premises for one candidate edge set, memoizing
// results and guarding in-progress proofs against cyclic self-justification.
type prover struct {
	idx     *grammar.Index
	n       int
	initial map[[3]int]bool
	derived map[[3]int]struct{}
	state   map[[3]int]color
	memo    map[[3]int]bool
}

func key(from, to int, label grammar.Symbol) [3]int {
	return [3]int{from, to, int(label)}
}

// provable reports whether (from, to, label) has a finite derivation
// grounded in initial edges and epsilon productions, using only premises
// that are themselves present in the derived set under check.
func (p *prover) provable(from, to int, label grammar.Symbol) bool {
	k := key(from, to, label)
	switch p.state[k] {
	case black:
		return p.memo[k]
	case gray:
		// A derivation that revisits a premise still being proven only
		// justifies itself circularly; refuse it.
		return false
	}
	p.state[k] = gray

	result := p.initial[k]
	if !result && from == to && p.idx.HasEpsilon(label) {
		result = true
	}
	if !result {
		for b := 0; b < p.idx.NumSymbols() && !result; b++ {
			rhs := grammar.Symbol(b)
			for _, a := range p.idx.UnaryByRhs(rhs) {
				if a != label {
					continue
				}
				if _, ok := p.derived[key(from, to, rhs)]; ok && p.provable(from, to, rhs) {
					result = true
					break
				}
			}
		}
	}
	if !result {
		for b := 0; b < p.idx.NumSymbols() && !result; b++ {
			for c := 0; c < p.idx.NumSymbols() && !result; c++ {
				bSym, cSym := grammar.Symbol(b), grammar.Symbol(c)
				matches := false
				for _, a := range p.idx.BinByPair(bSym, cSym) {
					if a == label {
						matches = true
						break
					}
				}
				if !matches {
					continue
				}
				for mid := 0; mid < p.n && !result; mid++ {
					_, leftOK := p.derived[key(from, mid, bSym)]
					_, rightOK := p.derived[key(mid, to, cSym)]
					if leftOK && rightOK && p.provable(from, mid, bSym) && p.provable(mid, to, cSym) {
						result = true
					}
				}
			}
		}
	}

	p.state[k] = black
	p.memo[k] = result

	return result
}

// Verify checks every edge in derived against the grammar and initial edge
// set, returning the subset that has no finite grounded derivation — an
// empty result confirms property 7 holds.
func Verify(idx *grammar.Index, n int, initial []Edge, derived map[[3]int]struct{}) []Edge {
	p := &prover{
		idx:     idx,
		n:       n,
		initial: make(map[[3]int]bool, len(initial)),
		derived: derived,
		state:   make(map[[3]int]color, len(derived)),
		memo:    make(map[[3]int]bool, len(derived)),
	}
	for _, e := range initial {
		p.initial[key(e.From, e.To, e.Label)] = true
	}

	var spurious []Edge
	for k := range derived {
		from, to, label := k[0], k[1], grammar.Symbol(k[2])
		if !p.provable(from, to, label) {
			spurious = append(spurious, Edge{From: from, To: to, Label: label})
		}
	}

	return spurious
}
