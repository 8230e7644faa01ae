// Package reference implements a brute-force, non-incremental fixed-point
// solver used only by tests to cross-validate every saturation strategy
// (spec.md §8 testable property 5, "variant equivalence"). It is grounded
// in matrix/ops/floyd_warshal.go's relax-to-fixed-point style: repeat a
// dense all-pairs relaxation pass until nothing changes, rather than the
// saturate package's incremental OLD/NEW/PENDING bookkeeping.
package reference

import "github.com/katalvlaran/cflreach/grammar"

// Edge is an initial (from, to, label) triple, the reference solver's input
// shape.
type Edge struct {
	From, To int
	Label    grammar.Symbol
}

type key3 struct {
	From, To int
	Label    grammar.Symbol
}

// Saturate computes the full CFL-reachability closure over n vertices by
// repeated relaxation: seed self-edges and initial edges, then alternate
// unary and binary relaxation passes until a full round changes nothing.
// O(passes · n³ · L²) — intended for small test fixtures only.
func Saturate(idx *grammar.Index, n int, initial []Edge) map[[3]int]struct{} {
	edges := make(map[key3]struct{})
	byPair := make(map[[2]int][]grammar.Symbol)

	add := func(from, to int, label grammar.Symbol) bool {
		k := key3{From: from, To: to, Label: label}
		if _, ok := edges[k]; ok {
			return false
		}
		edges[k] = struct{}{}
		byPair[[2]int{from, to}] = append(byPair[[2]int{from, to}], label)

		return true
	}

	for _, e := range initial {
		add(e.From, e.To, e.Label)
	}
	for v := 0; v < n; v++ {
		for a := 0; a < idx.NumSymbols(); a++ {
			sym := grammar.Symbol(a)
			if idx.HasEpsilon(sym) {
				add(v, v, sym)
			}
		}
	}

	for changed := true; changed; {
		changed = false

		for k := range edges {
			for _, a := range idx.UnaryByRhs(k.Label) {
				if add(k.From, k.To, a) {
					changed = true
				}
			}
		}

		for from := 0; from < n; from++ {
			for mid := 0; mid < n; mid++ {
				labelsFM, ok := byPair[[2]int{from, mid}]
				if !ok {
					continue
				}
				for to := 0; to < n; to++ {
					labelsMT, ok := byPair[[2]int{mid, to}]
					if !ok {
						continue
					}
					for _, b := range labelsFM {
						for _, c := range labelsMT {
							for _, a := range idx.BinByPair(b, c) {
								if add(from, to, a) {
									changed = true
								}
							}
						}
					}
				}
			}
		}
	}

	out := make(map[[3]int]struct{}, len(edges))
	for k := range edges {
		out[[3]int{k.From, k.To, int(k.Label)}] = struct{}{}
	}

	return out
}
