// Package result materializes a saturated store's dedup-set contents into
// the canonical out-form every caller consumes: out[v][label] = sorted
// destination vertices (spec.md §4.4).
package result

import (
	"sort"

	"github.com/katalvlaran/cflreach/grammar"
	"github.com/katalvlaran/cflreach/store"
)

// OutForm is the canonical materialized result: for every vertex v and
// label g, the sorted set of destinations reachable by one g-edge from v.
type OutForm struct {
	n, l int
	data map[int]map[grammar.Symbol][]int
}

// N returns the vertex count this OutForm was built over.
func (o *OutForm) N() int { return o.n }

// L returns the label count this OutForm was built over.
func (o *OutForm) L() int { return o.l }

// Destinations returns the sorted destinations of v under label g, or nil
// if there are none.
func (o *OutForm) Destinations(v int, g grammar.Symbol) []int {
	byLabel, ok := o.data[v]
	if !ok {
		return nil
	}

	return byLabel[g]
}

// EdgeCount returns the total number of (v, to, label) triples held.
func (o *OutForm) EdgeCount() int {
	total := 0
	for _, byLabel := range o.data {
		for _, dests := range byLabel {
			total += len(dests)
		}
	}

	return total
}

func (o *OutForm) insert(from int, label grammar.Symbol, to int) {
	byLabel, ok := o.data[from]
	if !ok {
		byLabel = make(map[grammar.Symbol][]int)
		o.data[from] = byLabel
	}
	byLabel[label] = append(byLabel[label], to)
}

func (o *OutForm) sortAll() {
	for _, byLabel := range o.data {
		for label, dests := range byLabel {
			sort.Ints(dests)
			byLabel[label] = dests
		}
	}
}

// FromOutStore materializes the out-form directly from a store already
// indexing the Out direction (Out or Bi), reading its frontier rather than
// its dedup index since the frontier is the complete, monotone edge record.
func FromOutStore(st *store.Store, n, l int) *OutForm {
	out := &OutForm{n: n, l: l, data: make(map[int]map[grammar.Symbol][]int)}
	if st.Partition() == store.ThreeD {
		for v := 0; v < n; v++ {
			for g := 0; g < l; g++ {
				sym := grammar.Symbol(g)
				for _, to := range st.Out3D(v, sym).OldAndNew() {
					out.insert(v, sym, to)
				}
			}
		}
	} else {
		for v := 0; v < n; v++ {
			for _, e := range st.Out2D(v).OldAndNew() {
				out.insert(v, store.PeerLabel(e), store.PeerVertex(e))
			}
		}
	}
	out.sortAll()

	return out
}

// ConvertInToOut materializes the out-form from a store indexing the In
// direction (In or Bi), by transposing: for every (to, label) cell and
// every source x in it, record destination `to` under (x, label) in the
// output (spec.md §4.4).
func ConvertInToOut(st *store.Store, n, l int) *OutForm {
	out := &OutForm{n: n, l: l, data: make(map[int]map[grammar.Symbol][]int)}
	if st.Partition() == store.ThreeD {
		for to := 0; to < n; to++ {
			for g := 0; g < l; g++ {
				sym := grammar.Symbol(g)
				for _, from := range st.In3D(to, sym).OldAndNew() {
					out.insert(from, sym, to)
				}
			}
		}
	} else {
		for to := 0; to < n; to++ {
			for _, e := range st.In2D(to).OldAndNew() {
				out.insert(store.PeerVertex(e), store.PeerLabel(e), to)
			}
		}
	}
	out.sortAll()

	return out
}

// FromDirection materializes the out-form from whichever side st indexes
// (preferring Out when both are available, i.e. for Bi stores), since
// round-tripping through ConvertInToOut on a Bi store must agree with
// reading Out directly (spec.md §8 "Round-trip law").
func FromDirection(st *store.Store, n, l int) *OutForm {
	if st.Direction() == store.In {
		return ConvertInToOut(st, n, l)
	}

	return FromOutStore(st, n, l)
}
