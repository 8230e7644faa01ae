// Package saturate implements the CFL-reachability fixed-point solvers:
// the family of strategies that repeatedly apply grammar productions to a
// store's frontier until a full sweep adds nothing (spec.md §4.3).
package saturate

import (
	"github.com/katalvlaran/cflreach/grammar"
	"github.com/katalvlaran/cflreach/store"
)

// Policy selects whether a strategy's outer loop iterates labels
// (gram-driven, 3D-partitioned store) or vertices with labels stored per
// edge (topo-driven, 2D-partitioned store). Spec.md §4.3.
type Policy uint8

const (
	// GramDriven strategies partition the store by (vertex, label) — 3D.
	GramDriven Policy = iota
	// TopoDriven strategies partition the store by vertex only — 2D.
	TopoDriven
)

// Strategy is one serial (direction, policy) saturation solver. It owns
// exactly the store it operates on, per spec.md §3 "Ownership": the engine
// exclusively owns the edge store and dedup index it mutates. Modeled as a
// small struct holding mutable traversal state plus init/loop methods,
// grounded on algorithms/bfs.go's walker pattern.
type Strategy struct {
	idx    *grammar.Index
	st     *store.Store
	dir    store.Direction
	policy Policy
	n      int
}

// New constructs a Strategy for the given grammar index, vertex count n,
// direction, and policy. The underlying store is empty; load initial edges
// via AddInitialEdge before calling Run.
func New(idx *grammar.Index, n int, dir store.Direction, policy Policy) *Strategy {
	partition := store.ThreeD
	if policy == TopoDriven {
		partition = store.TwoD
	}

	return &Strategy{
		idx:    idx,
		st:     store.New(dir, partition),
		dir:    dir,
		policy: policy,
		n:      n,
	}
}

// Store returns the strategy's underlying edge store, for loading initial
// edges before Run and for reading the result afterward.
func (s *Strategy) Store() *store.Store { return s.st }

// Direction reports this strategy's traversal direction.
func (s *Strategy) Direction() store.Direction { return s.dir }

// Policy reports this strategy's rule-matching policy.
func (s *Strategy) Policy() Policy { return s.policy }

// AddInitialEdge loads one initial edge (from, to, label) before Run.
func (s *Strategy) AddInitialEdge(from, to int, label grammar.Symbol) {
	s.st.AddInitial(from, to, label)
}

// seedSelfEdges adds one self-edge (v, v, A) for every epsilon production
// A → ε and every vertex v in [0, n) (spec.md §4.3.6).
func (s *Strategy) seedSelfEdges() {
	for v := 0; v < s.n; v++ {
		for a := 0; a < s.idx.NumSymbols(); a++ {
			sym := grammar.Symbol(a)
			if s.idx.HasEpsilon(sym) {
				s.st.AddSelfEdge(v, sym)
			}
		}
	}
}

// sweep performs exactly one sweep of this strategy's (direction, policy)
// combination, clearing terminate whenever a new edge is produced.
func (s *Strategy) sweep(terminate *bool) {
	switch {
	case s.policy == GramDriven && s.dir == store.Out:
		sweepFWGram(s.idx, s.st, terminate)
	case s.policy == GramDriven && s.dir == store.In:
		sweepBWGram(s.idx, s.st, terminate)
	case s.policy == GramDriven && s.dir == store.Bi:
		sweepBIGram(s.idx, s.st, terminate)
	case s.policy == TopoDriven && s.dir == store.Out:
		sweepFWTopo(s.idx, s.st, terminate)
	case s.policy == TopoDriven && s.dir == store.In:
		sweepBWTopo(s.idx, s.st, terminate)
	case s.policy == TopoDriven && s.dir == store.Bi:
		sweepBITopo(s.idx, s.st, terminate)
	}
}

// Run saturates the store to a fixed point (spec.md §4.3 "Common loop"):
// seed self-edges once, then repeat sweep/commit until a full sweep adds
// nothing. Returns the number of sweeps performed.
func (s *Strategy) Run() int {
	s.seedSelfEdges()

	sweeps := 0
	for {
		terminate := true
		s.sweep(&terminate)
		s.st.CommitFrontier()
		sweeps++
		if terminate {
			return sweeps
		}
	}
}
