package saturate_test

import (
	"context"
	"sort"
	"testing"

	"github.com/katalvlaran/cflreach/grammar"
	"github.com/katalvlaran/cflreach/saturate"
	"github.com/katalvlaran/cflreach/store"
	"github.com/stretchr/testify/require"
)

func mustIndex(t *testing.T, productions [][]string) *grammar.Index {
	t.Helper()
	idx := grammar.NewIndex()
	for _, p := range productions {
		require.NoError(t, idx.AddProduction(p))
	}

	return idx
}

// sPairs collects the (from,to) pairs currently stored under label sym in a
// serial Store's Out-3D side, sorted for deterministic comparison.
func sPairs(st *store.Store, n int, sym grammar.Symbol) [][2]int {
	var out [][2]int
	for v := 0; v < n; v++ {
		for _, to := range st.Out3D(v, sym).OldAndNew() {
			out = append(out, [2]int{v, to})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})

	return out
}

// TestFWGram_TransitiveClosure is spec.md §8 scenario 1.
func TestFWGram_TransitiveClosure(t *testing.T) {
	idx := mustIndex(t, [][]string{{"S", "S", "S"}, {"S", "a"}})
	a, _ := idx.Lookup("a")
	s, _ := idx.Lookup("S")

	strat := saturate.New(idx, 4, store.Out, saturate.GramDriven)
	strat.AddInitialEdge(0, 1, a)
	strat.AddInitialEdge(1, 2, a)
	strat.AddInitialEdge(2, 3, a)

	strat.Run()

	want := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	require.Equal(t, want, sPairs(strat.Store(), 4, s))
	require.Equal(t, 3+6, strat.Store().EdgeCount())
}

// TestFWGram_Dyck1 is spec.md §8 scenario 2. S → O S C has three RHS
// symbols, which AddProduction rejects, so it is written in normal form as
// S → O X, X → S C; the helper X adds one derived edge, (1,4).
func TestFWGram_Dyck1(t *testing.T) {
	idx := mustIndex(t, [][]string{{"S", "O", "X"}, {"X", "S", "C"}, {"S", "O", "C"}})
	o, _ := idx.Lookup("O")
	c, _ := idx.Lookup("C")
	s, _ := idx.Lookup("S")

	strat := saturate.New(idx, 5, store.Out, saturate.GramDriven)
	strat.AddInitialEdge(0, 1, o)
	strat.AddInitialEdge(1, 2, o)
	strat.AddInitialEdge(2, 3, c)
	strat.AddInitialEdge(3, 4, c)

	strat.Run()

	require.Equal(t, [][2]int{{0, 4}, {1, 3}}, sPairs(strat.Store(), 5, s))
	require.Equal(t, 4+2+1, strat.Store().EdgeCount())
}

// TestFWGram_EpsilonOnly is spec.md §8 scenario 3: an unreferenced label
// ("x") never enters the grammar alphabet, so the loader would drop that
// edge; here we exercise the solver directly with the post-filter edge
// list (empty) over N=2 vertices.
func TestFWGram_EpsilonOnly(t *testing.T) {
	idx := mustIndex(t, [][]string{{"S"}})
	s, _ := idx.Lookup("S")

	strat := saturate.New(idx, 2, store.Out, saturate.GramDriven)
	strat.Run()

	require.Equal(t, [][2]int{{0, 0}, {1, 1}}, sPairs(strat.Store(), 2, s))
}

// TestFWGram_Cycle is spec.md §8 scenario 5.
func TestFWGram_Cycle(t *testing.T) {
	idx := mustIndex(t, [][]string{{"S", "S", "S"}, {"S", "a"}})
	a, _ := idx.Lookup("a")
	s, _ := idx.Lookup("S")

	strat := saturate.New(idx, 2, store.Out, saturate.GramDriven)
	strat.AddInitialEdge(0, 1, a)
	strat.AddInitialEdge(1, 0, a)
	strat.Run()

	require.Equal(t, [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, sPairs(strat.Store(), 2, s))
	require.Equal(t, 6, strat.Store().EdgeCount())
}

// TestFWGram_MixedUnaryBinary is spec.md §8 scenario 6.
func TestFWGram_MixedUnaryBinary(t *testing.T) {
	idx := mustIndex(t, [][]string{{"T", "a"}, {"S", "T", "T"}})
	a, _ := idx.Lookup("a")
	tSym, _ := idx.Lookup("T")
	s, _ := idx.Lookup("S")

	strat := saturate.New(idx, 3, store.Out, saturate.GramDriven)
	strat.AddInitialEdge(0, 1, a)
	strat.AddInitialEdge(1, 2, a)
	strat.Run()

	require.Equal(t, [][2]int{{0, 1}, {1, 2}}, sPairs(strat.Store(), 3, tSym))
	require.Equal(t, [][2]int{{0, 2}}, sPairs(strat.Store(), 3, s))
	require.Equal(t, 5, strat.Store().EdgeCount())
}

// TestSelfEdgeCoverage is testable property 6: every epsilon production and
// every vertex yields a self-edge at termination.
func TestSelfEdgeCoverage(t *testing.T) {
	idx := mustIndex(t, [][]string{{"S"}, {"T"}})
	s, _ := idx.Lookup("S")
	tSym, _ := idx.Lookup("T")

	strat := saturate.New(idx, 3, store.Out, saturate.GramDriven)
	strat.Run()

	for v := 0; v < 3; v++ {
		require.Contains(t, strat.Store().Out3D(v, s).OldAndNew(), v)
		require.Contains(t, strat.Store().Out3D(v, tSym).OldAndNew(), v)
	}
}

// TestVariantEquivalence is testable property 5: FW/BW/BI gram-driven and
// topo-driven solvers converge to the same dedup-set size on the same
// input (transitive closure scenario).
func TestVariantEquivalence(t *testing.T) {
	productions := [][]string{{"S", "S", "S"}, {"S", "a"}}
	edges := [][3]string{{"0", "1", "a"}, {"1", "2", "a"}, {"2", "3", "a"}}

	variants := []struct {
		dir    store.Direction
		policy saturate.Policy
	}{
		{store.Out, saturate.GramDriven},
		{store.In, saturate.GramDriven},
		{store.Bi, saturate.GramDriven},
		{store.Out, saturate.TopoDriven},
		{store.In, saturate.TopoDriven},
		{store.Bi, saturate.TopoDriven},
	}

	var counts []int
	for _, variant := range variants {
		idx := mustIndex(t, productions)
		a, _ := idx.Lookup("a")
		strat := saturate.New(idx, 4, variant.dir, variant.policy)
		for _, e := range edges {
			from := int(e[0][0] - '0')
			to := int(e[1][0] - '0')
			strat.AddInitialEdge(from, to, a)
		}
		strat.Run()
		counts = append(counts, strat.Store().EdgeCount())
	}

	for i := 1; i < len(counts); i++ {
		require.Equal(t, counts[0], counts[i], "variant %d diverged", i)
	}
	require.Equal(t, 9, counts[0])
}

// TestParallelStrategy_TransitiveClosure exercises the parallel FW-Gram
// solver against the same scenario as TestFWGram_TransitiveClosure.
func TestParallelStrategy_TransitiveClosure(t *testing.T) {
	idx := mustIndex(t, [][]string{{"S", "S", "S"}, {"S", "a"}})
	a, _ := idx.Lookup("a")

	p := saturate.NewParallel(idx, 4, store.Out, saturate.GramDriven, 4, 2)
	p.AddInitialEdge(0, 1, a)
	p.AddInitialEdge(1, 2, a)
	p.AddInitialEdge(2, 3, a)

	sweeps, err := p.Run(context.Background())
	require.NoError(t, err)
	require.Greater(t, sweeps, 0)
	require.Equal(t, 9, p.Store().EdgeCount())
}
