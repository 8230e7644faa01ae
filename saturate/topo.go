package saturate

import (
	"github.com/katalvlaran/cflreach/grammar"
	"github.com/katalvlaran/cflreach/store"
)

// sweepFWTopo performs one forward, topo-driven sweep (spec.md §4.3.4) over
// st's Out-2D cells: the outer loop is over vertices, the inner loop scans
// the vertex's full edge list and uses each edge's own label to index the
// grammar via unaryByRhs / the flat binByPair table (no per-label cell
// grouping, unlike the gram-driven 3D variants).
func sweepFWTopo(idx *grammar.Index, st *store.Store, terminate *bool) {
	for _, v := range st.VerticesOut2D() {
		cell := st.Out2D(v)
		newEdges := cell.New()
		oldEdges := cell.Old()

		for _, e := range newEdges {
			n, g := store.PeerVertex(e), store.PeerLabel(e)

			// Unary: A → g.
			for _, a := range idx.UnaryByRhs(g) {
				st.CheckAndAddEdge(v, n, a, terminate)
			}

			// Binary, new-driven: scan n's OLD∪NEW out-edges (w, h); for
			// every A → g h, propose (v, w, A).
			for _, e2 := range st.Out2D(n).OldAndNew() {
				w, h := store.PeerVertex(e2), store.PeerLabel(e2)
				for _, a := range idx.BinByPair(g, h) {
					st.CheckAndAddEdge(v, w, a, terminate)
				}
			}
		}

		// Binary, old-driven: old edge (v, n, g), scan n's NEW-only
		// out-edges (w, h).
		for _, e := range oldEdges {
			n, g := store.PeerVertex(e), store.PeerLabel(e)
			for _, e2 := range st.Out2D(n).New() {
				w, h := store.PeerVertex(e2), store.PeerLabel(e2)
				for _, a := range idx.BinByPair(g, h) {
					st.CheckAndAddEdge(v, w, a, terminate)
				}
			}
		}
	}
}

// sweepBWTopo performs one backward, topo-driven sweep, the
// direction-mirrored counterpart of sweepFWTopo over st's In-2D cells.
func sweepBWTopo(idx *grammar.Index, st *store.Store, terminate *bool) {
	for _, v := range st.VerticesIn2D() {
		cell := st.In2D(v)
		newEdges := cell.New()
		oldEdges := cell.Old()

		for _, e := range newEdges {
			x, g := store.PeerVertex(e), store.PeerLabel(e)

			// Unary: A → g for new in-edge (x, v, g).
			for _, a := range idx.UnaryByRhs(g) {
				st.CheckAndAddEdge(x, v, a, terminate)
			}

			// Binary, new-driven: scan x's OLD∪NEW in-edges (y, h) —
			// edge (y, x, h); for every A → h g, propose (y, v, A).
			for _, e2 := range st.In2D(x).OldAndNew() {
				y, h := store.PeerVertex(e2), store.PeerLabel(e2)
				for _, a := range idx.BinByPair(h, g) {
					st.CheckAndAddEdge(y, v, a, terminate)
				}
			}
		}

		for _, e := range oldEdges {
			x, g := store.PeerVertex(e), store.PeerLabel(e)
			for _, e2 := range st.In2D(x).New() {
				y, h := store.PeerVertex(e2), store.PeerLabel(e2)
				for _, a := range idx.BinByPair(h, g) {
					st.CheckAndAddEdge(y, v, a, terminate)
				}
			}
		}
	}
}

// sweepBITopo is the bidirectional topo-driven sweep; see sweepBIGram's
// doc comment for why running both directions over the shared store is
// correct (dedup makes redundant consideration a no-op).
func sweepBITopo(idx *grammar.Index, st *store.Store, terminate *bool) {
	sweepFWTopo(idx, st, terminate)
	sweepBWTopo(idx, st, terminate)
}
