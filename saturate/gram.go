package saturate

import (
	"github.com/katalvlaran/cflreach/grammar"
	"github.com/katalvlaran/cflreach/store"
)

// sweepFWGram performs one forward, gram-driven sweep (spec.md §4.3.1) over
// st's Out-3D cells. Clears *terminate via st.CheckAndAddEdge whenever a new
// edge is produced.
func sweepFWGram(idx *grammar.Index, st *store.Store, terminate *bool) {
	for _, v := range st.Vertices3DOut() {
		for _, g := range st.Labels3DOut(v) {
			cell := st.Out3D(v, g)
			newNbrs := cell.New()
			oldNbrs := cell.Old()

			// Unary: A → g, new out-neighbor nbr of v via g.
			for _, nbr := range newNbrs {
				for _, a := range idx.UnaryByRhs(g) {
					st.CheckAndAddEdge(v, nbr, a, terminate)
				}
			}

			// Binary, new-driven: A → g C, nbr new via g, scan nbr's OLD∪NEW
			// out-edges via C.
			for _, nbr := range newNbrs {
				for _, ref := range idx.BinByLeft(g) {
					peerCell := st.Out3D(nbr, ref.Peer)
					for _, outNbr := range peerCell.OldAndNew() {
						st.CheckAndAddEdge(v, outNbr, ref.Lhs, terminate)
					}
				}
			}

			// Binary, old-driven: A → g C, nbr old via g, scan nbr's NEW-only
			// out-edges via C. Together with the new-driven phase above this
			// covers every (NEW, OLD∪NEW) pair exactly once (spec.md §4.3.1).
			for _, nbr := range oldNbrs {
				for _, ref := range idx.BinByLeft(g) {
					peerCell := st.Out3D(nbr, ref.Peer)
					for _, outNbr := range peerCell.New() {
						st.CheckAndAddEdge(v, outNbr, ref.Lhs, terminate)
					}
				}
			}
		}
	}
}

// sweepBWGram performs one backward, gram-driven sweep (spec.md §4.3.2),
// the direction-mirrored counterpart of sweepFWGram over st's In-3D cells.
func sweepBWGram(idx *grammar.Index, st *store.Store, terminate *bool) {
	for _, i := range st.Vertices3DIn() {
		for _, g := range st.Labels3DIn(i) {
			cell := st.In3D(i, g)
			newSrcs := cell.New()
			oldSrcs := cell.Old()

			// Unary: A → g, new in-edge (x, i, g).
			for _, x := range newSrcs {
				for _, a := range idx.UnaryByRhs(g) {
					st.CheckAndAddEdge(x, i, a, terminate)
				}
			}

			// Binary, new-driven: A → B g, x new via g, scan x's OLD∪NEW
			// in-edges via B to find w with (w, x, B).
			for _, x := range newSrcs {
				for _, ref := range idx.BinByRight(g) {
					peerCell := st.In3D(x, ref.Peer)
					for _, w := range peerCell.OldAndNew() {
						st.CheckAndAddEdge(w, i, ref.Lhs, terminate)
					}
				}
			}

			// Binary, old-driven: x old via g, scan x's NEW-only in-edges
			// via B.
			for _, x := range oldSrcs {
				for _, ref := range idx.BinByRight(g) {
					peerCell := st.In3D(x, ref.Peer)
					for _, w := range peerCell.New() {
						st.CheckAndAddEdge(w, i, ref.Lhs, terminate)
					}
				}
			}
		}
	}
}

// sweepBIGram performs one bidirectional, gram-driven sweep (spec.md
// §4.3.3). Both directions are recorded in a Bi-3D store, so binary rules
// can fire driven from either side within one sweep; this runs the forward
// and backward sweeps over the shared store. checkAndAddEdge's dedup makes
// any edge considered from both angles a no-op the second time, so running
// both directions is correct even though spec.md's asymmetric
// new-vs-old partitioning (designed to touch each contributing pair exactly
// once) is not reproduced bit-for-bit — testable property 5 only requires
// identical final dedup-set contents, not identical operation counts. See
// DESIGN.md.
func sweepBIGram(idx *grammar.Index, st *store.Store, terminate *bool) {
	sweepFWGram(idx, st, terminate)
	sweepBWGram(idx, st, terminate)
}
