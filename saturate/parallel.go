package saturate

import (
	"context"
	"sync/atomic"

	"github.com/katalvlaran/cflreach/grammar"
	"github.com/katalvlaran/cflreach/store"
	"golang.org/x/sync/errgroup"
)

// DefaultBlockSize is the recommended static-schedule chunk size for the
// parallel outer vertex loop (spec.md §5).
const DefaultBlockSize = 512

// ParallelStrategy is the concurrent counterpart of Strategy: it
// parallelizes the outer vertex loop of a sweep into static blocks across a
// fixed worker pool (spec.md §4.3.5), using golang.org/x/sync/errgroup to
// bound fan-out and join each sweep. The commit between sweeps is serial.
type ParallelStrategy struct {
	idx        *grammar.Index
	st         *store.ConcurrentStore
	dir        store.Direction
	policy     Policy
	n          int
	numWorkers int
	blockSize  int
}

// NewParallel constructs a ParallelStrategy. numWorkers bounds concurrent
// goroutines (errgroup.SetLimit); blockSize <= 0 uses DefaultBlockSize.
func NewParallel(idx *grammar.Index, n int, dir store.Direction, policy Policy, numWorkers, blockSize int) *ParallelStrategy {
	partition := store.ThreeD
	if policy == TopoDriven {
		partition = store.TwoD
	}
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}

	return &ParallelStrategy{
		idx:        idx,
		st:         store.NewConcurrent(dir, partition),
		dir:        dir,
		policy:     policy,
		n:          n,
		numWorkers: numWorkers,
		blockSize:  blockSize,
	}
}

// Store returns the strategy's underlying concurrent edge store.
func (p *ParallelStrategy) Store() *store.ConcurrentStore { return p.st }

// AddInitialEdge loads one initial edge before Run. Call only before Run
// (the load phase is sequential).
func (p *ParallelStrategy) AddInitialEdge(from, to int, label grammar.Symbol) {
	p.st.AddInitial(from, to, label)
}

// forEachBlock runs fn(v) for every v in [0, n) using a static block
// schedule across p.numWorkers goroutines (spec.md §5).
func (p *ParallelStrategy) forEachBlock(ctx context.Context, fn func(v int)) error {
	g, gctx := errgroup.WithContext(ctx)
	if p.numWorkers > 0 {
		g.SetLimit(p.numWorkers)
	}
	for lo := 0; lo < p.n; lo += p.blockSize {
		hi := lo + p.blockSize
		if hi > p.n {
			hi = p.n
		}
		lo, hi := lo, hi
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for v := lo; v < hi; v++ {
				fn(v)
			}
			return nil
		})
	}

	return g.Wait()
}

// seedSelfEdges adds self-edges for every epsilon production, parallelized
// over vertex blocks (spec.md §4.3.6).
func (p *ParallelStrategy) seedSelfEdges(ctx context.Context) error {
	return p.forEachBlock(ctx, func(v int) {
		for a := 0; a < p.idx.NumSymbols(); a++ {
			sym := grammar.Symbol(a)
			if p.idx.HasEpsilon(sym) {
				p.st.AddSelfEdge(v, sym)
			}
		}
	})
}

// sweepVertex applies this strategy's (direction, policy) rule-matching to
// a single vertex v, the parallel unit of work.
func (p *ParallelStrategy) sweepVertex(v int, terminate *atomic.Bool) {
	switch {
	case p.policy == GramDriven && (p.dir == store.Out || p.dir == store.Bi):
		sweepVertexFWGramConcurrent(p.idx, p.st, v, terminate)
	}
	switch {
	case p.policy == GramDriven && (p.dir == store.In || p.dir == store.Bi):
		sweepVertexBWGramConcurrent(p.idx, p.st, v, terminate)
	}
	switch {
	case p.policy == TopoDriven && (p.dir == store.Out || p.dir == store.Bi):
		sweepVertexFWTopoConcurrent(p.idx, p.st, v, terminate)
	}
	switch {
	case p.policy == TopoDriven && (p.dir == store.In || p.dir == store.Bi):
		sweepVertexBWTopoConcurrent(p.idx, p.st, v, terminate)
	}
}

// sweep performs one parallel sweep: the outer vertex loop is partitioned
// into static blocks; writes go through st.CheckAndAddEdge, which atomically
// dedups and appends (spec.md §4.3.5). terminate is reset true by the
// caller before each sweep and only ever cleared false inside one, so no
// synchronization beyond the atomic write is needed.
func (p *ParallelStrategy) sweep(ctx context.Context, terminate *atomic.Bool) error {
	return p.forEachBlock(ctx, func(v int) {
		p.sweepVertex(v, terminate)
	})
}

// commit advances every cell's cursors through ConcurrentStore's
// CommitFrontier, which visits the cells serially on the calling goroutine.
// It runs between sweeps, when no worker is appending.
func (p *ParallelStrategy) commit() {
	p.st.CommitFrontier()
}

// Run saturates the concurrent store to a fixed point. Returns the number
// of sweeps performed, or the first error from a parallel phase (context
// cancellation only; the strategies themselves never return errors).
func (p *ParallelStrategy) Run(ctx context.Context) (int, error) {
	if err := p.seedSelfEdges(ctx); err != nil {
		return 0, err
	}

	sweeps := 0
	for {
		var terminate atomic.Bool
		terminate.Store(true)
		if err := p.sweep(ctx, &terminate); err != nil {
			return sweeps, err
		}
		p.commit()
		sweeps++
		if terminate.Load() {
			return sweeps, nil
		}
	}
}

// sweepVertexFWGramConcurrent is sweepFWGram's per-vertex body against a
// ConcurrentStore, the unit of work for a parallel block.
func sweepVertexFWGramConcurrent(idx *grammar.Index, st *store.ConcurrentStore, v int, terminate *atomic.Bool) {
	for _, g := range st.Labels3DOut(v) {
		cell := st.Out3D(v, g)
		newNbrs := cell.New()
		oldNbrs := cell.Old()

		for _, nbr := range newNbrs {
			for _, a := range idx.UnaryByRhs(g) {
				st.CheckAndAddEdge(v, nbr, a, terminate)
			}
		}
		for _, nbr := range newNbrs {
			for _, ref := range idx.BinByLeft(g) {
				for _, outNbr := range st.Out3D(nbr, ref.Peer).OldAndNew() {
					st.CheckAndAddEdge(v, outNbr, ref.Lhs, terminate)
				}
			}
		}
		for _, nbr := range oldNbrs {
			for _, ref := range idx.BinByLeft(g) {
				for _, outNbr := range st.Out3D(nbr, ref.Peer).New() {
					st.CheckAndAddEdge(v, outNbr, ref.Lhs, terminate)
				}
			}
		}
	}
}

// sweepVertexBWGramConcurrent is sweepBWGram's per-vertex body against a
// ConcurrentStore.
func sweepVertexBWGramConcurrent(idx *grammar.Index, st *store.ConcurrentStore, i int, terminate *atomic.Bool) {
	for _, g := range st.Labels3DIn(i) {
		cell := st.In3D(i, g)
		newSrcs := cell.New()
		oldSrcs := cell.Old()

		for _, x := range newSrcs {
			for _, a := range idx.UnaryByRhs(g) {
				st.CheckAndAddEdge(x, i, a, terminate)
			}
		}
		for _, x := range newSrcs {
			for _, ref := range idx.BinByRight(g) {
				for _, w := range st.In3D(x, ref.Peer).OldAndNew() {
					st.CheckAndAddEdge(w, i, ref.Lhs, terminate)
				}
			}
		}
		for _, x := range oldSrcs {
			for _, ref := range idx.BinByRight(g) {
				for _, w := range st.In3D(x, ref.Peer).New() {
					st.CheckAndAddEdge(w, i, ref.Lhs, terminate)
				}
			}
		}
	}
}

// sweepVertexFWTopoConcurrent is sweepFWTopo's per-vertex body against a
// ConcurrentStore.
func sweepVertexFWTopoConcurrent(idx *grammar.Index, st *store.ConcurrentStore, v int, terminate *atomic.Bool) {
	cell := st.Out2D(v)
	newEdges := cell.New()
	oldEdges := cell.Old()

	for _, e := range newEdges {
		n, g := store.PeerVertex(e), store.PeerLabel(e)
		for _, a := range idx.UnaryByRhs(g) {
			st.CheckAndAddEdge(v, n, a, terminate)
		}
		for _, e2 := range st.Out2D(n).OldAndNew() {
			w, h := store.PeerVertex(e2), store.PeerLabel(e2)
			for _, a := range idx.BinByPair(g, h) {
				st.CheckAndAddEdge(v, w, a, terminate)
			}
		}
	}
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

// sweepVertexBWTopoConcurrent is sweepBWTopo's per-vertex body against a
// ConcurrentStore.
func sweepVertexBWTopoConcurrent(idx *grammar.Index, st *store.ConcurrentStore, v int, terminate *atomic.Bool) {
	cell := st.In2D(v)
	newEdges := cell.New()
	oldEdges := cell.Old()

	for _, e := range newEdges {
		x, g := store.PeerVertex(e), store.PeerLabel(e)
		for _, a := range idx.UnaryByRhs(g) {
			st.CheckAndAddEdge(x, v, a, terminate)
		}
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
