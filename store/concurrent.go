package store

import (
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/cflreach/grammar"
	"github.com/puzpuzpuz/xsync/v3"
)

// concurrentCell is the concurrent-safe counterpart of Cell: an append-only
// sequence guarded by a mutex, with oldEnd/newEnd mutated only during the
// (disjoint-per-cell) commit phase between sweeps. Spec.md §9 requires only
// "append-only per-cell vertex sequence with snapshot-based length read";
// a mutex-guarded slice with a snapshot-bounded copy on read satisfies that
// contract without a bespoke lock-free ring buffer.
type concurrentCell[T any] struct {
	mu             sync.RWMutex
	entries        []T
	oldEnd, newEnd int
}

func (c *concurrentCell[T]) appendPending(v T) {
	c.mu.Lock()
	c.entries = append(c.entries, v)
	c.mu.Unlock()
}

func (c *concurrentCell[T]) appendInitial(v T) {
	c.mu.Lock()
	c.entries = append(c.entries, v)
	c.newEnd = len(c.entries)
	c.mu.Unlock()
}

func (c *concurrentCell[T]) commit() {
	c.mu.Lock()
	c.oldEnd = c.newEnd
	c.newEnd = len(c.entries)
	c.mu.Unlock()
}

func (c *concurrentCell[T]) snapshot(lo, hi int) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, hi-lo)
	copy(out, c.entries[lo:hi])

	return out
}

// Old returns a snapshot of the OLD region.
func (c *concurrentCell[T]) Old() []T {
	c.mu.RLock()
	oldEnd := c.oldEnd
	c.mu.RUnlock()

	return c.snapshot(0, oldEnd)
}

// New returns a snapshot of the NEW region.
func (c *concurrentCell[T]) New() []T {
	c.mu.RLock()
	oldEnd, newEnd := c.oldEnd, c.newEnd
	c.mu.RUnlock()

	return c.snapshot(oldEnd, newEnd)
}

// OldAndNew returns a snapshot of OLD ∪ NEW, taken at the newEnd value
// observed at call time (spec.md §5: "readers obtain a length snapshot at
// entry to their cell and never read beyond it").
func (c *concurrentCell[T]) OldAndNew() []T {
	c.mu.RLock()
	newEnd := c.newEnd
	c.mu.RUnlock()

	return c.snapshot(0, newEnd)
}

// Len returns the current total entry count.
func (c *concurrentCell[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// dedupSet is an insert-if-absent set of vertex ids for one (vertex, label)
// cell, backed by an xsync.MapOf so concurrent CheckAndAddEdge calls on the
// same key race safely to exactly one winner (spec.md §5 "Duplicate
// suppression under races").
type dedupSet struct {
	m *xsync.MapOf[int, struct{}]
}

func newDedupSet() *dedupSet {
	return &dedupSet{m: xsync.NewMapOf[int, struct{}]()}
}

// insertIfAbsent returns true if v was newly inserted.
func (d *dedupSet) insertIfAbsent(v int) bool {
	_, loaded := d.m.LoadOrStore(v, struct{}{})

	return !loaded
}

func (d *dedupSet) contains(v int) bool {
	_, ok := d.m.Load(v)

	return ok
}

// ConcurrentStore is the concurrent counterpart of Store, used by parallel
// saturation strategies (spec.md §4.2 "*-concurrent" variants). It supports
// the same (Direction, Partition) composition; only Bi and Out/In
// directions combined with either partition are meaningful concurrently
// (spec.md §4.2's table lists Bi-3D/Bi-2D/In-3D/Out-3D concurrent variants).
type ConcurrentStore struct {
	dir       Direction
	partition Partition

	out3D *xsync.MapOf[cellKey, *concurrentCell[int]]
	in3D  *xsync.MapOf[cellKey, *concurrentCell[int]]
	out2D *xsync.MapOf[int, *concurrentCell[peer]]
	in2D  *xsync.MapOf[int, *concurrentCell[peer]]

	dedup     *xsync.MapOf[cellKey, *dedupSet]
	dedupByTo bool
	edgeCount atomic.Int64

	vertexKeys *xsync.MapOf[int, struct{}] // union of vertices seen, reported by Vertices
}

// NewConcurrent constructs an empty ConcurrentStore for (dir, partition).
func NewConcurrent(dir Direction, partition Partition) *ConcurrentStore {
	s := &ConcurrentStore{
		dir:        dir,
		partition:  partition,
		dedup:      xsync.NewMapOf[cellKey, *dedupSet](),
		dedupByTo:  dir == In,
		vertexKeys: xsync.NewMapOf[int, struct{}](),
	}
	if partition == ThreeD {
		if dir == Out || dir == Bi {
			s.out3D = xsync.NewMapOf[cellKey, *concurrentCell[int]]()
		}
		if dir == In || dir == Bi {
			s.in3D = xsync.NewMapOf[cellKey, *concurrentCell[int]]()
		}
	} else {
		if dir == Out || dir == Bi {
			s.out2D = xsync.NewMapOf[int, *concurrentCell[peer]]()
		}
		if dir == In || dir == Bi {
			s.in2D = xsync.NewMapOf[int, *concurrentCell[peer]]()
		}
	}

	return s
}

func (s *ConcurrentStore) Direction() Direction { return s.dir }
func (s *ConcurrentStore) Partition() Partition { return s.partition }
func (s *ConcurrentStore) EdgeCount() int       { return int(s.edgeCount.Load()) }

func (s *ConcurrentStore) dedupSetFor(key cellKey) *dedupSet {
	set, _ := s.dedup.LoadOrStore(key, newDedupSet())

	return set
}

func (s *ConcurrentStore) dedupKey(from, to int, label grammar.Symbol) (cellKey, int) {
	if s.dedupByTo {
		return cellKey{Vertex: to, Label: label}, from
	}

	return cellKey{Vertex: from, Label: label}, to
}

// Out3D returns the Out-3D cell for (vertex, label), lazily creating it.
// Never nil.
func (s *ConcurrentStore) Out3D(vertex int, label grammar.Symbol) *concurrentCell[int] {
	c, _ := s.out3D.LoadOrStore(cellKey{Vertex: vertex, Label: label}, &concurrentCell[int]{})

	return c
}

// In3D returns the In-3D cell for (vertex, label), lazily creating it.
func (s *ConcurrentStore) In3D(vertex int, label grammar.Symbol) *concurrentCell[int] {
	c, _ := s.in3D.LoadOrStore(cellKey{Vertex: vertex, Label: label}, &concurrentCell[int]{})

	return c
}

// Out2D returns the Out-2D cell for vertex, lazily creating it.
func (s *ConcurrentStore) Out2D(vertex int) *concurrentCell[peer] {
	c, _ := s.out2D.LoadOrStore(vertex, &concurrentCell[peer]{})

	return c
}

// In2D returns the In-2D cell for vertex, lazily creating it.
func (s *ConcurrentStore) In2D(vertex int) *concurrentCell[peer] {
	c, _ := s.in2D.LoadOrStore(vertex, &concurrentCell[peer]{})

	return c
}

// AddInitial appends e to every maintained frontier and records it in the
// dedup index, advancing newEnd immediately. Safe to call only before
// concurrent saturation begins (sequential load phase).
func (s *ConcurrentStore) AddInitial(from, to int, label grammar.Symbol) {
	key, peerV := s.dedupKey(from, to, label)
	if !s.dedupSetFor(key).insertIfAbsent(peerV) {
		return
	}
	s.edgeCount.Add(1)
	s.appendToFrontiers(from, to, label, true)
	s.vertexKeys.Store(from, struct{}{})
	s.vertexKeys.Store(to, struct{}{})
}

// AddSelfEdge is AddInitial made idempotent via the dedup set, safe to call
// concurrently from a parallelized self-edge-seeding loop (spec.md §4.3.6).
func (s *ConcurrentStore) AddSelfEdge(v int, label grammar.Symbol) {
	key, peerV := s.dedupKey(v, v, label)
	if !s.dedupSetFor(key).insertIfAbsent(peerV) {
		return
	}
	s.edgeCount.Add(1)
	s.appendToFrontiers(v, v, label, true)
	s.vertexKeys.Store(v, struct{}{})
}

// CheckAndAddEdge is the concurrent-safe insert-if-absent write used by
// parallel sweeps. The dedup insert happens strictly before the frontier
// append, so any reader observing the frontier entry is guaranteed to also
// observe the dedup entry (spec.md §5 "insert-then-append order").
func (s *ConcurrentStore) CheckAndAddEdge(from, to int, label grammar.Symbol, terminate *atomic.Bool) bool {
	key, peerV := s.dedupKey(from, to, label)
	if !s.dedupSetFor(key).insertIfAbsent(peerV) {
		return false
	}
	s.edgeCount.Add(1)
	s.appendToFrontiers(from, to, label, false)
	s.vertexKeys.Store(from, struct{}{})
	s.vertexKeys.Store(to, struct{}{})
	terminate.Store(false)

	return true
}

func (s *ConcurrentStore) appendToFrontiers(from, to int, label grammar.Symbol, initial bool) {
	if s.partition == ThreeD {
		if s.out3D != nil {
			c := s.Out3D(from, label)
			if initial {
				c.appendInitial(to)
			} else {
				c.appendPending(to)
			}
		}
		if s.in3D != nil {
			c := s.In3D(to, label)
			if initial {
				c.appendInitial(from)
			} else {
				c.appendPending(from)
			}
		}

		return
	}

	if s.out2D != nil {
		c := s.Out2D(from)
		if initial {
			c.appendInitial(peer{Vertex: to, Label: label})
		} else {
			c.appendPending(peer{Vertex: to, Label: label})
		}
	}
	if s.in2D != nil {
		c := s.In2D(to)
		if initial {
			c.appendInitial(peer{Vertex: from, Label: label})
		} else {
			c.appendPending(peer{Vertex: from, Label: label})
		}
	}
}

// CommitFrontier advances every cell's cursors, visiting the cells one after
// another on the calling goroutine; cells are not committed in parallel.
func (s *ConcurrentStore) CommitFrontier() {
	if s.out3D != nil {
		s.out3D.Range(func(_ cellKey, c *concurrentCell[int]) bool { c.commit(); return true })
	}
	if s.in3D != nil {
		s.in3D.Range(func(_ cellKey, c *concurrentCell[int]) bool { c.commit(); return true })
	}
	if s.out2D != nil {
		s.out2D.Range(func(_ int, c *concurrentCell[peer]) bool { c.commit(); return true })
	}
	if s.in2D != nil {
		s.in2D.Range(func(_ int, c *concurrentCell[peer]) bool { c.commit(); return true })
	}
}

// Labels3DOut returns every label with at least one Out-3D cell for
// vertex. O(total cells); mirrors Store.Labels3DOut's simplicity tradeoff.
func (s *ConcurrentStore) Labels3DOut(vertex int) []grammar.Symbol {
	var out []grammar.Symbol
	if s.out3D == nil {
		return out
	}
	s.out3D.Range(func(k cellKey, _ *concurrentCell[int]) bool {
		if k.Vertex == vertex {
			out = append(out, k.Label)
		}
		return true
	})

	return out
}

// Labels3DIn returns every label with at least one In-3D cell for vertex.
func (s *ConcurrentStore) Labels3DIn(vertex int) []grammar.Symbol {
	var out []grammar.Symbol
	if s.in3D == nil {
		return out
	}
	s.in3D.Range(func(k cellKey, _ *concurrentCell[int]) bool {
		if k.Vertex == vertex {
			out = append(out, k.Label)
		}
		return true
	})

	return out
}

// Vertices returns every vertex touched so far (union of all edge
// endpoints), in no particular order.
func (s *ConcurrentStore) Vertices() []int {
	out := make([]int, 0)
	s.vertexKeys.Range(func(v int, _ struct{}) bool {
		out = append(out, v)
		return true
	})

	return out
}
