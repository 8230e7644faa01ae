// Package store holds the saturated edge set plus its per-cell OLD/NEW/
// PENDING frontier (spec.md §3) and the dedup index that mirrors it. It is
// the mutable state the saturate package iterates to a fixed point.
package store

import "github.com/katalvlaran/cflreach/grammar"

// peer is one entry of a 2D (topo-driven) cell: the other endpoint of an
// edge plus the label carried by that edge (3D cells omit Label since it is
// already fixed by the cell's map key).
type peer struct {
	Vertex int
	Label  grammar.Symbol
}

// cellKey identifies a 3D frontier cell: all edges incident to Vertex that
// carry Label, in the direction the owning map represents.
type cellKey struct {
	Vertex int
	Label  grammar.Symbol
}

// Cell is a per-(vertex, label) or per-vertex frontier: an append-only
// sequence of peer entries split into three contiguous regions by two
// monotone cursors, per spec.md §3:
//
//	OLD:     [0, oldEnd)     - derivations against all peers already tried.
//	NEW:     [oldEnd, newEnd) - added before the last commit, not yet OLD.
//	PENDING: [newEnd, length) - added during the current sweep.
//
// Cell is generic over the peer representation: Cell[int] for 3D cells
// (label implied by the map key) and Cell[peer] for 2D cells (label stored
// per entry).
type Cell[T any] struct {
	entries        []T
	oldEnd, newEnd int
}

// Len returns the total number of entries, OLD+NEW+PENDING.
func (c *Cell[T]) Len() int { return len(c.entries) }

// Old returns the OLD region, [0, oldEnd).
func (c *Cell[T]) Old() []T { return c.entries[:c.oldEnd] }

// New returns the NEW region, [oldEnd, newEnd).
func (c *Cell[T]) New() []T { return c.entries[c.oldEnd:c.newEnd] }

// OldAndNew returns OLD ∪ NEW, [0, newEnd) — everything except PENDING.
// This is the peer range spec.md §4.3.1 calls "OLD ∪ NEW, but not pending".
func (c *Cell[T]) OldAndNew() []T { return c.entries[:c.newEnd] }

// appendPending appends an entry without advancing newEnd, leaving it in
// PENDING until the next commit. This is the append checkAndAddEdge
// performs (spec.md §4.2).
func (c *Cell[T]) appendPending(v T) {
	c.entries = append(c.entries, v)
}

// appendInitial appends an entry and immediately advances newEnd past it,
// so the entry starts life as NEW rather than PENDING. This is the append
// addInitial and addSelfEdge perform (spec.md §4.2: "initial edges are
// considered new relative to the empty old set").
func (c *Cell[T]) appendInitial(v T) {
	c.entries = append(c.entries, v)
	c.newEnd = len(c.entries)
}

// commit performs the end-of-sweep cursor advance: oldEnd := newEnd;
// newEnd := length (spec.md §3, §4.2 commitFrontier).
func (c *Cell[T]) commit() {
	c.oldEnd = c.newEnd
	c.newEnd = len(c.entries)
}
