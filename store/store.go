package store

import "github.com/katalvlaran/cflreach/grammar"

// Direction selects which side(s) of an edge a Store indexes.
type Direction uint8

const (
	// Out indexes outgoing edges, keyed by (from, label).
	Out Direction = iota
	// In indexes incoming edges, keyed by (to, label).
	In
	// Bi indexes both directions simultaneously.
	Bi
)

// Partition selects how a Store's frontier cells are keyed. 3D partitions
// by (vertex, label); 2D partitions by vertex only, storing the label on
// each entry (spec.md §4.2).
type Partition uint8

const (
	// ThreeD partitions frontier cells by (vertex, label).
	ThreeD Partition = iota
	// TwoD partitions frontier cells by vertex only.
	TwoD
)

var emptyIntCell = &Cell[int]{}
var emptyPeerCell = &Cell[peer]{}

// Store is the serial edge store: the current derived edge set plus its
// OLD/NEW/PENDING frontier, and the dedup index that mirrors it. One Store
// instance serves exactly one (Direction, Partition) combination, composed
// rather than hand-copied per spec.md §9 ("deep inheritance... replaced by
// composition").
type Store struct {
	dir       Direction
	partition Partition

	// 3D cells: populated when partition == ThreeD.
	out3D map[cellKey]*Cell[int]
	in3D  map[cellKey]*Cell[int]

	// 2D cells: populated when partition == TwoD.
	out2D map[int]*Cell[peer]
	in2D  map[int]*Cell[peer]

	// dedup mirrors the frontier contents: for In-only stores it is keyed by
	// (to, label) -> set of from-vertices; otherwise by (from, label) -> set
	// of to-vertices. An edge's identity is direction-independent, so one
	// canonical key choice suffices even for Bi stores (spec.md §9 "Open
	// Questions" scopes dedup direction as an implementation choice; see
	// DESIGN.md).
	dedup       map[cellKey]map[int]struct{}
	dedupByTo   bool
	edgeCount   int
}

// New constructs an empty Store for the given (direction, partition) pair.
func New(dir Direction, partition Partition) *Store {
	s := &Store{
		dir:       dir,
		partition: partition,
		dedup:     make(map[cellKey]map[int]struct{}),
		dedupByTo: dir == In,
	}
	if partition == ThreeD {
		if dir == Out || dir == Bi {
			s.out3D = make(map[cellKey]*Cell[int])
		}
		if dir == In || dir == Bi {
			s.in3D = make(map[cellKey]*Cell[int])
		}
	} else {
		if dir == Out || dir == Bi {
			s.out2D = make(map[int]*Cell[peer])
		}
		if dir == In || dir == Bi {
			s.in2D = make(map[int]*Cell[peer])
		}
	}

	return s
}

// Direction reports the direction(s) this store indexes.
func (s *Store) Direction() Direction { return s.dir }

// Partition reports this store's partitioning scheme.
func (s *Store) Partition() Partition { return s.partition }

// EdgeCount returns the total number of distinct edges held, equal to the
// dedup index's total size (spec.md §4.2 countEdge).
func (s *Store) EdgeCount() int { return s.edgeCount }

// dedupKey picks the canonical dedup key for an edge given this store's
// dedupByTo policy.
func (s *Store) dedupKey(from, to int, label grammar.Symbol) (cellKey, int) {
	if s.dedupByTo {
		return cellKey{Vertex: to, Label: label}, from
	}

	return cellKey{Vertex: from, Label: label}, to
}

// has reports whether (from, to, label) is already present.
func (s *Store) has(from, to int, label grammar.Symbol) bool {
	key, peerV := s.dedupKey(from, to, label)
	set, ok := s.dedup[key]
	if !ok {
		return false
	}
	_, present := set[peerV]

	return present
}

// insertDedup records (from, to, label) as present. Returns false if it was
// already present (no-op).
func (s *Store) insertDedup(from, to int, label grammar.Symbol) bool {
	key, peerV := s.dedupKey(from, to, label)
	set, ok := s.dedup[key]
	if !ok {
		set = make(map[int]struct{})
		s.dedup[key] = set
	}
	if _, present := set[peerV]; present {
		return false
	}
	set[peerV] = struct{}{}
	s.edgeCount++

	return true
}

// out3DCell returns the Out-3D cell for (vertex, label), creating it if
// absent.
func (s *Store) out3DCell(vertex int, label grammar.Symbol) *Cell[int] {
	key := cellKey{Vertex: vertex, Label: label}
	c, ok := s.out3D[key]
	if !ok {
		c = &Cell[int]{}
		s.out3D[key] = c
	}

	return c
}

// in3DCell returns the In-3D cell for (vertex, label), creating it if
// absent.
func (s *Store) in3DCell(vertex int, label grammar.Symbol) *Cell[int] {
	key := cellKey{Vertex: vertex, Label: label}
	c, ok := s.in3D[key]
	if !ok {
		c = &Cell[int]{}
		s.in3D[key] = c
	}

	return c
}

// Out3D returns the read-only Out-3D cell for (vertex, label). Never nil;
// returns a shared empty cell if no such edges exist yet.
func (s *Store) Out3D(vertex int, label grammar.Symbol) *Cell[int] {
	if c, ok := s.out3D[cellKey{Vertex: vertex, Label: label}]; ok {
		return c
	}

	return emptyIntCell
}

// In3D returns the read-only In-3D cell for (vertex, label). Never nil.
func (s *Store) In3D(vertex int, label grammar.Symbol) *Cell[int] {
	if c, ok := s.in3D[cellKey{Vertex: vertex, Label: label}]; ok {
		return c
	}

	return emptyIntCell
}

// out2DCell returns the Out-2D cell for vertex, creating it if absent.
func (s *Store) out2DCell(vertex int) *Cell[peer] {
	c, ok := s.out2D[vertex]
	if !ok {
		c = &Cell[peer]{}
		s.out2D[vertex] = c
	}

	return c
}

// in2DCell returns the In-2D cell for vertex, creating it if absent.
func (s *Store) in2DCell(vertex int) *Cell[peer] {
	c, ok := s.in2D[vertex]
	if !ok {
		c = &Cell[peer]{}
		s.in2D[vertex] = c
	}

	return c
}

// Out2D returns the read-only Out-2D cell for vertex. Never nil.
func (s *Store) Out2D(vertex int) *Cell[peer] {
	if c, ok := s.out2D[vertex]; ok {
		return c
	}

	return emptyPeerCell
}

// In2D returns the read-only In-2D cell for vertex. Never nil.
func (s *Store) In2D(vertex int) *Cell[peer] {
	if c, ok := s.in2D[vertex]; ok {
		return c
	}

	return emptyPeerCell
}

// Peer returns a peer entry's (Vertex, Label) pair, used by 2D/topo-driven
// sweeps that need the label carried on each entry.
func Peer(vertex int, label grammar.Symbol) peer { return peer{Vertex: vertex, Label: label} }

// PeerVertex returns p's vertex id.
func PeerVertex(p peer) int { return p.Vertex }

// PeerLabel returns p's label.
func PeerLabel(p peer) grammar.Symbol { return p.Label }

// AddInitial appends e to every frontier this store maintains and inserts
// it into the dedup index, advancing newEnd immediately (spec.md §4.2:
// initial edges are "new" relative to the empty old set). A duplicate initial
// edge is ignored, so the frontier holds each edge once and its length
// equals the dedup set size (spec.md §9 "Initial-edge deduplication").
func (s *Store) AddInitial(from, to int, label grammar.Symbol) {
	if !s.insertDedup(from, to, label) {
		return
	}
	s.appendToFrontiers(from, to, label, true)
}

// AddSelfEdge is AddInitial made idempotent via the dedup set: a self-edge
// (v, v, A) seeded for more than one epsilon production or more than once
// across parallel workers is only ever appended once.
func (s *Store) AddSelfEdge(v int, label grammar.Symbol) {
	if s.has(v, v, label) {
		return
	}
	s.AddInitial(v, v, label)
}

// CheckAndAddEdge inserts (from, to, label) if absent, appending to the
// relevant frontiers as PENDING (not advancing newEnd) and clearing
// *terminate. Returns true if the edge was newly inserted. This is the sole
// writer that can observe "an edge was added" during a sweep (spec.md
// §4.3.7).
func (s *Store) CheckAndAddEdge(from, to int, label grammar.Symbol, terminate *bool) bool {
	if !s.insertDedup(from, to, label) {
		return false
	}
	s.appendToFrontiers(from, to, label, false)
	*terminate = false

	return true
}

// appendToFrontiers appends (from,to,label) to every maintained frontier,
// either as an initial (newEnd-advancing) or pending (newEnd-preserving)
// entry.
func (s *Store) appendToFrontiers(from, to int, label grammar.Symbol, initial bool) {
	if s.partition == ThreeD {
		if s.out3D != nil {
			c := s.out3DCell(from, label)
			if initial {
				c.appendInitial(to)
			} else {
				c.appendPending(to)
			}
		}
		if s.in3D != nil {
			c := s.in3DCell(to, label)
			if initial {
				c.appendInitial(from)
			} else {
				c.appendPending(from)
			}
		}

		return
	}

	if s.out2D != nil {
		c := s.out2DCell(from)
		if initial {
			c.appendInitial(peer{Vertex: to, Label: label})
		} else {
			c.appendPending(peer{Vertex: to, Label: label})
		}
	}
	if s.in2D != nil {
		c := s.in2DCell(to)
		if initial {
			c.appendInitial(peer{Vertex: from, Label: label})
		} else {
			c.appendPending(peer{Vertex: from, Label: label})
		}
	}
}

// CommitFrontier advances every maintained cell's cursors: oldEnd := newEnd;
// newEnd := length (spec.md §3). Called once, serially, at the end of each
// sweep.
func (s *Store) CommitFrontier() {
	for _, c := range s.out3D {
		c.commit()
	}
	for _, c := range s.in3D {
		c.commit()
	}
	for _, c := range s.out2D {
		c.commit()
	}
	for _, c := range s.in2D {
		c.commit()
	}
}

// Vertices3DOut returns every vertex that has at least one Out-3D cell,
// unordered.
func (s *Store) Vertices3DOut() []int {
	seen := make(map[int]struct{})
	for k := range s.out3D {
		seen[k.Vertex] = struct{}{}
	}

	return keys(seen)
}

// Vertices3DIn returns every vertex that has at least one In-3D cell.
func (s *Store) Vertices3DIn() []int {
	seen := make(map[int]struct{})
	for k := range s.in3D {
		seen[k.Vertex] = struct{}{}
	}

	return keys(seen)
}

// Labels3DOut returns every label with at least one Out-3D cell for vertex.
func (s *Store) Labels3DOut(vertex int) []grammar.Symbol {
	var out []grammar.Symbol
	for k := range s.out3D {
		if k.Vertex == vertex {
			out = append(out, k.Label)
		}
	}

	return out
}

// Labels3DIn returns every label with at least one In-3D cell for vertex.
func (s *Store) Labels3DIn(vertex int) []grammar.Symbol {
	var out []grammar.Symbol
	for k := range s.in3D {
		if k.Vertex == vertex {
			out = append(out, k.Label)
		}
	}

	return out
}

// VerticesOut2D returns every vertex with an Out-2D cell.
func (s *Store) VerticesOut2D() []int { return keys2D(s.out2D) }

// VerticesIn2D returns every vertex with an In-2D cell.
func (s *Store) VerticesIn2D() []int { return keys2D(s.in2D) }

func keys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	return out
}

func keys2D(m map[int]*Cell[peer]) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	return out
}
