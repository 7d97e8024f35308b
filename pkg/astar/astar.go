package astar

import (
	"fmt"
	"math"

	"github.com/zyedidia/generic/heap"

	"mad-caves/pkg/core"
)

const (
	stateUnseen uint8 = iota
	stateOpen
	stateClosed
)

// node is the per-cell search state, indexed by row*W+col.
type node struct {
	g, h    float64
	parent  int
	seq     int
	version uint32
	state   uint8
}

// entry is one heap record. It is stale when its version no longer matches
// the node's.
type entry struct {
	idx     int
	f, h    float64
	seq     int
	version uint32
}

func lessEntry(a, b entry) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return a.seq < b.seq
}

// Finder runs searches with fixed options. It holds no per-search state and
// is safe for concurrent use.
type Finder struct {
	opts Options
}

// New returns a Finder configured by opts.
func New(opts ...Option) *Finder {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Finder{opts: o}
}

// Options returns the options in use.
func (f *Finder) Options() Options { return f.opts }

// FindPath is shorthand for New(opts...).FindPath(start, goal, grid).
func FindPath(start, goal core.Cell, grid Walkability, opts ...Option) (Result, error) {
	return New(opts...).FindPath(start, goal, grid)
}

// FindPath returns the cheapest path from start to goal, both inclusive.
//
// Validation (in order):
//  1. grid must be non-nil (ErrNilGrid).
//  2. start and goal must be in bounds (ErrOutOfBounds).
//  3. start and goal must be walkable (ErrNotWalkable).
//
// An unreachable goal yields Result{Found: false} and a nil error.
func (f *Finder) FindPath(start, goal core.Cell, grid Walkability) (Result, error) {
	if grid == nil {
		return Result{}, ErrNilGrid
	}
	if g, ok := grid.(*core.Grid); ok && g == nil {
		return Result{}, ErrNilGrid
	}
	if err := validate("start", start, grid); err != nil {
		return Result{}, err
	}
	if err := validate("goal", goal, grid); err != nil {
		return Result{}, err
	}
	if start == goal {
		return Result{Path: []core.Cell{start}, Found: true}, nil
	}

	s := &search{
		grid:    grid,
		w:       grid.Size().W,
		goal:    goal,
		penalty: f.opts.BorderPenalty,
	}
	s.nodes = make([]node, s.w*grid.Size().H)
	s.open = heap.New[entry](lessEntry)
	return s.run(start), nil
}

func validate(which string, c core.Cell, grid Walkability) error {
	if !grid.InBounds(c) {
		return fmt.Errorf("%s %v: %w", which, c, ErrOutOfBounds)
	}
	if !grid.Walkable(c) {
		return fmt.Errorf("%s %v: %w", which, c, ErrNotWalkable)
	}
	return nil
}

// search holds the state of one FindPath call.
type search struct {
	grid    Walkability
	w       int
	goal    core.Cell
	penalty float64

	nodes []node
	open  *heap.Heap[entry]
	seq   int
}

func (s *search) index(c core.Cell) int { return c.Row*s.w + c.Col }

func (s *search) cell(idx int) core.Cell { return core.Cell{Col: idx % s.w, Row: idx / s.w} }

func (s *search) run(start core.Cell) Result {
	si := s.index(start)
	s.nodes[si].h = distance(start, s.goal)
	s.nodes[si].parent = -1
	s.push(si)

	gi := s.index(s.goal)
	for s.open.Size() > 0 {
		e, _ := s.open.Pop()
		cur := &s.nodes[e.idx]
		if cur.state != stateOpen || cur.version != e.version {
			continue
		}
		cur.state = stateClosed
		if e.idx == gi {
			return s.retrace(gi)
		}
		s.expand(e.idx)
	}
	return Result{}
}

// push marks idx open, assigning its insertion order on first entry, and
// records a heap entry for its current g.
func (s *search) push(idx int) {
	n := &s.nodes[idx]
	if n.state != stateOpen {
		n.state = stateOpen
		n.seq = s.seq
		s.seq++
	}
	n.version++
	s.open.Push(entry{idx: idx, f: n.g + n.h, h: n.h, seq: n.seq, version: n.version})
}

func (s *search) expand(idx int) {
	c := s.cell(idx)
	cur := s.nodes[idx]
	mult := 1.0
	if s.border(c) {
		mult = s.penalty
	}
	for dc := -1; dc <= 1; dc++ {
		for dr := -1; dr <= 1; dr++ {
			if dc == 0 && dr == 0 {
				continue
			}
			nc := core.Cell{Col: c.Col + dc, Row: c.Row + dr}
			if !s.walkable(nc) {
				continue
			}
			ni := s.index(nc)
			n := &s.nodes[ni]
			if n.state == stateClosed {
				continue
			}
			if dc != 0 && dr != 0 && s.cornerBlocked(c, dc, dr) {
				continue
			}
			g := cur.g + distance(c, nc)*mult
			if n.state == stateOpen && g >= n.g {
				continue
			}
			n.g = g
			n.h = distance(nc, s.goal)
			n.parent = idx
			s.push(ni)
		}
	}
}

// cornerBlocked reports whether both orthogonal cells beside a diagonal step
// are unwalkable.
func (s *search) cornerBlocked(c core.Cell, dc, dr int) bool {
	a := core.Cell{Col: c.Col + dc, Row: c.Row}
	b := core.Cell{Col: c.Col, Row: c.Row + dr}
	return !s.walkable(a) && !s.walkable(b)
}

func (s *search) walkable(c core.Cell) bool {
	return s.grid.InBounds(c) && s.grid.Walkable(c)
}

// border reports whether any in-bounds 8-neighbor of c is unwalkable.
func (s *search) border(c core.Cell) bool {
	for dc := -1; dc <= 1; dc++ {
		for dr := -1; dr <= 1; dr++ {
			if dc == 0 && dr == 0 {
				continue
			}
			n := core.Cell{Col: c.Col + dc, Row: c.Row + dr}
			if s.grid.InBounds(n) && !s.grid.Walkable(n) {
				return true
			}
		}
	}
	return false
}

func (s *search) retrace(gi int) Result {
	var path []core.Cell
	for i := gi; i >= 0; i = s.nodes[i].parent {
		path = append(path, s.cell(i))
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return Result{Path: path, Cost: s.nodes[gi].g, Found: true}
}

func distance(a, b core.Cell) float64 {
	dx := float64(a.Col - b.Col)
	dy := float64(a.Row - b.Row)
	return math.Sqrt(dx*dx + dy*dy)
}
