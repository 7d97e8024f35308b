package app

import (
	"mad-caves/internal/ui"
	"mad-caves/pkg/astar"
	"mad-caves/pkg/core"
)

// Selection tracks the start and goal picked with the mouse and the path
// between them. The first click sets the start, the second the goal; a third
// click starts over.
type Selection struct {
	finder *astar.Finder
	start  *core.Cell
	goal   *core.Cell
	result astar.Result
}

// NewSelection returns an empty selection that searches with finder.
func NewSelection(finder *astar.Finder) *Selection {
	return &Selection{finder: finder}
}

// Click handles a click on c. Walls and out-of-bounds cells are ignored. It
// reports whether the selection changed.
func (s *Selection) Click(g *core.Grid, c core.Cell) bool {
	if !g.Walkable(c) {
		return false
	}
	if s.start == nil || s.goal != nil {
		s.start = &c
		s.goal = nil
		s.result = astar.Result{}
		return true
	}
	s.goal = &c
	s.search(g)
	return true
}

// ClickAt is Click for the cell at (col, row).
func (s *Selection) ClickAt(g *core.Grid, col, row int) bool {
	return s.Click(g, core.C(col, row))
}

// Clear drops both endpoints.
func (s *Selection) Clear() {
	s.start, s.goal = nil, nil
	s.result = astar.Result{}
}

// Refresh re-runs the search against g, clearing the selection when an
// endpoint is no longer walkable.
func (s *Selection) Refresh(g *core.Grid) {
	if s.start != nil && !g.Walkable(*s.start) || s.goal != nil && !g.Walkable(*s.goal) {
		s.Clear()
		return
	}
	if s.goal != nil {
		s.search(g)
	}
}

func (s *Selection) search(g *core.Grid) {
	res, err := s.finder.FindPath(*s.start, *s.goal, g)
	if err != nil {
		// Endpoints were checked as walkable; treat anything else as unreachable.
		res = astar.Result{}
	}
	s.result = res
}

// Start returns the start cell or nil.
func (s *Selection) Start() *core.Cell { return s.start }

// Goal returns the goal cell or nil.
func (s *Selection) Goal() *core.Cell { return s.goal }

// Result returns the last search result.
func (s *Selection) Result() astar.Result { return s.result }

// State summarizes the selection for the status line.
func (s *Selection) State() ui.PathState {
	switch {
	case s.start == nil:
		return ui.PathIdle
	case s.goal == nil:
		return ui.PathPicking
	case s.result.Found:
		return ui.PathFound
	}
	return ui.PathMissing
}
