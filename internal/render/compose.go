// Package render turns cave grids and paths into display buffers.
package render

import (
	"strings"

	"mad-caves/pkg/core"
)

// Scene is everything drawn for one frame.
type Scene struct {
	Grid  *core.Grid
	Path  []core.Cell
	Start *core.Cell
	Goal  *core.Cell

	// ShowBorder shades floor cells that touch a wall.
	ShowBorder bool
}

// Compose writes one palette index per cell into buf and returns it. buf is
// reallocated when its length does not match the grid. Path cells are drawn
// over the map and the endpoints over the path.
func Compose(buf []uint8, s Scene) []uint8 {
	g := s.Grid
	if g == nil {
		return buf[:0]
	}
	n := g.W * g.H
	if len(buf) != n {
		buf = make([]uint8, n)
	}
	for i, v := range g.Cells() {
		switch {
		case v == core.CellBlocked:
			buf[i] = IndexWall
		case s.ShowBorder && g.Border(g.CellAt(i)):
			buf[i] = IndexBorder
		default:
			buf[i] = IndexFloor
		}
	}
	for _, c := range s.Path {
		if g.InBounds(c) {
			buf[g.Index(c)] = IndexPath
		}
	}
	if s.Start != nil && g.InBounds(*s.Start) {
		buf[g.Index(*s.Start)] = IndexStart
	}
	if s.Goal != nil && g.InBounds(*s.Goal) {
		buf[g.Index(*s.Goal)] = IndexGoal
	}
	return buf
}

var glyphs = [...]byte{
	IndexFloor:  '.',
	IndexWall:   '#',
	IndexBorder: '.',
	IndexPath:   '*',
	IndexStart:  'S',
	IndexGoal:   'G',
}

// Text renders the scene as one line per row: '#' wall, '.' floor, '*' path,
// 'S' start and 'G' goal.
func Text(s Scene) string {
	if s.Grid == nil {
		return ""
	}
	s.ShowBorder = false
	cells := Compose(nil, s)
	var b strings.Builder
	b.Grow((s.Grid.W + 1) * s.Grid.H)
	for i, v := range cells {
		b.WriteByte(glyphs[v])
		if (i+1)%s.Grid.W == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
