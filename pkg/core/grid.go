package core

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// CellOpen marks a floor cell in the backing buffer.
	CellOpen uint8 = 0
	// CellBlocked marks a wall cell in the backing buffer.
	CellBlocked uint8 = 1
)

// ErrDimensionMismatch reports a matrix whose shape does not match the grid.
var ErrDimensionMismatch = errors.New("core: matrix dimensions do not match grid")

// Cell addresses a grid cell by column and row.
type Cell struct {
	Col, Row int
}

// C is shorthand for Cell{Col: col, Row: row}.
func C(col, row int) Cell { return Cell{Col: col, Row: row} }

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.Col, c.Row) }

// Grid stores wall/floor occupancy in row-major order. Dimensions are fixed
// at construction.
type Grid struct {
	W, H int
	data []uint8
}

// NewGrid allocates an all-open grid. Non-positive dimensions clamp to 1.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]uint8, w*h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice (CellOpen / CellBlocked per cell).
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for c.
func (g *Grid) Index(c Cell) int { return c.Row*g.W + c.Col }

// CellAt is the inverse of Index.
func (g *Grid) CellAt(idx int) Cell { return Cell{Col: idx % g.W, Row: idx / g.W} }

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Row >= 0 && c.Col < g.W && c.Row < g.H
}

// OnRing reports whether c is part of the outermost row or column.
func (g *Grid) OnRing(c Cell) bool {
	return c.Col == 0 || c.Row == 0 || c.Col == g.W-1 || c.Row == g.H-1
}

// Blocked reports whether c is a wall. Out-of-bounds cells are walls.
func (g *Grid) Blocked(c Cell) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.data[g.Index(c)] == CellBlocked
}

// SetBlocked sets the wall state of c. Out-of-bounds writes are ignored.
func (g *Grid) SetBlocked(c Cell, blocked bool) {
	if !g.InBounds(c) {
		return
	}
	if blocked {
		g.data[g.Index(c)] = CellBlocked
		return
	}
	g.data[g.Index(c)] = CellOpen
}

// Walkable reports whether c is an in-bounds floor cell.
func (g *Grid) Walkable(c Cell) bool {
	return g.InBounds(c) && g.data[g.Index(c)] == CellOpen
}

// Border reports whether any in-bounds 8-neighbor of c is a wall. Cells past
// the grid edge do not count.
func (g *Grid) Border(c Cell) bool {
	for dc := -1; dc <= 1; dc++ {
		for dr := -1; dr <= 1; dr++ {
			if dc == 0 && dr == 0 {
				continue
			}
			n := Cell{Col: c.Col + dc, Row: c.Row + dr}
			if g.InBounds(n) && g.data[g.Index(n)] == CellBlocked {
				return true
			}
		}
	}
	return false
}

// Count returns how many cells are in the given state.
func (g *Grid) Count(blocked bool) int {
	want := CellOpen
	if blocked {
		want = CellBlocked
	}
	n := 0
	for _, v := range g.data {
		if v == want {
			n++
		}
	}
	return n
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	out := &Grid{W: g.W, H: g.H, data: make([]uint8, len(g.data))}
	copy(out.data, g.data)
	return out
}

// Equal reports whether both grids have the same shape and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.W != other.W || g.H != other.H {
		return false
	}
	for i, v := range g.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// FromColumns builds a grid from a column-major matrix where true is a wall,
// i.e. values[col][row].
func FromColumns(values [][]bool) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, fmt.Errorf("%w: empty matrix", ErrDimensionMismatch)
	}
	g := NewGrid(len(values), len(values[0]))
	if err := g.Fill(values); err != nil {
		return nil, err
	}
	return g, nil
}

// Fill overwrites every cell from a column-major wall matrix. The matrix must
// have exactly W columns of H rows each; otherwise the grid is left untouched.
func (g *Grid) Fill(values [][]bool) error {
	if len(values) != g.W {
		return fmt.Errorf("%w: got %d columns, want %d", ErrDimensionMismatch, len(values), g.W)
	}
	for col, column := range values {
		if len(column) != g.H {
			return fmt.Errorf("%w: column %d has %d rows, want %d", ErrDimensionMismatch, col, len(column), g.H)
		}
	}
	for col, column := range values {
		for row, wall := range column {
			g.SetBlocked(Cell{Col: col, Row: row}, wall)
		}
	}
	return nil
}

// Columns exports the grid as a column-major wall matrix.
func (g *Grid) Columns() [][]bool {
	out := make([][]bool, g.W)
	for col := range out {
		out[col] = make([]bool, g.H)
		for row := range out[col] {
			out[col][row] = g.data[row*g.W+col] == CellBlocked
		}
	}
	return out
}

// Parse reads a grid from text rows, '#' for walls and anything else for
// floor. Rows must share one length.
func Parse(rows ...string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty matrix", ErrDimensionMismatch)
	}
	g := NewGrid(len(rows[0]), len(rows))
	for r, line := range rows {
		if len(line) != g.W {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrDimensionMismatch, r, len(line), g.W)
		}
		for c := 0; c < len(line); c++ {
			g.SetBlocked(Cell{Col: c, Row: r}, line[c] == '#')
		}
	}
	return g, nil
}

// String renders the grid with '#' for walls and '.' for floor, one line per
// row.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.W + 1) * g.H)
	for r := 0; r < g.H; r++ {
		for c := 0; c < g.W; c++ {
			if g.data[r*g.W+c] == CellBlocked {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
