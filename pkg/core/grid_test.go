package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridClampsDimensions(t *testing.T) {
	g := NewGrid(0, -3)
	assert.Equal(t, Size{W: 1, H: 1}, g.Size())
	assert.Len(t, g.Cells(), 1)
}

func TestInBoundsAndBlocked(t *testing.T) {
	g := NewGrid(4, 3)
	cases := []struct {
		c    Cell
		want bool
	}{
		{C(0, 0), true},
		{C(3, 2), true},
		{C(-1, 0), false},
		{C(4, 0), false},
		{C(0, 3), false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, g.InBounds(tc.c), "InBounds%v", tc.c)
	}

	assert.True(t, g.Blocked(C(-1, 0)), "out of bounds reads as wall")
	assert.False(t, g.Walkable(C(-1, 0)))

	g.SetBlocked(C(2, 1), true)
	assert.True(t, g.Blocked(C(2, 1)))
	assert.False(t, g.Walkable(C(2, 1)))
	assert.Equal(t, CellBlocked, g.Cells()[g.Index(C(2, 1))])

	g.SetBlocked(C(9, 9), true) // ignored
	assert.Equal(t, 1, g.Count(true))
	assert.Equal(t, 11, g.Count(false))
}

func TestIndexRoundTrip(t *testing.T) {
	g := NewGrid(7, 5)
	for i := range g.Cells() {
		require.Equal(t, i, g.Index(g.CellAt(i)))
	}
	assert.Equal(t, C(3, 2), g.CellAt(2*7+3))
}

func TestBorderIgnoresGridEdge(t *testing.T) {
	g := NewGrid(3, 3)
	assert.False(t, g.Border(C(0, 0)), "grid edges alone do not make a border cell")

	g.SetBlocked(C(2, 2), true)
	assert.True(t, g.Border(C(1, 1)), "diagonal wall counts")
	assert.True(t, g.Border(C(2, 1)))
	assert.False(t, g.Border(C(0, 0)))
	assert.False(t, g.Border(C(2, 2)), "a wall with no wall neighbors is not a border cell")
}

func TestParseAndString(t *testing.T) {
	rows := []string{
		"#####",
		"#..##",
		"#####",
	}
	g, err := Parse(rows...)
	require.NoError(t, err)
	assert.Equal(t, Size{W: 5, H: 3}, g.Size())
	assert.True(t, g.Walkable(C(1, 1)))
	assert.True(t, g.Walkable(C(2, 1)))
	assert.True(t, g.Blocked(C(3, 1)))
	assert.Equal(t, "#####\n#..##\n#####\n", g.String())

	_, err = Parse("###", "##")
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
	_, err = Parse()
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
}

func TestFillRejectsMismatchedMatrix(t *testing.T) {
	g := NewGrid(2, 3)
	g.SetBlocked(C(0, 0), true)

	err := g.Fill([][]bool{{true, true, true}})
	require.ErrorIs(t, err, ErrDimensionMismatch)

	err = g.Fill([][]bool{{true, true, true}, {true, true}})
	require.ErrorIs(t, err, ErrDimensionMismatch)

	assert.Equal(t, 1, g.Count(true), "failed fill must not modify the grid")
}

func TestFillAndColumns(t *testing.T) {
	values := [][]bool{
		{true, false, true},
		{false, false, true},
	}
	g, err := FromColumns(values)
	require.NoError(t, err)
	assert.Equal(t, Size{W: 2, H: 3}, g.Size())
	assert.True(t, g.Blocked(C(0, 0)))
	assert.True(t, g.Walkable(C(1, 0)))
	assert.True(t, g.Blocked(C(1, 2)))
	assert.Equal(t, values, g.Columns())

	_, err = FromColumns(nil)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestCloneAndEqual(t *testing.T) {
	g := NewGrid(3, 3)
	g.SetBlocked(C(1, 1), true)
	cp := g.Clone()
	require.True(t, g.Equal(cp))

	cp.SetBlocked(C(0, 0), true)
	assert.False(t, g.Equal(cp))
	assert.False(t, g.Blocked(C(0, 0)), "clone must not alias its source")
	assert.False(t, g.Equal(NewGrid(3, 4)))
	assert.False(t, g.Equal(nil))
}

func TestOnRing(t *testing.T) {
	g := NewGrid(4, 4)
	ring := 0
	for i := range g.Cells() {
		if g.OnRing(g.CellAt(i)) {
			ring++
		}
	}
	assert.Equal(t, 12, ring)
}
