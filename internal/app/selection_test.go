package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mad-caves/internal/ui"
	"mad-caves/pkg/astar"
	"mad-caves/pkg/core"
)

func mustParse(t *testing.T, rows ...string) *core.Grid {
	t.Helper()
	g, err := core.Parse(rows...)
	require.NoError(t, err)
	return g
}

func TestSelectionClickSequence(t *testing.T) {
	g := mustParse(t,
		"#####",
		"#...#",
		"#####",
	)
	s := NewSelection(astar.New())
	assert.Equal(t, ui.PathIdle, s.State())

	assert.False(t, s.Click(g, core.C(0, 0)), "wall")
	assert.False(t, s.Click(g, core.C(9, 9)), "out of bounds")
	assert.Equal(t, ui.PathIdle, s.State())

	require.True(t, s.Click(g, core.C(1, 1)))
	assert.Equal(t, ui.PathPicking, s.State())
	assert.Equal(t, core.C(1, 1), *s.Start())
	assert.Nil(t, s.Goal())

	require.True(t, s.ClickAt(g, 3, 1))
	assert.Equal(t, ui.PathFound, s.State())
	assert.Equal(t, []core.Cell{core.C(1, 1), core.C(2, 1), core.C(3, 1)}, s.Result().Path)

	// A third click starts a new selection.
	require.True(t, s.Click(g, core.C(2, 1)))
	assert.Equal(t, ui.PathPicking, s.State())
	assert.Equal(t, core.C(2, 1), *s.Start())
	assert.False(t, s.Result().Found)

	s.Clear()
	assert.Equal(t, ui.PathIdle, s.State())
	assert.Nil(t, s.Start())
}

func TestSelectionUnreachable(t *testing.T) {
	g := mustParse(t,
		"#####",
		"#.#.#",
		"#.#.#",
		"#####",
	)
	s := NewSelection(astar.New())
	require.True(t, s.Click(g, core.C(1, 1)))
	require.True(t, s.Click(g, core.C(3, 2)))
	assert.Equal(t, ui.PathMissing, s.State())
	assert.Zero(t, s.Result().Len())

	// Opening the wall between them makes the same endpoints reachable.
	g.SetBlocked(core.C(2, 1), false)
	s.Refresh(g)
	assert.Equal(t, ui.PathFound, s.State())
	assert.Equal(t, core.C(3, 2), s.Result().Path[len(s.Result().Path)-1])
}

func TestSelectionRefreshDropsBlockedEndpoint(t *testing.T) {
	g := mustParse(t,
		"#####",
		"#...#",
		"#####",
	)
	s := NewSelection(astar.New())
	require.True(t, s.Click(g, core.C(1, 1)))
	require.True(t, s.Click(g, core.C(3, 1)))

	g.SetBlocked(core.C(3, 1), true)
	s.Refresh(g)
	assert.Equal(t, ui.PathIdle, s.State())
	assert.Nil(t, s.Goal())
}
