package cave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mad-caves/pkg/core"
)

func TestRegionsFloodFill(t *testing.T) {
	g := mustParse(t,
		"#######",
		"#..#..#",
		"#..#..#",
		"#######",
	)
	open := Regions(g, false)
	require.Len(t, open, 2)
	assert.Equal(t, core.C(1, 1), open[0].Cells[0], "regions are seeded column by column")
	assert.Equal(t, 4, open[0].Size())
	assert.Equal(t, core.C(4, 1), open[1].Cells[0])
	assert.False(t, open[0].Blocked)

	walls := Regions(g, true)
	require.Len(t, walls, 1, "the divider touches the ring")
	assert.Equal(t, g.Count(true), walls[0].Size())
	assert.True(t, walls[0].Blocked)
}

func TestRegionsAreFourConnected(t *testing.T) {
	g := mustParse(t,
		"#####",
		"#.###",
		"##.##",
		"#####",
	)
	assert.Len(t, Regions(g, false), 2, "diagonal floor cells are separate regions")
}

func TestEdgeCells(t *testing.T) {
	g := mustParse(t,
		"#####",
		"#...#",
		"#...#",
		"#...#",
		"#####",
	)
	rooms := Regions(g, false)
	require.Len(t, rooms, 1)
	edges := rooms[0].EdgeCells(g)
	assert.Len(t, edges, 8)
	assert.NotContains(t, edges, core.C(2, 2))
}

func TestEdgeCellsCountGridEdge(t *testing.T) {
	g := core.NewGrid(3, 1)
	rooms := Regions(g, false)
	require.Len(t, rooms, 1)
	assert.Len(t, rooms[0].EdgeCells(g), 3)
}

func TestPruneIslands(t *testing.T) {
	g := mustParse(t,
		"#######",
		"#.....#",
		"#..#..#",
		"#.....#",
		"#######",
	)
	removed := pruneRegions(g, true, 2)
	assert.Equal(t, 1, removed)
	assert.True(t, g.Walkable(core.C(3, 2)))
	assert.Equal(t, 20, g.Count(true), "the ring is never an island")
}

func TestPruneKeepsRingAttachedWalls(t *testing.T) {
	g := mustParse(t,
		"#####",
		"#.#.#",
		"#...#",
		"#####",
	)
	assert.Zero(t, pruneRegions(g, true, 100))
	assert.True(t, g.Blocked(core.C(2, 1)))
}

func TestPruneCaves(t *testing.T) {
	g := mustParse(t,
		"#######",
		"#.#...#",
		"###...#",
		"#######",
	)
	removed := pruneRegions(g, false, 2)
	assert.Equal(t, 1, removed)
	assert.True(t, g.Blocked(core.C(1, 1)))
	assert.Len(t, Regions(g, false), 1)
}

func TestPruneDisabled(t *testing.T) {
	g := mustParse(t,
		"#####",
		"#.#.#",
		"#####",
	)
	before := g.Clone()
	assert.Zero(t, pruneRegions(g, false, 0))
	assert.True(t, g.Equal(before))
}
