package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mad-caves/pkg/core"
)

func testGrid(t *testing.T) *core.Grid {
	t.Helper()
	g, err := core.Parse(
		"######",
		"#....#",
		"#....#",
		"#....#",
		"######",
	)
	require.NoError(t, err)
	return g
}

func TestComposeLayers(t *testing.T) {
	g := testGrid(t)
	start, goal := core.C(1, 1), core.C(4, 3)
	s := Scene{
		Grid:  g,
		Path:  []core.Cell{start, core.C(2, 2), core.C(3, 2), goal, core.C(99, 99)},
		Start: &start,
		Goal:  &goal,
	}
	buf := Compose(nil, s)
	require.Len(t, buf, 30)
	assert.Equal(t, IndexWall, buf[g.Index(core.C(0, 0))])
	assert.Equal(t, IndexFloor, buf[g.Index(core.C(1, 3))])
	assert.Equal(t, IndexPath, buf[g.Index(core.C(2, 2))])
	assert.Equal(t, IndexStart, buf[g.Index(start)])
	assert.Equal(t, IndexGoal, buf[g.Index(goal)])

	s.ShowBorder = true
	again := Compose(buf, s)
	assert.Same(t, &buf[0], &again[0], "a matching buffer is reused")
	assert.Equal(t, IndexBorder, again[g.Index(core.C(1, 3))])
}

func TestComposeNilGrid(t *testing.T) {
	assert.Empty(t, Compose(make([]uint8, 4), Scene{}))
	assert.Equal(t, "", Text(Scene{}))
}

func TestText(t *testing.T) {
	g := testGrid(t)
	start, goal := core.C(1, 1), core.C(4, 1)
	out := Text(Scene{
		Grid:       g,
		Path:       []core.Cell{start, core.C(2, 1), core.C(3, 1), goal},
		Start:      &start,
		Goal:       &goal,
		ShowBorder: true,
	})
	assert.Equal(t, "######\n#S**G#\n#....#\n#....#\n######\n", out)
	assert.Equal(t, g.String(), Text(Scene{Grid: g}))
}

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{{R: 1, G: 2, B: 3, A: 4}, {R: 5, G: 6, B: 7, A: 8}}
	buf := make([]byte, 12)
	fillPaletteRGBA(buf, []uint8{0, 1, 9}, palette)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8, 5, 6, 7, 8}, buf)

	fillPaletteRGBA(buf, []uint8{0, 1, 9}, nil)
	assert.Equal(t, make([]byte, 12), buf)
}

func TestCavePaletteCoversIndices(t *testing.T) {
	assert.Len(t, CavePalette, int(IndexGoal)+1)
	for i, c := range CavePalette {
		assert.Equal(t, uint8(255), c.A, "index %d", i)
	}
}
