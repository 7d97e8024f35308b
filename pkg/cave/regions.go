package cave

import "mad-caves/pkg/core"

// orthogonal lists the 4-connected neighbor offsets used by flood fill and the
// edge-cell rule.
var orthogonal = [4][2]int{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}

// Region is a maximal 4-connected block of cells sharing one state.
type Region struct {
	Blocked bool
	Cells   []core.Cell
}

// Size returns the number of cells in the region.
func (r Region) Size() int { return len(r.Cells) }

// EdgeCells returns the cells of r that have at least one orthogonal neighbor
// in the opposite state or past the grid edge.
func (r Region) EdgeCells(g *core.Grid) []core.Cell {
	var edges []core.Cell
	for _, c := range r.Cells {
		for _, d := range orthogonal {
			n := core.Cell{Col: c.Col + d[0], Row: c.Row + d[1]}
			if !g.InBounds(n) || g.Blocked(n) != r.Blocked {
				edges = append(edges, c)
				break
			}
		}
	}
	return edges
}

// touchesRing reports whether any cell of r lies on the outer ring.
func (r Region) touchesRing(g *core.Grid) bool {
	for _, c := range r.Cells {
		if g.OnRing(c) {
			return true
		}
	}
	return false
}

// Regions partitions every cell in the given state into 4-connected regions.
// Seeds are taken column by column, rows inner; each region lists its cells
// in breadth-first order from its seed.
//
// Time: O(W·H). Memory: O(W·H) for the visited flags.
func Regions(g *core.Grid, blocked bool) []Region {
	want := core.CellOpen
	if blocked {
		want = core.CellBlocked
	}
	cells := g.Cells()
	seen := make([]bool, len(cells))
	var regions []Region

	for col := 0; col < g.W; col++ {
		for row := 0; row < g.H; row++ {
			i0 := row*g.W + col
			if seen[i0] || cells[i0] != want {
				continue
			}
			queue := []int{i0}
			seen[i0] = true
			var region []core.Cell
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				c := g.CellAt(u)
				region = append(region, c)
				for _, d := range orthogonal {
					n := core.Cell{Col: c.Col + d[0], Row: c.Row + d[1]}
					if !g.InBounds(n) {
						continue
					}
					vi := g.Index(n)
					if seen[vi] || cells[vi] != want {
						continue
					}
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
			regions = append(regions, Region{Blocked: blocked, Cells: region})
		}
	}
	return regions
}

// pruneRegions flips every region of the given state smaller than threshold
// to the opposite state and returns how many regions were flipped. Wall
// regions touching the outer ring are kept so the ring stays intact.
func pruneRegions(g *core.Grid, blocked bool, threshold int) int {
	if threshold <= 0 {
		return 0
	}
	removed := 0
	for _, r := range Regions(g, blocked) {
		if r.Size() >= threshold {
			continue
		}
		if blocked && r.touchesRing(g) {
			continue
		}
		for _, c := range r.Cells {
			g.SetBlocked(c, !blocked)
		}
		removed++
	}
	return removed
}
