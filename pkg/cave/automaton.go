package cave

import "mad-caves/pkg/core"

// randomFill walls the outer ring and makes each interior cell a wall with
// probability fill. Cells are visited column by column, rows inner, so a seed
// maps to exactly one layout.
func randomFill(g *core.Grid, rng *core.RNG, fill float64) {
	for col := 0; col < g.W; col++ {
		for row := 0; row < g.H; row++ {
			c := core.Cell{Col: col, Row: row}
			if g.OnRing(c) {
				g.SetBlocked(c, true)
				continue
			}
			g.SetBlocked(c, rng.Float64() < fill)
		}
	}
}

// smooth applies one automaton step, reading cur and writing nxt. Both grids
// must share dimensions and must not alias.
func smooth(cur, nxt *core.Grid, deathLimit, birthLimit int) {
	src := cur.Cells()
	dst := nxt.Cells()
	w, h := cur.W, cur.H
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			idx := row*w + col
			if col == 0 || row == 0 || col == w-1 || row == h-1 {
				dst[idx] = core.CellBlocked
				continue
			}
			walls := wallNeighbors(src, w, h, col, row)
			if src[idx] == core.CellBlocked {
				if walls < deathLimit {
					dst[idx] = core.CellOpen
				} else {
					dst[idx] = core.CellBlocked
				}
				continue
			}
			if walls > birthLimit {
				dst[idx] = core.CellBlocked
			} else {
				dst[idx] = core.CellOpen
			}
		}
	}
}

// wallNeighbors counts walls among the 8 neighbors; cells past the edge count
// as walls.
func wallNeighbors(cells []uint8, w, h, col, row int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dc == 0 && dr == 0 {
				continue
			}
			nc, nr := col+dc, row+dr
			if nc < 0 || nr < 0 || nc >= w || nr >= h {
				count++
				continue
			}
			if cells[nr*w+nc] == core.CellBlocked {
				count++
			}
		}
	}
	return count
}
