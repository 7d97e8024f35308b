package cave

import "mad-caves/pkg/core"

// line rasterizes the segment from -> to along its long axis with an integer
// error accumulator. Both endpoints are included and consecutive points are
// 8-adjacent.
func line(from, to core.Cell) []core.Cell {
	x, y := from.Col, from.Row
	dx, dy := to.Col-from.Col, to.Row-from.Row

	step, gradientStep := sign(dx), sign(dy)
	longest, shortest := abs(dx), abs(dy)
	inverted := false
	if longest < shortest {
		inverted = true
		longest, shortest = shortest, longest
		step, gradientStep = gradientStep, step
	}

	points := make([]core.Cell, 0, longest+1)
	acc := longest / 2
	for i := 0; i < longest; i++ {
		points = append(points, core.Cell{Col: x, Row: y})
		if inverted {
			y += step
		} else {
			x += step
		}
		acc += shortest
		if acc >= longest {
			if inverted {
				x += gradientStep
			} else {
				y += gradientStep
			}
			acc -= longest
		}
	}
	return append(points, to)
}

// stampDisc opens every cell within radius r of center (dx²+dy² < r²).
// Ring cells are never opened.
func stampDisc(g *core.Grid, center core.Cell, r int) {
	r2 := r * r
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			if dx*dx+dy*dy >= r2 {
				continue
			}
			c := core.Cell{Col: center.Col + dx, Row: center.Row + dy}
			if !g.InBounds(c) || g.OnRing(c) {
				continue
			}
			g.SetBlocked(c, false)
		}
	}
}

// carvePassage opens a corridor between a and b. On diagonal steps the
// orthogonal corner is stamped as well, so the centerline stays 4-connected
// at any radius.
func carvePassage(g *core.Grid, a, b core.Cell, radius int) {
	points := line(a, b)
	for i, p := range points {
		stampDisc(g, p, radius)
		if i == 0 {
			continue
		}
		prev := points[i-1]
		if prev.Col != p.Col && prev.Row != p.Row {
			stampDisc(g, core.Cell{Col: p.Col, Row: prev.Row}, radius)
		}
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
