package cave

import "mad-caves/pkg/core"

// Passage is one carved corridor between two rooms.
type Passage struct {
	From, To   int
	Start, End core.Cell
	Distance2  int
	Forced     bool
}

// connector joins rooms one passage at a time. The first phase gives every
// unconnected room a link to its nearest neighbor; the second joins the
// closest inaccessible/accessible pair until every room is reachable from
// the main room.
type connector struct {
	grid   *core.Grid
	rooms  []*Room
	radius int

	cursor int
	forced bool
}

func newConnector(g *core.Grid, rooms []*Room, radius int) *connector {
	return &connector{grid: g, rooms: rooms, radius: radius}
}

// next carves one passage. It reports false once no passage remains.
func (c *connector) next() (Passage, bool) {
	if !c.forced {
		if p, ok := c.nextNearest(); ok {
			return p, true
		}
		c.forced = true
	}
	return c.nextForced()
}

func (c *connector) nextNearest() (Passage, bool) {
	for c.cursor < len(c.rooms) {
		a := c.rooms[c.cursor]
		c.cursor++
		if a.connected.Size() > 0 {
			continue
		}
		best := Passage{From: -1}
		for _, b := range c.rooms {
			if b.ID == a.ID || a.IsConnected(b.ID) {
				continue
			}
			if p, ok := closestEdges(a, b); ok && (best.From < 0 || p.Distance2 < best.Distance2) {
				best = p
			}
		}
		if best.From >= 0 {
			c.carve(best)
			return best, true
		}
	}
	return Passage{}, false
}

func (c *connector) nextForced() (Passage, bool) {
	best := Passage{From: -1, Forced: true}
	for _, a := range c.rooms {
		if a.Accessible {
			continue
		}
		for _, b := range c.rooms {
			if !b.Accessible {
				continue
			}
			if p, ok := closestEdges(a, b); ok && (best.From < 0 || p.Distance2 < best.Distance2) {
				best = p
				best.Forced = true
			}
		}
	}
	if best.From < 0 {
		return Passage{}, false
	}
	c.carve(best)
	return best, true
}

func (c *connector) carve(p Passage) {
	carvePassage(c.grid, p.Start, p.End, c.radius)
	link(c.rooms, p.From, p.To)
}

// closestEdges returns the edge-cell pair of a and b with the smallest
// squared distance. The first pair found wins ties.
func closestEdges(a, b *Room) (Passage, bool) {
	best := Passage{From: -1}
	for _, ea := range a.EdgeCells {
		for _, eb := range b.EdgeCells {
			dx, dy := ea.Col-eb.Col, ea.Row-eb.Row
			d2 := dx*dx + dy*dy
			if best.From < 0 || d2 < best.Distance2 {
				best = Passage{From: a.ID, To: b.ID, Start: ea, End: eb, Distance2: d2}
			}
		}
	}
	return best, best.From >= 0
}
