package cave

import (
	"slices"

	"github.com/zyedidia/generic/mapset"

	"mad-caves/pkg/core"
)

// Room is an open region promoted after pruning. Rooms reference each other
// by ID only.
type Room struct {
	ID         int
	Cells      []core.Cell
	EdgeCells  []core.Cell
	Main       bool
	Accessible bool

	connected mapset.Set[int]
}

// Size returns the number of cells in the room.
func (r *Room) Size() int { return len(r.Cells) }

// IsConnected reports whether a passage joins r and the room with the given ID.
func (r *Room) IsConnected(id int) bool { return r.connected.Has(id) }

// Connections returns the IDs of directly connected rooms in ascending order.
func (r *Room) Connections() []int {
	ids := make([]int, 0, r.connected.Size())
	r.connected.Each(func(id int) { ids = append(ids, id) })
	slices.Sort(ids)
	return ids
}

// extractRooms wraps every open region of g into a Room, largest first. Equal
// sizes keep flood-fill order. The first room is the main room.
func extractRooms(g *core.Grid) []*Room {
	regions := Regions(g, false)
	slices.SortStableFunc(regions, func(a, b Region) int {
		return b.Size() - a.Size()
	})
	rooms := make([]*Room, len(regions))
	for i, r := range regions {
		rooms[i] = &Room{
			ID:        i,
			Cells:     r.Cells,
			EdgeCells: r.EdgeCells(g),
			connected: mapset.New[int](),
		}
	}
	if len(rooms) > 0 {
		rooms[0].Main = true
		rooms[0].Accessible = true
	}
	return rooms
}

// link records a passage between rooms a and b. If either side is accessible
// the whole component becomes accessible.
func link(rooms []*Room, a, b int) {
	rooms[a].connected.Put(b)
	rooms[b].connected.Put(a)
	if rooms[a].Accessible || rooms[b].Accessible {
		markAccessible(rooms, a)
	}
}

// markAccessible flags every room reachable from start through recorded
// connections.
func markAccessible(rooms []*Room, start int) {
	rooms[start].Accessible = true
	work := []int{start}
	for len(work) > 0 {
		id := work[len(work)-1]
		work = work[:len(work)-1]
		rooms[id].connected.Each(func(n int) {
			if !rooms[n].Accessible {
				rooms[n].Accessible = true
				work = append(work, n)
			}
		})
	}
}
