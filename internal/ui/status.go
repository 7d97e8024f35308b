package ui

import "fmt"

// PathState describes the mouse selection in the preview window.
type PathState int

const (
	PathIdle PathState = iota
	PathPicking
	PathFound
	PathMissing
)

// Status is the text shown in the top-left corner of the preview.
type Status struct {
	Seed      int64
	Stage     string
	Animate   bool
	Rooms     int
	Passages  int
	Removed   int
	Path      PathState
	PathCells int
	PathCost  float64
}

// Lines formats the status block.
func (s Status) Lines() []string {
	mode := "instant"
	if s.Animate {
		mode = "animated"
	}
	lines := []string{
		fmt.Sprintf("seed %d  stage %s (%s)", s.Seed, s.Stage, mode),
		fmt.Sprintf("rooms %d  passages %d  pruned %d", s.Rooms, s.Passages, s.Removed),
	}
	switch s.Path {
	case PathPicking:
		lines = append(lines, "path: pick a goal")
	case PathFound:
		lines = append(lines, fmt.Sprintf("path: %d cells, cost %.2f", s.PathCells, s.PathCost))
	case PathMissing:
		lines = append(lines, "path: unreachable")
	}
	return lines
}

// HelpLines lists the key bindings.
var HelpLines = []string{
	"Space new seed   R regenerate   P animate   N step",
	"B borders   H help   LMB start/goal   RMB clear   Q quit",
}
