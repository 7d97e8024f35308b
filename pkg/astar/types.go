// Package astar finds shortest paths on occupancy grids with 8-directional
// movement.
//
// Edge costs are the Euclidean step length (1 or √2), multiplied by a border
// penalty when the step leaves a cell that touches a wall, so paths prefer
// open space over hugging walls. A diagonal move is refused only when both
// orthogonal cells it squeezes between are unwalkable.
//
// The open set is a binary heap ordered by f, then h, then insertion order.
// Updated nodes are pushed again and stale heap entries are skipped on pop.
//
// Complexity:
//
//   - Time:  O(N log N) for N = W·H cells.
//   - Space: O(N) for the node arena, plus heap entries under lazy updates.
package astar

import (
	"errors"
	"fmt"

	"mad-caves/pkg/core"
)

// DefaultBorderPenalty multiplies the cost of steps leaving a border cell.
const DefaultBorderPenalty = 1.5

// ErrInvalidInput is matched by every input validation error.
var ErrInvalidInput = errors.New("astar: invalid input")

var (
	// ErrNilGrid indicates a nil walkability source.
	ErrNilGrid = fmt.Errorf("%w: grid is nil", ErrInvalidInput)

	// ErrOutOfBounds indicates a start or goal cell outside the grid.
	ErrOutOfBounds = fmt.Errorf("%w: cell out of bounds", ErrInvalidInput)

	// ErrNotWalkable indicates a start or goal cell that is a wall.
	ErrNotWalkable = fmt.Errorf("%w: cell is not walkable", ErrInvalidInput)
)

// Walkability is the read-only view a search needs. *core.Grid satisfies it.
type Walkability interface {
	Size() core.Size
	InBounds(c core.Cell) bool
	Walkable(c core.Cell) bool
}

// Options configures a search.
type Options struct {
	// BorderPenalty multiplies the cost of any step whose source cell has an
	// unwalkable in-bounds neighbor. Must be positive.
	BorderPenalty float64
}

// DefaultOptions returns Options with the default border penalty.
func DefaultOptions() Options {
	return Options{BorderPenalty: DefaultBorderPenalty}
}

// Option mutates Options.
type Option func(*Options)

// WithBorderPenalty sets the border penalty. Non-positive values keep the
// default. Use 1 to disable the penalty.
func WithBorderPenalty(p float64) Option {
	return func(o *Options) {
		if p > 0 {
			o.BorderPenalty = p
		}
	}
}

// Result is the outcome of a search. Found is false when the goal cannot be
// reached; that is not an error.
type Result struct {
	Path  []core.Cell
	Cost  float64
	Found bool
}

// Len returns the number of cells on the path.
func (r Result) Len() int { return len(r.Path) }
