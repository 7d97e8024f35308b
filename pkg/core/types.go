package core

// Size describes the dimensions of a grid.
type Size struct {
	W int
	H int
}

// Sim is the stepping contract the preview window drives. A cave build is
// reset from a seed and advanced one stage at a time.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}
