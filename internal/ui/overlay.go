//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const overlayLineHeight = 16

// Overlay prints the status block and key help over the map.
type Overlay struct {
	showHelp bool
	status   Status
}

// NewOverlay constructs an overlay with help visible.
func NewOverlay() *Overlay { return &Overlay{showHelp: true} }

// Update toggles help on H and records the status to print.
func (o *Overlay) Update(status Status) {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHelp = !o.showHelp
	}
	o.status = status
}

// Draw renders the overlay onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	lines := o.status.Lines()
	if o.showHelp {
		lines = append(lines, HelpLines...)
	}
	width := 0
	for _, l := range lines {
		if n := len(l); n > width {
			width = n
		}
	}
	// The debug font is 6px wide.
	vector.DrawFilledRect(screen, 2, 2, float32(width*6+8), float32(len(lines)*overlayLineHeight+4), color.RGBA{A: 150}, false)
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, 6, 2+i*overlayLineHeight)
	}
}
