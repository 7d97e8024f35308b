package render

import "image/color"

// Palette indices written by Compose.
const (
	IndexFloor uint8 = iota
	IndexWall
	IndexBorder
	IndexPath
	IndexStart
	IndexGoal
)

// CavePalette maps Compose indices to colors.
var CavePalette = []color.RGBA{
	IndexFloor:  {R: 196, G: 178, B: 142, A: 255},
	IndexWall:   {R: 38, G: 34, B: 40, A: 255},
	IndexBorder: {R: 168, G: 150, B: 118, A: 255},
	IndexPath:   {R: 222, G: 84, B: 58, A: 255},
	IndexStart:  {R: 66, G: 186, B: 96, A: 255},
	IndexGoal:   {R: 70, G: 120, B: 222, A: 255},
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette.
// Values past the end of the palette use its last color. When the palette is
// empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
