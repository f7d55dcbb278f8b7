// Package render turns simulation cells into RGBA pixels for the viewer.
package render

import "image/color"

// Fill writes one RGBA pixel per cell into buf, which must hold 4*len(cells)
// bytes. With a palette, cell values index it; values past the end use the
// last entry. Without one, non-zero cells are drawn in on and zero cells in
// off.
func Fill(buf []byte, cells []uint8, palette []color.RGBA, on, off color.Color) {
	if len(palette) > 0 {
		fillPaletteRGBA(buf, cells, palette)
		return
	}
	fillBinaryRGBA(buf, cells, on, off)
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	last := len(palette) - 1
	for i, c := range cells {
		col := palette[min(int(c), last)]
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
