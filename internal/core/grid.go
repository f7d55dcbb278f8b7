package core

import (
	"bytes"
	"fmt"
	"strings"
)

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// ParseByteGrid builds a grid from newline separated rows. Every row must have
// the same width; decode maps each character to a cell value.
func ParseByteGrid(text string, decode func(r rune) (uint8, error)) (*ByteGrid, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, fmt.Errorf("empty grid")
	}
	w := len(lines[0])
	g := NewByteGrid(w, len(lines))
	for y, line := range lines {
		line = strings.TrimRight(line, "\r")
		if len(line) != w {
			return nil, fmt.Errorf("row %d has width %d, want %d", y, len(line), w)
		}
		for x, r := range line {
			v, err := decode(r)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", y, x, err)
			}
			g.data[g.Index(x, y)] = v
		}
	}
	return g, nil
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// In reports whether (x, y) lies on the grid.
func (g *ByteGrid) In(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the cell at (x, y), or def when the coordinates are off-grid.
func (g *ByteGrid) At(x, y int, def uint8) uint8 {
	if !g.In(x, y) {
		return def
	}
	return g.data[y*g.W+x]
}

// Clone returns an independent copy of the grid.
func (g *ByteGrid) Clone() *ByteGrid {
	c := &ByteGrid{W: g.W, H: g.H, data: make([]uint8, len(g.data))}
	copy(c.data, g.data)
	return c
}

// Equal reports whether both grids have the same shape and contents.
func (g *ByteGrid) Equal(o *ByteGrid) bool {
	return g.W == o.W && g.H == o.H && bytes.Equal(g.data, o.data)
}

// Count returns how many cells hold v.
func (g *ByteGrid) Count(v uint8) int {
	n := 0
	for _, c := range g.data {
		if c == v {
			n++
		}
	}
	return n
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Format renders the grid row by row using encode for each cell.
func (g *ByteGrid) Format(encode func(v uint8) byte) string {
	var b strings.Builder
	b.Grow((g.W + 1) * g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			b.WriteByte(encode(g.data[y*g.W+x]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
