package seating

import "image/color"

var seatingPalette = []color.RGBA{
	Floor:    {R: 24, G: 22, B: 20, A: 255},
	Empty:    {R: 70, G: 120, B: 90, A: 255},
	Occupied: {R: 230, G: 150, B: 60, A: 255},
}

// Palette maps cell states to display colors.
func (s *Seating) Palette() []color.RGBA {
	return seatingPalette
}
