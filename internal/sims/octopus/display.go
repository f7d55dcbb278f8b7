package octopus

import "image/color"

var cavernPalette = buildCavernPalette()

// Palette maps energy levels to display colors. A level of zero means the
// octopus flashed this step and is drawn brightest.
func (c *Cavern) Palette() []color.RGBA {
	return cavernPalette
}

func buildCavernPalette() []color.RGBA {
	palette := make([]color.RGBA, Threshold+1)
	palette[0] = color.RGBA{R: 255, G: 250, B: 220, A: 255}
	for i := 1; i <= Threshold; i++ {
		t := float64(i) / Threshold
		palette[i] = color.RGBA{
			R: uint8(10 + 40*t),
			G: uint8(20 + 90*t),
			B: uint8(50 + 150*t),
			A: 255,
		}
	}
	return palette
}
