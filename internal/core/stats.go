package core

import "image/color"

// Stat is a single labelled readout shown next to a running simulation.
type Stat struct {
	Label string
	Value string
}

// StatsProvider is implemented by sims that expose live counters.
type StatsProvider interface {
	Stats() []Stat
}

// PaletteProvider is implemented by sims whose cell values index a palette
// rather than an on/off state.
type PaletteProvider interface {
	Palette() []color.RGBA
}

// Settler is implemented by sims that can reach a state where further steps
// change nothing.
type Settler interface {
	Stable() bool
}
