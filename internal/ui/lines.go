// Package ui draws the side panel that accompanies the viewer.
package ui

import (
	"fmt"

	"aoc-ca/internal/core"
)

// MinPanelHeight keeps the help text visible beside a tiny grid.
const MinPanelHeight = 256

// Status is the viewer state shown under the sim's own readouts.
type Status struct {
	Paused bool
	TPS    int
}

// Lines returns the panel text for sim: its name, any stats it exposes and
// the run state.
func Lines(sim core.Sim, st Status) []string {
	lines := []string{sim.Name()}
	if p, ok := sim.(core.StatsProvider); ok {
		for _, s := range p.Stats() {
			lines = append(lines, fmt.Sprintf("%-9s %s", s.Label, s.Value))
		}
	}
	lines = append(lines, "")
	switch {
	case isSettled(sim):
		lines = append(lines, "settled")
	case st.Paused:
		lines = append(lines, "paused")
	default:
		lines = append(lines, fmt.Sprintf("running %d/s", st.TPS))
	}
	return lines
}

func isSettled(sim core.Sim) bool {
	s, ok := sim.(core.Settler)
	return ok && s.Stable()
}

// Help lists the viewer's key bindings.
var Help = []string{
	"space  pause",
	"n      step",
	"r      reset",
	"up/dn  speed",
	"q      quit",
}
