package octopus

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"

	"aoc-ca/internal/core"
)

//go:embed example.txt
var exampleGrid string

// Threshold is the highest energy level a cell can hold without flashing.
const Threshold = 9

// Parse reads a rectangular grid of decimal energy levels.
func Parse(text string) (*core.ByteGrid, error) {
	return core.ParseByteGrid(text, func(r rune) (uint8, error) {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("invalid energy level %q", r)
		}
		return uint8(r - '0'), nil
	})
}

// Format renders the energy grid as digits.
func Format(g *core.ByteGrid) string {
	return g.Format(func(v uint8) byte { return '0' + v })
}

// Cavern simulates a grid of flashing octopuses.
type Cavern struct {
	initial *core.ByteGrid
	cur     *core.ByteGrid
	nxt     *core.ByteGrid
	flashed []bool

	gen       int
	total     int
	lastFlash int
}

// New creates a simulation starting from grid. The grid is copied.
func New(grid *core.ByteGrid) *Cavern {
	c := &Cavern{initial: grid.Clone()}
	c.Reset()
	return c
}

// Name returns the simulation identifier.
func (c *Cavern) Name() string { return "octopus" }

// Size returns the grid dimensions.
func (c *Cavern) Size() core.Size { return core.Size{W: c.cur.W, H: c.cur.H} }

// Cells exposes the current energy levels.
func (c *Cavern) Cells() []uint8 { return c.cur.Cells() }

// Grid returns the current grid.
func (c *Cavern) Grid() *core.ByteGrid { return c.cur }

// Reset restores the starting energy levels and clears the counters.
func (c *Cavern) Reset() {
	c.cur = c.initial.Clone()
	c.nxt = c.initial.Clone()
	c.flashed = make([]bool, len(c.cur.Cells()))
	c.gen = 0
	c.total = 0
	c.lastFlash = 0
}

// Step raises every level by one and then resolves flashes until no new cell
// crosses the threshold. A cell flashes at most once per step and ends the
// step at zero.
func (c *Cavern) Step() {
	g := c.nxt
	out := g.Cells()
	for i, v := range c.cur.Cells() {
		out[i] = v + 1
		c.flashed[i] = false
	}

	flashes := 0
	for {
		fired := false
		for y := 0; y < g.H; y++ {
			for x := 0; x < g.W; x++ {
				idx := g.Index(x, y)
				if c.flashed[idx] || out[idx] <= Threshold {
					continue
				}
				c.flashed[idx] = true
				fired = true
				flashes++
				for _, d := range core.Moore {
					nx, ny := x+d.X, y+d.Y
					if g.In(nx, ny) {
						out[g.Index(nx, ny)]++
					}
				}
			}
		}
		if !fired {
			break
		}
	}

	for i, f := range c.flashed {
		if f {
			out[i] = 0
		}
	}

	c.cur, c.nxt = c.nxt, c.cur
	c.gen++
	c.lastFlash = flashes
	c.total += flashes
}

// Generation returns the number of steps since Reset.
func (c *Cavern) Generation() int { return c.gen }

// Flashes returns the total flash count since Reset.
func (c *Cavern) Flashes() int { return c.total }

// LastFlashes returns how many cells flashed during the latest step.
func (c *Cavern) LastFlashes() int { return c.lastFlash }

// Synchronized reports whether every cell flashed during the latest step.
func (c *Cavern) Synchronized() bool {
	return c.gen > 0 && c.lastFlash == len(c.cur.Cells())
}

// FlashesAfter steps n times and returns the total flash count.
func (c *Cavern) FlashesAfter(n int) int {
	core.Run(c, core.After(n))
	return c.total
}

// FirstSynchronized steps until all cells flash together and returns that
// step number, or -1 if limit steps pass first. If the latest step already
// flashed every cell its number is returned without stepping.
func (c *Cavern) FirstSynchronized(limit int) int {
	core.Run(c, core.Either(core.Until(c.Synchronized), core.After(limit)))
	if !c.Synchronized() {
		return -1
	}
	return c.gen
}

// Stats reports live counters for the viewer.
func (c *Cavern) Stats() []core.Stat {
	return []core.Stat{
		{Label: "step", Value: strconv.Itoa(c.gen)},
		{Label: "flashes", Value: strconv.Itoa(c.total)},
		{Label: "last", Value: strconv.Itoa(c.lastFlash)},
	}
}

func init() {
	core.Register("octopus", func(cfg map[string]string) (core.Sim, error) {
		text := exampleGrid
		if path := cfg["input"]; path != "" {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("reading octopus grid: %w", err)
			}
			text = string(data)
		}
		g, err := Parse(text)
		if err != nil {
			return nil, err
		}
		return New(g), nil
	})
}
