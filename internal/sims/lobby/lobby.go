// Package lobby flips hexagonal floor tiles between white and black.
//
// Tiles use doubled-width coordinates: east/west neighbours differ by two in X
// and the four diagonal neighbours differ by one in both X and Y, so every
// tile has integer coordinates.
package lobby

import (
	"fmt"
	"strings"

	"aoc-ca/internal/core"
)

// Tile identifies a hexagon by its doubled-width coordinates.
type Tile = core.PtInt

var directions = map[string]Tile{
	"e":  {X: 2, Y: 0},
	"se": {X: 1, Y: -1},
	"sw": {X: -1, Y: -1},
	"w":  {X: -2, Y: 0},
	"nw": {X: -1, Y: 1},
	"ne": {X: 1, Y: 1},
}

var hexNeighbors = []Tile{
	directions["e"], directions["se"], directions["sw"],
	directions["w"], directions["nw"], directions["ne"],
}

// Walk follows a run-together list of e, se, sw, w, nw and ne steps from the
// reference tile and returns the tile it ends on.
func Walk(path string) (Tile, error) {
	var t Tile
	for i := 0; i < len(path); {
		step := path[i : i+1]
		if step == "n" || step == "s" {
			if i+2 > len(path) {
				return t, fmt.Errorf("truncated direction at %d in %q", i, path)
			}
			step = path[i : i+2]
		}
		d, ok := directions[step]
		if !ok {
			return t, fmt.Errorf("invalid direction %q at %d", step, i)
		}
		t = t.Add(d)
		i += len(step)
	}
	return t, nil
}

// Floor is the set of black tiles; every other tile is white.
type Floor struct {
	black map[Tile]struct{}
	gen   int
}

// Parse flips the destination tile of every non-empty line in text.
func Parse(text string) (*Floor, error) {
	f := &Floor{black: map[Tile]struct{}{}}
	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		t, err := Walk(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n+1, err)
		}
		f.Flip(t)
	}
	return f, nil
}

// Flip toggles the colour of t.
func (f *Floor) Flip(t Tile) {
	if _, ok := f.black[t]; ok {
		delete(f.black, t)
		return
	}
	f.black[t] = struct{}{}
}

// IsBlack reports whether t is black side up.
func (f *Floor) IsBlack(t Tile) bool {
	_, ok := f.black[t]
	return ok
}

// Black returns the number of black tiles.
func (f *Floor) Black() int { return len(f.black) }

// Generation returns the number of days stepped.
func (f *Floor) Generation() int { return f.gen }

// Step applies one day of the art exhibit. A black tile with zero or more
// than two black neighbours turns white; a white tile with exactly two black
// neighbours turns black.
func (f *Floor) Step() {
	counts := make(map[Tile]int, len(f.black)*len(hexNeighbors))
	for t := range f.black {
		for _, d := range hexNeighbors {
			counts[t.Add(d)]++
		}
	}
	next := make(map[Tile]struct{}, len(f.black))
	for t, n := range counts {
		if n == 2 || (n == 1 && f.IsBlack(t)) {
			next[t] = struct{}{}
		}
	}
	f.black = next
	f.gen++
}

// Exhibit runs the given number of days and returns the black tile count.
func (f *Floor) Exhibit(days int) int {
	core.Run(f, core.After(days))
	return f.Black()
}
