package seating

import (
	"fmt"
	"strconv"

	"aoc-ca/internal/core"
)

// Cell states. Floor never changes.
const (
	Floor    uint8 = 0
	Empty    uint8 = 1
	Occupied uint8 = 2
)

// Rule pairs a neighbourhood with the crowding tolerance that makes an
// occupied seat empty.
type Rule struct {
	Name         string
	Neighborhood core.Neighborhood
	Tolerance    int
}

// Adjacent looks at the eight surrounding cells; four occupied neighbours
// clear a seat.
var Adjacent = Rule{Name: "adjacent", Neighborhood: core.Adjacent(core.Moore), Tolerance: 4}

// Sight looks at the first seat visible in each of the eight directions; five
// occupied neighbours clear a seat.
var Sight = Rule{Name: "sight", Neighborhood: core.LineOfSight(core.Moore, Floor), Tolerance: 5}

// RuleByName resolves "adjacent" or "sight".
func RuleByName(name string) (Rule, error) {
	switch name {
	case Adjacent.Name:
		return Adjacent, nil
	case Sight.Name:
		return Sight, nil
	}
	return Rule{}, fmt.Errorf("unknown seating rule %q", name)
}

// Parse reads a layout of '.', 'L' and '#' characters.
func Parse(text string) (*core.ByteGrid, error) {
	return core.ParseByteGrid(text, func(r rune) (uint8, error) {
		switch r {
		case '.':
			return Floor, nil
		case 'L':
			return Empty, nil
		case '#':
			return Occupied, nil
		}
		return 0, fmt.Errorf("invalid seat %q", r)
	})
}

// Format renders a grid back into the puzzle notation.
func Format(g *core.ByteGrid) string {
	return g.Format(func(v uint8) byte {
		switch v {
		case Empty:
			return 'L'
		case Occupied:
			return '#'
		}
		return '.'
	})
}

// Seating simulates passengers filling a waiting area.
type Seating struct {
	rule    Rule
	initial *core.ByteGrid
	cur     *core.ByteGrid
	nxt     *core.ByteGrid
	changed bool
	gen     int
}

// New creates a simulation starting from layout. The layout is copied.
func New(layout *core.ByteGrid, rule Rule) *Seating {
	s := &Seating{rule: rule, initial: layout.Clone()}
	s.Reset()
	return s
}

// Name returns the simulation identifier.
func (s *Seating) Name() string { return "seating-" + s.rule.Name }

// Size returns the grid dimensions.
func (s *Seating) Size() core.Size { return core.Size{W: s.cur.W, H: s.cur.H} }

// Cells exposes the current grid values.
func (s *Seating) Cells() []uint8 { return s.cur.Cells() }

// Grid returns the current grid.
func (s *Seating) Grid() *core.ByteGrid { return s.cur }

// Reset restores the starting layout.
func (s *Seating) Reset() {
	s.cur = s.initial.Clone()
	s.nxt = s.initial.Clone()
	s.changed = true
	s.gen = 0
}

// Step advances the simulation by one round. Every seat is decided from the
// previous round's grid.
func (s *Seating) Step() {
	cur, nxt := s.cur, s.nxt
	cells, out := cur.Cells(), nxt.Cells()
	changed := false
	for y := 0; y < cur.H; y++ {
		for x := 0; x < cur.W; x++ {
			idx := cur.Index(x, y)
			state := cells[idx]
			out[idx] = state
			if state == Floor {
				continue
			}
			n := core.CountNeighbors(cur, s.rule.Neighborhood, x, y, Occupied)
			switch {
			case state == Empty && n == 0:
				out[idx] = Occupied
				changed = true
			case state == Occupied && n >= s.rule.Tolerance:
				out[idx] = Empty
				changed = true
			}
		}
	}
	s.cur, s.nxt = nxt, cur
	s.changed = changed
	s.gen++
}

// Stable reports whether the last round changed nothing.
func (s *Seating) Stable() bool { return !s.changed }

// Generation returns the number of rounds stepped since Reset.
func (s *Seating) Generation() int { return s.gen }

// Occupied counts occupied seats.
func (s *Seating) Occupied() int { return s.cur.Count(Occupied) }

// Settle steps until no seat changes and returns the occupied count.
func (s *Seating) Settle() int {
	core.Run(s, core.Until(s.Stable))
	return s.Occupied()
}

// Stats reports live counters for the viewer.
func (s *Seating) Stats() []core.Stat {
	return []core.Stat{
		{Label: "round", Value: strconv.Itoa(s.gen)},
		{Label: "occupied", Value: strconv.Itoa(s.Occupied())},
		{Label: "stable", Value: strconv.FormatBool(s.Stable())},
	}
}

func init() {
	core.Register("seating", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		rule, err := RuleByName(c.Rule)
		if err != nil {
			return nil, err
		}
		layout, err := Parse(c.Layout)
		if err != nil {
			return nil, err
		}
		return New(layout, rule), nil
	})
}
