// Package cubes runs Conway's rules over an unbounded sparse lattice of up to
// MaxDims dimensions.
package cubes

import (
	"fmt"
	"strings"

	"aoc-ca/internal/core"
)

// MaxDims is the largest supported dimensionality.
const MaxDims = 4

// Point is a lattice coordinate. Components at index >= the space's
// dimensionality are always zero.
type Point [MaxDims]int

// Space holds the set of active cubes and their bounding box.
type Space struct {
	dims    int
	active  map[Point]struct{}
	offsets []Point
	min     Point
	max     Point
	gen     int
}

// Parse reads a 2D starting slice of '#' (active) and '.' (inactive) cells
// and embeds it at the origin of a dims-dimensional space.
func Parse(text string, dims int) (*Space, error) {
	if dims < 2 || dims > MaxDims {
		return nil, fmt.Errorf("unsupported dimensionality %d", dims)
	}
	var active []Point
	for y, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		for x, r := range strings.TrimSpace(line) {
			switch r {
			case '#':
				var p Point
				p[0], p[1] = x, y
				active = append(active, p)
			case '.':
			default:
				return nil, fmt.Errorf("invalid cube %q at row %d col %d", r, y, x)
			}
		}
	}
	return New(dims, active), nil
}

// New builds a space with the given active points.
func New(dims int, active []Point) *Space {
	s := &Space{
		dims:    dims,
		active:  make(map[Point]struct{}, len(active)),
		offsets: neighborOffsets(dims),
	}
	for _, p := range active {
		s.active[p] = struct{}{}
	}
	s.updateBounds()
	return s
}

func neighborOffsets(dims int) []Point {
	offsets := []Point{{}}
	for d := 0; d < dims; d++ {
		next := make([]Point, 0, len(offsets)*3)
		for _, o := range offsets {
			for _, delta := range [...]int{-1, 0, 1} {
				o[d] = delta
				next = append(next, o)
			}
		}
		offsets = next
	}
	out := offsets[:0]
	for _, o := range offsets {
		if o != (Point{}) {
			out = append(out, o)
		}
	}
	return out
}

// Step applies one cycle. Only cells within one unit of an active cube can
// change, so neighbour counts are accumulated outward from the active set.
func (s *Space) Step() {
	counts := make(map[Point]int, len(s.active)*len(s.offsets))
	for p := range s.active {
		for _, o := range s.offsets {
			var q Point
			for d := 0; d < s.dims; d++ {
				q[d] = p[d] + o[d]
			}
			counts[q]++
		}
	}
	next := make(map[Point]struct{}, len(s.active))
	for q, n := range counts {
		_, on := s.active[q]
		if n == 3 || (on && n == 2) {
			next[q] = struct{}{}
		}
	}
	s.active = next
	s.updateBounds()
	s.gen++
}

func (s *Space) updateBounds() {
	s.min, s.max = Point{}, Point{}
	first := true
	for p := range s.active {
		if first {
			s.min, s.max = p, p
			first = false
			continue
		}
		for d := 0; d < s.dims; d++ {
			s.min[d] = min(s.min[d], p[d])
			s.max[d] = max(s.max[d], p[d])
		}
	}
}

// Active returns the number of active cubes.
func (s *Space) Active() int { return len(s.active) }

// IsActive reports whether p is active.
func (s *Space) IsActive(p Point) bool {
	_, ok := s.active[p]
	return ok
}

// Bounds returns the inclusive bounding box of the active cubes.
func (s *Space) Bounds() (lo, hi Point) { return s.min, s.max }

// Dims returns the dimensionality.
func (s *Space) Dims() int { return s.dims }

// Generation returns the number of cycles run.
func (s *Space) Generation() int { return s.gen }

// Boot runs the six-cycle boot process and returns the active count.
func (s *Space) Boot() int {
	core.Run(s, core.After(6))
	return s.Active()
}
