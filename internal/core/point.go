package core

import "golang.org/x/exp/constraints"

// Pt2 is a point on an integer lattice.
type Pt2[T constraints.Signed] struct {
	X, Y T
}

// PtInt is the common int-valued point.
type PtInt = Pt2[int]

// Add returns p translated by d.
func (p Pt2[T]) Add(d Pt2[T]) Pt2[T] {
	return Pt2[T]{X: p.X + d.X, Y: p.Y + d.Y}
}

// Moore lists the eight directions of the Moore neighbourhood in row-major
// order.
var Moore = []PtInt{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}
