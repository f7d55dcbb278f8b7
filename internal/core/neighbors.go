package core

// Neighborhood visits the neighbour values of the cell at (x, y). Off-grid
// neighbours are never visited.
type Neighborhood func(g *ByteGrid, x, y int, visit func(v uint8))

// Adjacent returns a Neighborhood over the immediate cells in dirs.
func Adjacent(dirs []PtInt) Neighborhood {
	return func(g *ByteGrid, x, y int, visit func(v uint8)) {
		for _, d := range dirs {
			nx, ny := x+d.X, y+d.Y
			if g.In(nx, ny) {
				visit(g.data[ny*g.W+nx])
			}
		}
	}
}

// LineOfSight returns a Neighborhood that walks outward along each direction,
// skipping cells equal to empty, and visits the first other cell it meets. A
// ray that leaves the grid contributes nothing.
func LineOfSight(dirs []PtInt, empty uint8) Neighborhood {
	return func(g *ByteGrid, x, y int, visit func(v uint8)) {
		for _, d := range dirs {
			nx, ny := x+d.X, y+d.Y
			for g.In(nx, ny) {
				if v := g.data[ny*g.W+nx]; v != empty {
					visit(v)
					break
				}
				nx += d.X
				ny += d.Y
			}
		}
	}
}

// CountNeighbors returns how many neighbours of (x, y) under n hold match.
func CountNeighbors(g *ByteGrid, n Neighborhood, x, y int, match uint8) int {
	count := 0
	n(g, x, y, func(v uint8) {
		if v == match {
			count++
		}
	})
	return count
}
