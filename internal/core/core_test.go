package core

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeDots(r rune) (uint8, error) {
	switch r {
	case '.':
		return 0, nil
	case '#':
		return 1, nil
	case 'L':
		return 2, nil
	}
	return 0, fmt.Errorf("bad cell %q", r)
}

func TestParseByteGrid(t *testing.T) {
	g, err := ParseByteGrid(".#.\n..#\n###\n", decodeDots)
	require.NoError(t, err)
	assert.Equal(t, 3, g.W)
	assert.Equal(t, 3, g.H)
	assert.Equal(t, []uint8{0, 1, 0, 0, 0, 1, 1, 1, 1}, g.Cells())
	assert.Equal(t, 5, g.Count(1))

	_, err = ParseByteGrid(".#.\n..\n", decodeDots)
	assert.Error(t, err, "ragged rows must be rejected")

	_, err = ParseByteGrid("x", decodeDots)
	assert.Error(t, err)

	_, err = ParseByteGrid("", decodeDots)
	assert.Error(t, err)
}

func TestByteGridAtDefaultsOffGrid(t *testing.T) {
	g := NewByteGrid(2, 2)
	g.Cells()[g.Index(1, 1)] = 7
	assert.Equal(t, uint8(7), g.At(1, 1, 9))
	assert.Equal(t, uint8(9), g.At(-1, 0, 9))
	assert.Equal(t, uint8(9), g.At(2, 0, 9))

	c := g.Clone()
	require.True(t, c.Equal(g))
	c.Cells()[0] = 1
	assert.False(t, c.Equal(g), "clone must not alias the original")
}

func TestNeighborhoodPolicies(t *testing.T) {
	// The middle seat sees the occupied corner across the floor on its
	// up-left diagonal, but has no occupied cell directly adjacent.
	g, err := ParseByteGrid("#....\n.....\n..L..\n.....\n....L\n", decodeDots)
	require.NoError(t, err)

	adj := Adjacent(Moore)
	sight := LineOfSight(Moore, 0)

	assert.Equal(t, 0, CountNeighbors(g, adj, 2, 2, 1))
	assert.Equal(t, 1, CountNeighbors(g, sight, 2, 2, 1))
	assert.Equal(t, 1, CountNeighbors(g, sight, 2, 2, 2), "empty seat on the down-right diagonal")

	// Corner cells only have three in-grid adjacent neighbours.
	visited := 0
	adj(g, 0, 0, func(uint8) { visited++ })
	assert.Equal(t, 3, visited)
}

type counter struct{ n int }

func (c *counter) Step() { c.n++ }

func TestRunTerminationPolicies(t *testing.T) {
	c := &counter{}
	assert.Equal(t, 10, Run(c, After(10)))
	assert.Equal(t, 10, c.n)

	c = &counter{}
	gens := Run(c, Until(func() bool { return c.n == 4 }))
	assert.Equal(t, 4, gens)

	c = &counter{}
	gens = Run(c, Either(After(3), Until(func() bool { return c.n == 100 })))
	assert.Equal(t, 3, gens)

	c = &counter{}
	assert.Equal(t, 0, Run(c, After(0)))
	assert.Equal(t, 0, c.n)
	assert.Equal(t, 0, Run(c, After(-3)))

	c = &counter{}
	assert.Equal(t, 0, Run(c, Until(func() bool { return true })))
	assert.Equal(t, 0, c.n)
}

func TestFixedStepAccumulates(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := newFixedStep(10, func() time.Time { return clock })
	assert.Equal(t, 10, fs.TPS())

	assert.True(t, fs.ShouldStep(), "first call steps immediately")
	assert.False(t, fs.ShouldStep())

	clock = clock.Add(50 * time.Millisecond)
	assert.False(t, fs.ShouldStep())
	clock = clock.Add(60 * time.Millisecond)
	assert.True(t, fs.ShouldStep())

	fs.SetTPS(0)
	assert.Equal(t, 60, fs.TPS())
}

func TestRegistry(t *testing.T) {
	Register("", nil)
	_, err := NewSim("does-not-exist", nil)
	assert.Error(t, err)
}
