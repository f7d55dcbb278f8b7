package cubes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const glider = ".#.\n..#\n###\n"

func TestBoot3D(t *testing.T) {
	s, err := Parse(glider, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, s.Active())

	s.Step()
	assert.Equal(t, 11, s.Active())
	lo, hi := s.Bounds()
	assert.Equal(t, Point{0, 1, -1, 0}, lo)
	assert.Equal(t, Point{2, 3, 1, 0}, hi)

	s, err = Parse(glider, 3)
	require.NoError(t, err)
	assert.Equal(t, 112, s.Boot())
	assert.Equal(t, 6, s.Generation())
}

func TestBoot4D(t *testing.T) {
	s, err := Parse(glider, 4)
	require.NoError(t, err)
	assert.Equal(t, 848, s.Boot())
}

func TestNeighborOffsets(t *testing.T) {
	assert.Len(t, neighborOffsets(2), 8)
	assert.Len(t, neighborOffsets(3), 26)
	assert.Len(t, neighborOffsets(4), 80)
	for _, o := range neighborOffsets(3) {
		assert.Zero(t, o[3], "unused dimensions stay zero")
	}
}

func TestBoundsTrackShrinkingRegion(t *testing.T) {
	// A lone cube dies and leaves an empty space.
	s := New(3, []Point{{5, 5, 5}})
	s.Step()
	assert.Zero(t, s.Active())
	lo, hi := s.Bounds()
	assert.Equal(t, Point{}, lo)
	assert.Equal(t, Point{}, hi)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse(glider, 5)
	assert.Error(t, err)
	_, err = Parse(".x.\n", 3)
	assert.Error(t, err)
}
