package lobby

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadExample(t *testing.T) *Floor {
	t.Helper()
	data, err := os.ReadFile("testdata/example.txt")
	require.NoError(t, err)
	f, err := Parse(string(data))
	require.NoError(t, err)
	return f
}

func TestWalk(t *testing.T) {
	tile, err := Walk("esew")
	require.NoError(t, err)
	assert.Equal(t, Tile{X: 1, Y: -1}, tile)

	tile, err = Walk("nwwswee")
	require.NoError(t, err)
	assert.Equal(t, Tile{}, tile, "path loops back to the reference tile")

	_, err = Walk("en")
	assert.Error(t, err)
	_, err = Walk("ex")
	assert.Error(t, err)
}

func TestExampleLayout(t *testing.T) {
	f := loadExample(t)
	assert.Equal(t, 10, f.Black())
}

func TestExampleExhibit(t *testing.T) {
	f := loadExample(t)
	f.Step()
	assert.Equal(t, 15, f.Black())
	f.Step()
	assert.Equal(t, 12, f.Black())

	f = loadExample(t)
	assert.Equal(t, 37, f.Exhibit(10))
	assert.Equal(t, 2208, f.Exhibit(90))
	assert.Equal(t, 100, f.Generation())

	assert.Equal(t, 2208, f.Exhibit(0))
	assert.Equal(t, 100, f.Generation())
}

func TestFlipTwiceRestoresWhite(t *testing.T) {
	f, err := Parse("e\ne\n")
	require.NoError(t, err)
	assert.Zero(t, f.Black())
}
