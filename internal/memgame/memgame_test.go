package memgame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGame(t *testing.T, start string) *Game {
	t.Helper()
	nums, err := Parse(start)
	require.NoError(t, err)
	g, err := New(nums)
	require.NoError(t, err)
	return g
}

func TestFirstTurns(t *testing.T) {
	g := newGame(t, "0,3,6")
	var got []int
	for g.Turn() < 10 {
		g.Step()
		got = append(got, g.Last())
	}
	assert.Equal(t, []int{0, 3, 3, 1, 0, 4, 0}, got)
}

func TestTurn2020(t *testing.T) {
	cases := map[string]int{
		"0,3,6": 436,
		"1,3,2": 1,
		"2,1,3": 10,
		"1,2,3": 27,
		"2,3,1": 78,
		"3,2,1": 438,
		"3,1,2": 1836,
	}
	for start, want := range cases {
		t.Run(start, func(t *testing.T) {
			got, err := newGame(t, start).Play(2020)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestTurn30M(t *testing.T) {
	if testing.Short() {
		t.Skip("thirty million turns")
	}
	got, err := newGame(t, "0,3,6").Play(30_000_000)
	require.NoError(t, err)
	assert.Equal(t, 175594, got)
}

func TestPlayStartingTurns(t *testing.T) {
	g := newGame(t, "0,3,6")
	for turn, want := range []int{0, 3, 6} {
		got, err := g.Play(turn + 1)
		require.NoError(t, err)
		assert.Equal(t, want, got, "turn %d", turn+1)
	}
	assert.Equal(t, 3, g.Turn())

	got, err := g.Play(10)
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	got, err = g.Play(2)
	require.NoError(t, err)
	assert.Equal(t, 3, got, "starting numbers stay answerable")

	got, err = g.Play(10)
	require.NoError(t, err)
	assert.Equal(t, 0, got, "current turn")
}

func TestPlayRejectsPastTurns(t *testing.T) {
	g := newGame(t, "0,3,6")
	_, err := g.Play(9)
	require.NoError(t, err)

	_, err = g.Play(5)
	assert.ErrorContains(t, err, "already played")
	assert.Equal(t, 9, g.Turn())

	_, err = g.Play(0)
	assert.Error(t, err)
}

func TestNewRejectsBadStarts(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
	_, err = New([]int{1, 2, 1})
	assert.Error(t, err)
	_, err = New([]int{4, 4})
	assert.Error(t, err)
	_, err = New([]int{-1})
	assert.Error(t, err)
	_, err = Parse("1,x")
	assert.Error(t, err)
}
