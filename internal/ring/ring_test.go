package ring

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExample(t *testing.T, size int) *Ring {
	t.Helper()
	labels, err := ParseLabels("389125467")
	require.NoError(t, err)
	r, err := New(labels, size)
	require.NoError(t, err)
	return r
}

func checkConsistent(t *testing.T, r *Ring) {
	t.Helper()
	for l := 1; l <= r.Len(); l++ {
		require.Equal(t, l, r.Prev(r.Next(l)), "prev(next(%d))", l)
	}
	labels := r.Labels()
	require.Len(t, labels, r.Len())
	slices.Sort(labels)
	for i, l := range labels {
		require.Equal(t, i+1, l)
	}
}

func TestFirstMoves(t *testing.T) {
	r := newExample(t, 0)
	assert.Equal(t, "(3) 8 9 1 2 5 4 6 7", r.String())

	r.Advance()
	assert.Equal(t, []int{2, 8, 9, 1, 5, 4, 6, 7, 3}, r.Labels())
	assert.Equal(t, 2, r.Head())

	r.Advance()
	assert.Equal(t, []int{5, 4, 6, 7, 8, 9, 1, 3, 2}, r.Labels())
}

func TestExampleArrangement(t *testing.T) {
	r := newExample(t, 0)
	r.Move(10)
	assert.Equal(t, []int{9, 2, 6, 5, 8, 3, 7, 4}, r.After(1, 8))

	r = newExample(t, 0)
	r.Move(100)
	if diff := cmp.Diff([]int{6, 7, 3, 8, 4, 5, 2, 9}, r.After(1, 8)); diff != "" {
		t.Fatalf("arrangement after 100 moves (-want +got):\n%s", diff)
	}
	checkConsistent(t, r)
}

func TestMillionCups(t *testing.T) {
	if testing.Short() {
		t.Skip("ten million moves")
	}
	r := newExample(t, 1_000_000)
	r.Move(10_000_000)
	stars := r.After(1, 2)
	assert.Equal(t, []int{934001, 159792}, stars)
	assert.Equal(t, 149245887792, stars[0]*stars[1])
}

func TestMovesPreserveLabels(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for _, n := range []int{4, 5, 9, 30} {
		labels := rng.Perm(n)
		for i := range labels {
			labels[i]++
		}
		r, err := New(labels, 0)
		require.NoError(t, err)
		for i := 0; i < 200; i++ {
			r.Advance()
			checkConsistent(t, r)
		}
	}
}

func TestNewRejectsBadLabels(t *testing.T) {
	_, err := New([]int{1, 2, 2, 4}, 0)
	assert.Error(t, err)
	_, err = New([]int{1, 2, 5, 4}, 0)
	assert.Error(t, err)
	_, err = New([]int{1, 2, 3}, 0)
	assert.Error(t, err, "three cups cannot make a move")
	_, err = ParseLabels("3891x")
	assert.Error(t, err)
}
