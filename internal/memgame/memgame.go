// Package memgame plays the elves' memory game: after the starting numbers,
// each turn speaks how many turns apart the previous number's two most recent
// utterances were, or zero if it was new.
package memgame

import (
	"fmt"
	"strconv"
	"strings"
)

// Game holds the number spoken on the latest turn and, for every number, the
// turn it was spoken before that. Numbers index the table directly; a spoken
// value is always smaller than the turn count, so the table only grows with
// the number of turns played.
type Game struct {
	start []int
	turn  int
	last  int
	// spoken[n] is the turn number n was last spoken on, excluding the
	// current turn. Zero means never.
	spoken []uint32
}

// Parse reads comma separated starting numbers.
func Parse(s string) ([]int, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	nums := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("starting number: %w", err)
		}
		nums = append(nums, n)
	}
	return nums, nil
}

// New speaks the starting numbers on turns 1..len(start). Starting numbers
// must be distinct and non-negative.
func New(start []int) (*Game, error) {
	if len(start) == 0 {
		return nil, fmt.Errorf("no starting numbers")
	}
	g := &Game{start: append([]int(nil), start...)}
	for _, n := range start {
		if n < 0 {
			return nil, fmt.Errorf("negative starting number %d", n)
		}
		g.grow(n + 1)
		if g.spoken[n] != 0 || (g.turn > 0 && g.last == n) {
			return nil, fmt.Errorf("duplicate starting number %d", n)
		}
		if g.turn > 0 {
			g.spoken[g.last] = uint32(g.turn)
		}
		g.turn++
		g.last = n
	}
	return g, nil
}

func (g *Game) grow(n int) {
	if n <= len(g.spoken) {
		return
	}
	if n <= cap(g.spoken) {
		g.spoken = g.spoken[:n]
		return
	}
	next := make([]uint32, n, max(n, 2*cap(g.spoken)))
	copy(next, g.spoken)
	g.spoken = next
}

// Step plays one turn.
func (g *Game) Step() {
	next := 0
	if prev := g.spoken[g.last]; prev != 0 {
		next = g.turn - int(prev)
	}
	g.spoken[g.last] = uint32(g.turn)
	g.grow(next + 1)
	g.turn++
	g.last = next
}

// Turn returns the number of turns completed.
func (g *Game) Turn() int { return g.turn }

// Last returns the number spoken on the latest turn.
func (g *Game) Last() int { return g.last }

// Play advances to the given turn and returns the number spoken on it.
// Starting turns can always be asked for; other turns already behind the
// game are not kept and return an error.
func (g *Game) Play(turn int) (int, error) {
	switch {
	case turn < 1:
		return 0, fmt.Errorf("turn %d out of range", turn)
	case turn <= len(g.start):
		return g.start[turn-1], nil
	case turn < g.turn:
		return 0, fmt.Errorf("turn %d already played, game is at turn %d", turn, g.turn)
	}
	g.grow(turn)
	for g.turn < turn {
		g.Step()
	}
	return g.last, nil
}
