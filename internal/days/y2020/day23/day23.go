package day23

import (
	"strconv"
	"strings"

	"aoc-ca/internal/puzzle"
	"aoc-ca/internal/ring"
)

func newRing(input string, size int) (*ring.Ring, error) {
	labels, err := ring.ParseLabels(input)
	if err != nil {
		return nil, err
	}
	return ring.New(labels, size)
}

func part1(input string) (any, error) {
	r, err := newRing(input, 0)
	if err != nil {
		return nil, err
	}
	r.Move(100)
	var b strings.Builder
	for _, l := range r.After(1, r.Len()-1) {
		b.WriteString(strconv.Itoa(l))
	}
	return b.String(), nil
}

func part2(input string) (any, error) {
	r, err := newRing(input, 1_000_000)
	if err != nil {
		return nil, err
	}
	r.Move(10_000_000)
	stars := r.After(1, 2)
	return stars[0] * stars[1], nil
}

func init() {
	puzzle.Register(puzzle.Day{
		Year:  2020,
		Day:   23,
		Title: "Crab Cups",
		Parts: [2]puzzle.Part{
			{Solve: part1, Format: "Cups after 1 = %v", Cases: []puzzle.Case{{Input: "389125467", Want: "67384529"}}},
			{Solve: part2, Format: "Multiplied labels of two cups after 1 = %v", Cases: []puzzle.Case{{Input: "389125467", Want: "149245887792", Slow: true}}},
		},
	})
}
