package day11

import (
	"aoc-ca/internal/puzzle"
	"aoc-ca/internal/sims/seating"
)

func settle(input string, rule seating.Rule) (any, error) {
	layout, err := seating.Parse(input)
	if err != nil {
		return nil, err
	}
	return seating.New(layout, rule).Settle(), nil
}

func part1(input string) (any, error) { return settle(input, seating.Adjacent) }

func part2(input string) (any, error) { return settle(input, seating.Sight) }

const example = `L.LL.LL.LL
LLLLLLL.LL
L.L.L..L..
LLLL.LL.LL
L.LL.LL.LL
L.LLLLL.LL
..L.L.....
LLLLLLLLLL
L.LLLLLL.L
L.LLLLL.LL
`

func init() {
	puzzle.Register(puzzle.Day{
		Year:  2020,
		Day:   11,
		Title: "Seating System",
		Parts: [2]puzzle.Part{
			{Solve: part1, Format: "In the end, %v seats are occupied", Cases: []puzzle.Case{{Input: example, Want: "37"}}},
			{Solve: part2, Format: "In the end, %v seats are occupied", Cases: []puzzle.Case{{Input: example, Want: "26"}}},
		},
	})
}
