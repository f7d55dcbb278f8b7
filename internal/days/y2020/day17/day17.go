package day17

import (
	"aoc-ca/internal/puzzle"
	"aoc-ca/internal/sims/cubes"
)

func boot(input string, dims int) (any, error) {
	s, err := cubes.Parse(input, dims)
	if err != nil {
		return nil, err
	}
	return s.Boot(), nil
}

func part1(input string) (any, error) { return boot(input, 3) }

func part2(input string) (any, error) { return boot(input, 4) }

const example = `.#.
..#
###
`

func init() {
	puzzle.Register(puzzle.Day{
		Year:  2020,
		Day:   17,
		Title: "Conway Cubes",
		Parts: [2]puzzle.Part{
			{Solve: part1, Format: "%v cubes are active after boot", Cases: []puzzle.Case{{Input: example, Want: "112"}}},
			{Solve: part2, Format: "%v hypercubes are active after boot", Cases: []puzzle.Case{{Input: example, Want: "848"}}},
		},
	})
}
