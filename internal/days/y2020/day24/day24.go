package day24

import (
	_ "embed"

	"aoc-ca/internal/puzzle"
	"aoc-ca/internal/sims/lobby"
)

//go:embed example.txt
var example string

func part1(input string) (any, error) {
	f, err := lobby.Parse(input)
	if err != nil {
		return nil, err
	}
	return f.Black(), nil
}

func part2(input string) (any, error) {
	f, err := lobby.Parse(input)
	if err != nil {
		return nil, err
	}
	return f.Exhibit(100), nil
}

func init() {
	puzzle.Register(puzzle.Day{
		Year:  2020,
		Day:   24,
		Title: "Lobby Layout",
		Parts: [2]puzzle.Part{
			{Solve: part1, Format: "%v tiles are black", Cases: []puzzle.Case{{Input: example, Want: "10"}}},
			{Solve: part2, Format: "%v tiles are black", Cases: []puzzle.Case{{Input: example, Want: "2208"}}},
		},
	})
}
