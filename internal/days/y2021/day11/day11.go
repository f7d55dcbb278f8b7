package day11

import (
	_ "embed"
	"fmt"

	"aoc-ca/internal/puzzle"
	"aoc-ca/internal/sims/octopus"
)

//go:embed example.txt
var example string

func part1(input string) (any, error) {
	g, err := octopus.Parse(input)
	if err != nil {
		return nil, err
	}
	return octopus.New(g).FlashesAfter(100), nil
}

func part2(input string) (any, error) {
	g, err := octopus.Parse(input)
	if err != nil {
		return nil, err
	}
	step := octopus.New(g).FirstSynchronized(1_000_000)
	if step < 0 {
		return nil, fmt.Errorf("octopuses never flash together")
	}
	return step, nil
}

func init() {
	puzzle.Register(puzzle.Day{
		Year:  2021,
		Day:   11,
		Title: "Dumbo Octopus",
		Parts: [2]puzzle.Part{
			{Solve: part1, Format: "Total flashes after 100 steps: %v", Cases: []puzzle.Case{{Input: example, Want: "1656"}}},
			{Solve: part2, Format: "First step where all octopuses flash: %v", Cases: []puzzle.Case{{Input: example, Want: "195"}}},
		},
	})
}
