package day15

import (
	"aoc-ca/internal/memgame"
	"aoc-ca/internal/puzzle"
)

func play(input string, turn int) (any, error) {
	start, err := memgame.Parse(input)
	if err != nil {
		return nil, err
	}
	g, err := memgame.New(start)
	if err != nil {
		return nil, err
	}
	return g.Play(turn)
}

func part1(input string) (any, error) { return play(input, 2020) }

func part2(input string) (any, error) { return play(input, 30_000_000) }

func cases(want map[string]string, slow bool) []puzzle.Case {
	starts := []string{"0,3,6", "1,3,2", "2,1,3", "1,2,3", "2,3,1", "3,2,1", "3,1,2"}
	out := make([]puzzle.Case, 0, len(starts))
	for _, s := range starts {
		out = append(out, puzzle.Case{Input: s, Want: want[s], Slow: slow})
	}
	return out
}

func init() {
	puzzle.Register(puzzle.Day{
		Year:  2020,
		Day:   15,
		Title: "Rambunctious Recitation",
		Parts: [2]puzzle.Part{
			{Solve: part1, Format: "2020th number is %v", Cases: cases(map[string]string{
				"0,3,6": "436", "1,3,2": "1", "2,1,3": "10", "1,2,3": "27",
				"2,3,1": "78", "3,2,1": "438", "3,1,2": "1836",
			}, false)},
			{Solve: part2, Format: "30000000th number is %v", Cases: cases(map[string]string{
				"0,3,6": "175594", "1,3,2": "2578", "2,1,3": "3544142", "1,2,3": "261214",
				"2,3,1": "6895259", "3,2,1": "18", "3,1,2": "362",
			}, true)},
		},
	})
}
