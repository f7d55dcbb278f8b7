package day22

import (
	"aoc-ca/internal/combat"
	"aoc-ca/internal/puzzle"
)

func score(input string, play func(d1, d2 combat.Deck) (int, combat.Deck)) (any, error) {
	d1, d2, err := combat.Parse(input)
	if err != nil {
		return nil, err
	}
	_, deck := play(d1, d2)
	return deck.Score(), nil
}

func part1(input string) (any, error) { return score(input, combat.Play) }

func part2(input string) (any, error) { return score(input, combat.PlayRecursive) }

const example = `Player 1:
9
2
6
3
1

Player 2:
5
8
4
7
10
`

func init() {
	puzzle.Register(puzzle.Day{
		Year:  2020,
		Day:   22,
		Title: "Crab Combat",
		Parts: [2]puzzle.Part{
			{Solve: part1, Format: "winning player's score is %v", Cases: []puzzle.Case{{Input: example, Want: "306"}}},
			{Solve: part2, Format: "winning player's score is %v", Cases: []puzzle.Case{{Input: example, Want: "291"}}},
		},
	})
}
