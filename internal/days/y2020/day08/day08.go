package day08

import (
	"fmt"

	"aoc-ca/internal/handheld"
	"aoc-ca/internal/puzzle"
)

func part1(input string) (any, error) {
	prog, err := handheld.Parse(input)
	if err != nil {
		return nil, err
	}
	res := handheld.New(prog).Run()
	if res.Status != handheld.Looped {
		return nil, fmt.Errorf("boot code %s instead of looping", res.Status)
	}
	return res.Acc, nil
}

func part2(input string) (any, error) {
	prog, err := handheld.Parse(input)
	if err != nil {
		return nil, err
	}
	_, res, ok := handheld.New(prog).Repair()
	if !ok {
		return nil, fmt.Errorf("no single jmp/nop swap terminates the boot code")
	}
	return res.Acc, nil
}

const example = `nop +0
acc +1
jmp +4
acc +3
jmp -3
acc -99
acc +1
jmp -4
acc +6
`

func init() {
	puzzle.Register(puzzle.Day{
		Year:  2020,
		Day:   8,
		Title: "Handheld Halting",
		Parts: [2]puzzle.Part{
			{Solve: part1, Format: "Accumulator before the loop repeats: %v", Cases: []puzzle.Case{{Input: example, Want: "5"}}},
			{Solve: part2, Format: "Accumulator after the repaired program ends: %v", Cases: []puzzle.Case{{Input: example, Want: "8"}}},
		},
	})
}
