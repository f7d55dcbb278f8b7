package day22

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aoc-ca/internal/puzzle/puzzletest"
)

func TestExamples(t *testing.T) {
	puzzletest.Verify(t, 2020, 22)
}

func TestMalformedInput(t *testing.T) {
	_, err := part1("Player 1:\n9\nPlayer 2:\nten\n")
	assert.Error(t, err)
	_, err = part2("Player 1:\n9\nPlayer 2:\nten\n")
	assert.Error(t, err)
}
