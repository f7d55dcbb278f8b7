package day17

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aoc-ca/internal/puzzle/puzzletest"
)

func TestExamples(t *testing.T) {
	puzzletest.Verify(t, 2020, 17)
}

func TestMalformedInput(t *testing.T) {
	_, err := part1(".#.\n.?#\n")
	assert.Error(t, err)
	_, err = part2(".#.\n.?#\n")
	assert.Error(t, err)
}
