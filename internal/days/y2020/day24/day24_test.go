package day24

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aoc-ca/internal/puzzle/puzzletest"
)

func TestExamples(t *testing.T) {
	puzzletest.Verify(t, 2020, 24)
}

func TestMalformedInput(t *testing.T) {
	_, err := part1("esenwq\n")
	assert.Error(t, err)
	_, err = part2("esenwq\n")
	assert.Error(t, err)
}
