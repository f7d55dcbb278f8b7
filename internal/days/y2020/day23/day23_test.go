package day23

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aoc-ca/internal/puzzle/puzzletest"
)

func TestExamples(t *testing.T) {
	puzzletest.Verify(t, 2020, 23)
}

func TestMalformedInput(t *testing.T) {
	_, err := part1("38912x467")
	assert.Error(t, err)
	_, err = part2("38912x467")
	assert.Error(t, err)
}
