// Package puzzletest checks registered days from ordinary Go tests.
package puzzletest

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"aoc-ca/internal/puzzle"
)

// Verify runs every example case of the registered day and fails t for each
// mismatch. Cases marked slow are skipped under -short.
func Verify(t *testing.T, year, day int) {
	t.Helper()
	d, err := puzzle.Lookup(year, day)
	require.NoError(t, err)

	r := puzzle.NewRunner("", io.Discard, zaptest.NewLogger(t))
	r.SkipSlow = testing.Short()
	outcomes := r.Check(d)
	require.NotEmpty(t, outcomes, "day %s has no example cases", d.ID())
	for _, o := range outcomes {
		if o.Skipped {
			continue
		}
		if assert.NoError(t, o.Err, "part %d case %d", o.Part, o.Case) {
			assert.Equal(t, o.Want, o.Got, "part %d case %d", o.Part, o.Case)
		}
	}
}
