// Package puzzle keeps the registry of daily solutions and runs them against
// puzzle input or their embedded example cases.
package puzzle

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNotImplemented is returned by solvers for parts that are not written
// yet.
var ErrNotImplemented = errors.New("not implemented")

// ErrUnknownDay is returned when no solution is registered for a day.
var ErrUnknownDay = errors.New("unknown day")

// NotImplemented is printed in place of a result for unwritten parts.
const NotImplemented = "[not implemented]"

// Solver computes one part's answer from the raw puzzle input.
type Solver func(input string) (any, error)

// Case is an example input with the expected answer in printed form.
type Case struct {
	Input string `yaml:"input"`
	Want  string `yaml:"want"`
	// Slow marks cases that take seconds rather than milliseconds.
	Slow bool `yaml:"slow"`
}

// Part is one half of a day's puzzle.
type Part struct {
	Solve Solver
	// Format is a fmt template with a single verb for the answer.
	Format string
	Cases  []Case
}

// Day bundles both parts of a puzzle.
type Day struct {
	Year  int
	Day   int
	Title string
	Parts [2]Part
}

// ID is the key a day is registered under.
type ID struct {
	Year int
	Day  int
}

func (id ID) String() string { return fmt.Sprintf("%d/%02d", id.Year, id.Day) }

// ID returns the day's registry key.
func (d Day) ID() ID { return ID{Year: d.Year, Day: d.Day} }

var days = map[ID]Day{}

// Register adds a day. Registering the same day twice replaces the earlier
// entry.
func Register(d Day) {
	if d.Year == 0 || d.Day < 1 || d.Day > 25 {
		panic(fmt.Sprintf("puzzle: invalid day %d/%d", d.Year, d.Day))
	}
	days[d.ID()] = d
}

// Lookup returns the registered day.
func Lookup(year, day int) (Day, error) {
	d, ok := days[ID{Year: year, Day: day}]
	if !ok {
		return Day{}, fmt.Errorf("%w %s", ErrUnknownDay, ID{Year: year, Day: day})
	}
	return d, nil
}

// Days lists registered days ordered by year then day. A non-zero year
// restricts the list to that year.
func Days(year int) []Day {
	out := make([]Day, 0, len(days))
	for id, d := range days {
		if year != 0 && id.Year != year {
			continue
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Day < out[j].Day
	})
	return out
}
