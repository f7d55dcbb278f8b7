package puzzle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrCasesFailed is returned when at least one example case does not match.
var ErrCasesFailed = errors.New("test cases failed")

// Runner executes registered days and reports to Out.
type Runner struct {
	// DataDir holds puzzle input as <year>/<day:02>.txt.
	DataDir string
	Out     io.Writer
	Log     *zap.Logger
	// SkipSlow leaves out cases marked Slow.
	SkipSlow bool
	// Extra holds additional cases per day and part, appended after the
	// built-in ones.
	Extra map[ID][2][]Case
	// Workers bounds how many days TestAll checks at once. Zero means one
	// per CPU.
	Workers int
}

// NewRunner returns a Runner writing to out.
func NewRunner(dataDir string, out io.Writer, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{DataDir: dataDir, Out: out, Log: log}
}

// InputPath returns where the puzzle input for d is expected.
func (r *Runner) InputPath(d Day) string {
	return filepath.Join(r.DataDir, strconv.Itoa(d.Year), fmt.Sprintf("%02d.txt", d.Day))
}

// Solve runs one part and returns its answer in printed form. Unwritten
// parts answer NotImplemented.
func Solve(p Part, input string) (string, error) {
	if p.Solve == nil {
		return NotImplemented, nil
	}
	v, err := p.Solve(input)
	if errors.Is(err, ErrNotImplemented) {
		return NotImplemented, nil
	}
	if err != nil {
		return "", err
	}
	return fmt.Sprint(v), nil
}

// FormatAnswer renders an answer through a part's template.
func FormatAnswer(format, answer string) string {
	if format == "" {
		format = "%v"
	}
	return fmt.Sprintf(format, answer)
}

// Run solves both parts of d against its input file.
func (r *Runner) Run(d Day) error {
	path := r.InputPath(d)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading input data: %w", err)
	}
	for i, p := range d.Parts {
		if i > 0 {
			fmt.Fprintln(r.Out)
		}
		fmt.Fprintf(r.Out, "Part %d\n", i+1)
		start := time.Now()
		answer, err := Solve(p, string(data))
		if err != nil {
			return fmt.Errorf("part %d: %w", i+1, err)
		}
		r.Log.Debug("solved part",
			zap.Stringer("day", d.ID()),
			zap.Int("part", i+1),
			zap.Duration("elapsed", time.Since(start)))
		fmt.Fprintln(r.Out, FormatAnswer(p.Format, answer))
	}
	return nil
}

// Outcome is the result of checking one example case.
type Outcome struct {
	Day     ID
	Part    int
	Case    int
	Want    string
	Got     string
	Err     error
	Skipped bool
}

// Passed reports whether the case produced the expected answer.
func (o Outcome) Passed() bool {
	return o.Err == nil && !o.Skipped && o.Got == o.Want
}

// Cases returns the built-in and extra cases for one part (0 or 1).
func (r *Runner) Cases(d Day, part int) []Case {
	cases := d.Parts[part].Cases
	if extra, ok := r.Extra[d.ID()]; ok && len(extra[part]) > 0 {
		cases = append(append([]Case(nil), cases...), extra[part]...)
	}
	return cases
}

// Check runs every example case of d and returns the outcomes in order.
func (r *Runner) Check(d Day) []Outcome {
	var out []Outcome
	for part := range d.Parts {
		for i, c := range r.Cases(d, part) {
			o := Outcome{Day: d.ID(), Part: part + 1, Case: i, Want: c.Want}
			if c.Slow && r.SkipSlow {
				o.Skipped = true
				out = append(out, o)
				continue
			}
			start := time.Now()
			o.Got, o.Err = Solve(d.Parts[part], c.Input)
			r.Log.Debug("checked case",
				zap.Stringer("day", d.ID()),
				zap.Int("part", part+1),
				zap.Int("case", i),
				zap.Bool("passed", o.Passed()),
				zap.Duration("elapsed", time.Since(start)))
			out = append(out, o)
		}
	}
	return out
}

// Report prints outcomes for d and reports whether all of them passed.
func (r *Runner) Report(d Day, outcomes []Outcome) bool {
	ok := true
	for part := 1; part <= len(d.Parts); part++ {
		if part > 1 {
			fmt.Fprintln(r.Out)
		}
		seen := false
		for _, o := range outcomes {
			if o.Part != part {
				continue
			}
			if !seen {
				fmt.Fprintf(r.Out, "Running test cases for part %d:\n", part)
				seen = true
			}
			switch {
			case o.Skipped:
				fmt.Fprintf(r.Out, "Part %d test case %d SKIP.\n", part, o.Case)
			case o.Err != nil:
				fmt.Fprintf(r.Out, "Part %d test case %d ERROR. %v\n", part, o.Case, o.Err)
				ok = false
			case o.Got == o.Want:
				fmt.Fprintf(r.Out, "Part %d test case %d PASS. (output=%s)\n", part, o.Case, o.Want)
			default:
				fmt.Fprintf(r.Out, "Part %d test case %d FAIL. expected %q, got %q\n", part, o.Case, o.Want, o.Got)
				ok = false
			}
		}
		if !seen {
			fmt.Fprintf(r.Out, "No test cases for part %d\n", part)
		}
	}
	return ok
}

// Test checks and reports one day.
func (r *Runner) Test(d Day) error {
	if !r.Report(d, r.Check(d)) {
		return ErrCasesFailed
	}
	return nil
}

// TestAll checks the given days concurrently and reports them in order. Each
// day's engines are private to the goroutine checking it.
func (r *Runner) TestAll(ctx context.Context, ds []Day) error {
	results := make([][]Outcome, len(ds))
	g, ctx := errgroup.WithContext(ctx)
	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	g.SetLimit(workers)
	for i, d := range ds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = r.Check(d)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	for i, d := range ds {
		if i > 0 {
			fmt.Fprintln(r.Out)
		}
		fmt.Fprintf(r.Out, "Day %s:\n", d.ID())
		if !r.Report(d, results[i]) {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w in %d of %d days", ErrCasesFailed, failed, len(ds))
	}
	return nil
}
