package puzzle

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

func countLines(input string) (any, error) {
	return len(strings.Split(strings.TrimSpace(input), "\n")), nil
}

func sumInts(input string) (any, error) {
	total := 0
	for _, f := range strings.Fields(input) {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		total += n
	}
	return total, nil
}

func unwritten(string) (any, error) { return nil, ErrNotImplemented }

var fakeDay = Day{
	Year: 1999,
	Day:  1,
	Parts: [2]Part{
		{Solve: countLines, Format: "%v lines", Cases: []Case{{Input: "a\nb\n", Want: "2"}}},
		{Solve: sumInts, Format: "sum %v", Cases: []Case{
			{Input: "1 2 3", Want: "6"},
			{Input: "40 2", Want: "42", Slow: true},
		}},
	},
}

var brokenDay = Day{
	Year: 1999,
	Day:  2,
	Parts: [2]Part{
		{Solve: sumInts, Cases: []Case{{Input: "1 1", Want: "3"}, {Input: "x", Want: "0"}}},
		{Solve: unwritten},
	},
}

var _ = Describe("Registry", func() {
	BeforeEach(func() {
		Register(fakeDay)
		Register(brokenDay)
	})

	It("looks up registered days", func() {
		d, err := Lookup(1999, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(d.ID()).To(Equal(ID{Year: 1999, Day: 1}))
		Expect(d.ID().String()).To(Equal("1999/01"))
	})

	It("reports unknown days", func() {
		_, err := Lookup(1999, 25)
		Expect(errors.Is(err, ErrUnknownDay)).To(BeTrue())
	})

	It("lists days in order", func() {
		ds := Days(1999)
		Expect(ds).To(HaveLen(2))
		Expect(ds[0].Day).To(Equal(1))
		Expect(ds[1].Day).To(Equal(2))
	})

	It("rejects out of range days", func() {
		Expect(func() { Register(Day{Year: 1999, Day: 26}) }).To(Panic())
	})
})

var _ = Describe("Runner", func() {
	var (
		out    *bytes.Buffer
		runner *Runner
	)

	BeforeEach(func() {
		out = &bytes.Buffer{}
		runner = NewRunner(GinkgoT().TempDir(), out, zap.NewNop())
	})

	It("formats answers through the part template", func() {
		Expect(FormatAnswer("%v lines", "2")).To(Equal("2 lines"))
		Expect(FormatAnswer("", "x")).To(Equal("x"))
	})

	It("prints not implemented for unwritten parts", func() {
		answer, err := Solve(brokenDay.Parts[1], "")
		Expect(err).NotTo(HaveOccurred())
		Expect(answer).To(Equal(NotImplemented))

		answer, err = Solve(Part{}, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(answer).To(Equal(NotImplemented))
	})

	It("runs both parts against the input file", func() {
		dir := filepath.Join(runner.DataDir, "1999")
		Expect(os.MkdirAll(dir, 0o755)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(dir, "01.txt"), []byte("1\n2\n3\n"), 0o644)).To(Succeed())

		Expect(runner.Run(fakeDay)).To(Succeed())
		Expect(out.String()).To(Equal("Part 1\n3 lines\n\nPart 2\nsum 6\n"))
	})

	It("fails when the input file is missing", func() {
		err := runner.Run(fakeDay)
		Expect(err).To(MatchError(ContainSubstring("reading input data")))
	})

	It("passes a day whose cases match", func() {
		Expect(runner.Test(fakeDay)).To(Succeed())
		Expect(out.String()).To(ContainSubstring("Part 1 test case 0 PASS. (output=2)"))
		Expect(out.String()).To(ContainSubstring("Part 2 test case 1 PASS. (output=42)"))
	})

	It("skips slow cases on request", func() {
		runner.SkipSlow = true
		outcomes := runner.Check(fakeDay)
		Expect(outcomes).To(HaveLen(3))
		Expect(outcomes[2].Skipped).To(BeTrue())
		Expect(runner.Report(fakeDay, outcomes)).To(BeTrue())
		Expect(out.String()).To(ContainSubstring("Part 2 test case 1 SKIP."))
	})

	It("reports failing and erroring cases", func() {
		err := runner.Test(brokenDay)
		Expect(errors.Is(err, ErrCasesFailed)).To(BeTrue())
		Expect(out.String()).To(ContainSubstring(`Part 1 test case 0 FAIL. expected "3", got "2"`))
		Expect(out.String()).To(ContainSubstring("Part 1 test case 1 ERROR."))
		Expect(out.String()).To(ContainSubstring("No test cases for part 2"))
	})

	It("appends extra cases after the built-in ones", func() {
		runner.Extra = map[ID][2][]Case{
			fakeDay.ID(): {{{Input: "x\ny\nz", Want: "3"}}, nil},
		}
		outcomes := runner.Check(fakeDay)
		Expect(outcomes).To(HaveLen(4))
		Expect(outcomes[1].Passed()).To(BeTrue())
		Expect(fakeDay.Parts[0].Cases).To(HaveLen(1))
	})

	It("checks several days concurrently and reports them in order", func() {
		runner.Workers = 2
		err := runner.TestAll(context.Background(), []Day{fakeDay, brokenDay})
		Expect(errors.Is(err, ErrCasesFailed)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("1 of 2 days"))
		text := out.String()
		Expect(strings.Index(text, "Day 1999/01:")).To(BeNumerically("<", strings.Index(text, "Day 1999/02:")))
	})

	It("stops when the context is cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		Expect(runner.TestAll(ctx, []Day{fakeDay})).To(MatchError(context.Canceled))
	})
})
