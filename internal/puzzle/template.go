package puzzle

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/template"
)

var dayTemplate = template.Must(template.New("day").Parse(`package day{{printf "%02d" .Day}}

import "{{.Module}}/internal/puzzle"

func part1(input string) (any, error) {
	return nil, puzzle.ErrNotImplemented
}

func part2(input string) (any, error) {
	return nil, puzzle.ErrNotImplemented
}

func init() {
	puzzle.Register(puzzle.Day{
		Year: {{.Year}},
		Day:  {{.Day}},
		Parts: [2]puzzle.Part{
			{Solve: part1, Format: "%v"},
			{Solve: part2, Format: "%v"},
		},
	})
}
`))

// NewDayFile writes a skeleton solution for year/day below root, which is
// the directory holding the per-year packages. It refuses to overwrite an
// existing file and returns the path written.
func NewDayFile(root, module string, year, day int) (string, error) {
	if day < 1 || day > 25 {
		return "", fmt.Errorf("day %d outside 1..25", day)
	}
	dir := filepath.Join(root, "y"+strconv.Itoa(year), fmt.Sprintf("day%02d", day))
	path := filepath.Join(dir, fmt.Sprintf("day%02d.go", day))
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("file %s already exists", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	defer f.Close()
	data := struct {
		Module    string
		Year, Day int
	}{module, year, day}
	if err := dayTemplate.Execute(f, data); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
