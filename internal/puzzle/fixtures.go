package puzzle

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type fixtureEntry struct {
	Year int `yaml:"year"`
	Day  int `yaml:"day"`
	Part int `yaml:"part"`
	Case `yaml:",inline"`
}

type fixtureFile struct {
	Cases []fixtureEntry `yaml:"cases"`
}

// ParseFixtures decodes extra example cases from YAML of the form
//
//	cases:
//	  - year: 2020
//	    day: 11
//	    part: 1
//	    input: |
//	      L.L
//	    want: "0"
func ParseFixtures(data []byte) (map[ID][2][]Case, error) {
	var f fixtureFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding fixtures: %w", err)
	}
	out := map[ID][2][]Case{}
	for i, e := range f.Cases {
		if e.Part != 1 && e.Part != 2 {
			return nil, fmt.Errorf("fixture %d: part must be 1 or 2, got %d", i, e.Part)
		}
		id := ID{Year: e.Year, Day: e.Day}
		parts := out[id]
		parts[e.Part-1] = append(parts[e.Part-1], e.Case)
		out[id] = parts
	}
	return out, nil
}

// LoadFixtures reads extra example cases from a YAML file.
func LoadFixtures(path string) (map[ID][2][]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixtures: %w", err)
	}
	return ParseFixtures(data)
}
