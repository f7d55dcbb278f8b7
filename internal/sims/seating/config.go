package seating

import (
	_ "embed"
	"fmt"
	"os"
)

//go:embed example.txt
var exampleLayout string

// Config controls which layout and rule set the seating sim starts from.
type Config struct {
	Rule   string
	Layout string
}

// DefaultConfig returns the example waiting area under adjacent rules.
func DefaultConfig() Config {
	return Config{Rule: "adjacent", Layout: exampleLayout}
}

// FromMap populates a Config from a string map. The "input" key names a file
// holding a layout; "rule" selects adjacent or sight.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["rule"]; ok && v != "" {
		if _, err := RuleByName(v); err != nil {
			return c, err
		}
		c.Rule = v
	}
	if v, ok := cfg["input"]; ok && v != "" {
		data, err := os.ReadFile(v)
		if err != nil {
			return c, fmt.Errorf("reading seating layout: %w", err)
		}
		c.Layout = string(data)
	}
	return c, nil
}
