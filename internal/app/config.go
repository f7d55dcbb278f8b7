package app

import "github.com/spf13/pflag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	Rule     string
	Input    string
	HUDWidth int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "seating", Scale: 32, TPS: 4, HUDWidth: 180}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation steps per second")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule set for sims that have several (seating: adjacent, sight)")
	fs.StringVar(&c.Input, "input", c.Input, "file holding the starting grid (default: built-in example)")
	fs.IntVar(&c.HUDWidth, "hud-width", c.HUDWidth, "width of the side panel in pixels, 0 hides it")
}

// SimConfig returns the settings passed to the sim factory.
func (c *Config) SimConfig() map[string]string {
	cfg := map[string]string{}
	if c.Rule != "" {
		cfg["rule"] = c.Rule
	}
	if c.Input != "" {
		cfg["input"] = c.Input
	}
	return cfg
}
