// Package config resolves harness settings from defaults, an optional YAML
// file, AOC_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the harness settings.
type Config struct {
	DataDir  string `mapstructure:"data_dir"`
	DaysDir  string `mapstructure:"days_dir"`
	Module   string `mapstructure:"module"`
	Fixtures string `mapstructure:"fixtures"`
	LogLevel string `mapstructure:"log_level"`
	DevLog   bool   `mapstructure:"dev_log"`
}

// Defaults returns the settings used when nothing overrides them.
func Defaults() Config {
	return Config{
		DataDir:  "data",
		DaysDir:  "internal/days",
		Module:   "aoc-ca",
		LogLevel: "info",
	}
}

// New returns a viper instance carrying the defaults and the AOC_ environment
// prefix.
func New() *viper.Viper {
	d := Defaults()
	v := viper.New()
	v.SetDefault("data_dir", d.DataDir)
	v.SetDefault("days_dir", d.DaysDir)
	v.SetDefault("module", d.Module)
	v.SetDefault("fixtures", d.Fixtures)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("dev_log", d.DevLog)
	v.SetEnvPrefix("aoc")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags registers the persistent flags on fs and binds them to v.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	d := Defaults()
	fs.String("config", "", "config file (default ./aoc.yaml if present)")
	fs.String("data-dir", d.DataDir, "directory holding <year>/<day>.txt puzzle input")
	fs.String("log-level", d.LogLevel, "log level (debug, info, warn, error)")
	fs.Bool("dev-log", d.DevLog, "human readable log output")
	for key, flag := range map[string]string{
		"data_dir":  "data-dir",
		"log_level": "log-level",
		"dev_log":   "dev-log",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return err
		}
	}
	return nil
}

// Load reads the config file, if any, and decodes the merged settings. An
// explicit path must exist; without one, ./aoc.yaml is used when present.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("aoc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return c, nil
}
