// Package config loads run settings for the geodes command from YAML.
//
// Precedence is defaults < YAML file < command-line flags; this package covers
// the first two and leaves flag overlays to the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/geodeforge/evaluate"
	"github.com/katalvlaran/geodeforge/search"
)

// ErrInvalid is returned when a config file is malformed or holds bad values.
var ErrInvalid = errors.New("config: invalid configuration")

// Config mirrors the command-line flags.
type Config struct {
	TimeLimit        int  `yaml:"time_limit"`
	BlueprintLimit   int  `yaml:"blueprint_limit"`
	BeamWidth        int  `yaml:"beam_width"`        // 0 disables pruning
	Workers          int  `yaml:"workers"`           // 0 = GOMAXPROCS
	BlueprintWorkers int  `yaml:"blueprint_workers"` // blueprints searched at once
	UpperBound       bool `yaml:"upper_bound"`
	RobotCaps        bool `yaml:"robot_caps"`

	Log Log `yaml:"log"`
}

// Log configures the zap logger.
type Log struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // auto, console, json
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		TimeLimit:        search.DefaultTimeLimit,
		BlueprintLimit:   2000,
		BeamWidth:        search.DefaultBeamWidth,
		Workers:          0,
		BlueprintWorkers: 1,
		Log: Log{
			Level:  "info",
			Format: "auto",
		},
	}
}

// Load reads path over the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	c, err := Parse(raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// Parse decodes YAML over the defaults and validates the result.
// An empty document yields the defaults.
func Parse(raw []byte) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate rejects negative counts and unknown log levels or formats.
func (c Config) Validate() error {
	for name, v := range map[string]int{
		"time_limit":        c.TimeLimit,
		"blueprint_limit":   c.BlueprintLimit,
		"beam_width":        c.BeamWidth,
		"workers":           c.Workers,
		"blueprint_workers": c.BlueprintWorkers,
	} {
		if v < 0 {
			return fmt.Errorf("%w: %s cannot be negative (%d)", ErrInvalid, name, v)
		}
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	switch c.Log.Format {
	case "auto", "console", "json":
	default:
		return fmt.Errorf("%w: log.format %q (want auto, console or json)", ErrInvalid, c.Log.Format)
	}

	return nil
}

// Evaluate converts the settings into an evaluate.Config.
func (c Config) Evaluate() evaluate.Config {
	return evaluate.Config{
		TimeLimit:        c.TimeLimit,
		BlueprintLimit:   c.BlueprintLimit,
		BlueprintWorkers: c.BlueprintWorkers,
		Search: []search.Option{
			search.WithBeamWidth(c.BeamWidth),
			search.WithWorkers(c.Workers),
			search.WithUpperBound(c.UpperBound),
			search.WithRobotCaps(c.RobotCaps),
		},
	}
}
