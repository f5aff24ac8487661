// Package config loads the interpreter's ambient, non-language tuning
// knobs from an optional lox.config.yaml file plus LOX_*-prefixed
// environment variable overrides. None of these settings affect language
// semantics (see SPEC_FULL.md §6.5); they exist purely to make golden-file
// testing reproducible (a fixed clock) and to bound pathological recursion.
//
// Modeled on the "load YAML, apply defaults" idiom found elsewhere in the
// retrieved pack's ext/config loaders.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"
)

// Config holds the interpreter's tunable, non-language knobs.
type Config struct {
	// MaxCallDepth bounds the evaluator's recursion depth as a defense
	// against a runaway program overflowing the Go goroutine stack; 0 means
	// unbounded.
	MaxCallDepth int `yaml:"max_call_depth" env:"LOX_MAX_CALL_DEPTH"`

	// FixedClock, when set, is parsed as a Unix timestamp (seconds) and used
	// as the constant return value of the native clock() function, for
	// reproducible golden-file tests. Empty means use the real wall clock.
	FixedClock string `yaml:"fixed_clock" env:"LOX_FIXED_CLOCK"`
}

// Default returns the zero-tuning configuration: unbounded recursion, real
// wall clock.
func Default() Config {
	return Config{}
}

// Load reads path (if it exists; a missing file is not an error) as YAML
// into a Config seeded with Default, then applies LOX_*-prefixed
// environment variable overrides on top.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("reading %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("applying environment overrides: %w", err)
	}
	return cfg, nil
}
