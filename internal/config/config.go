// SPDX-License-Identifier: MIT

// Package config loads guasti settings from GUASTI_* environment variables.
// Command-line flags are layered on top by the cli package.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/kelseyhightower/envconfig"

	"github.com/katalvlaran/guasti/grid"
	"github.com/katalvlaran/guasti/internal/logging"
	"github.com/katalvlaran/guasti/report"
	"github.com/katalvlaran/guasti/signature"
)

// Prefix is the environment variable prefix (GUASTI_BOUND, GUASTI_UNIT, ...).
const Prefix = "GUASTI"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all command configuration.
type Config struct {
	Bound        int     `envconfig:"BOUND" default:"20"`
	Unit         string  `envconfig:"UNIT" default:"degrees"`
	Tolerance    float64 `envconfig:"TOLERANCE" default:"0.01"`
	Format       string  `envconfig:"FORMAT" default:"text"`
	Concurrency  int     `envconfig:"CONCURRENCY" default:"4"`
	ExtensionDir string  `envconfig:"EXTENSION_DIR"`
	LogLevel     string  `envconfig:"LOG_LEVEL" default:"info"`
	LogDev       bool    `envconfig:"LOG_DEV" default:"false"`
}

// Load reads the environment and validates the result.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration Load yields with an empty environment.
func Default() *Config {
	return &Config{
		Bound:       20,
		Unit:        signature.Degrees.String(),
		Tolerance:   signature.DefaultTolerance,
		Format:      string(report.Text),
		Concurrency: 4,
		LogLevel:    "info",
	}
}

// Validate checks every field and returns the first problem wrapped in
// ErrInvalidConfig.
func (c *Config) Validate() error {
	switch {
	case c.Bound < 1 || c.Bound > grid.MaxBound:
		return fmt.Errorf("%w: bound %d outside [1, %d]", ErrInvalidConfig, c.Bound, grid.MaxBound)
	case math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) || c.Tolerance < 0:
		return fmt.Errorf("%w: tolerance %v must be a finite non-negative number", ErrInvalidConfig, c.Tolerance)
	case c.Concurrency < 1:
		return fmt.Errorf("%w: concurrency %d must be >= 1", ErrInvalidConfig, c.Concurrency)
	}
	if _, ok := signature.ParseUnit(c.Unit); !ok {
		return fmt.Errorf("%w: unit %q", ErrInvalidConfig, c.Unit)
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// SignatureOptions converts the unit and tolerance into signature options.
// Call it on a validated Config.
func (c *Config) SignatureOptions() []signature.Option {
	u, _ := signature.ParseUnit(c.Unit)

	return []signature.Option{signature.WithUnit(u), signature.WithTolerance(c.Tolerance)}
}

// OutputFormat returns the parsed Format. Call it on a validated Config.
func (c *Config) OutputFormat() report.Format {
	f, _ := report.ParseFormat(c.Format)

	return f
}
