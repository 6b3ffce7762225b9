// SPDX-License-Identifier: MIT

// Package config loads the YAML configuration of the radial table
// generator.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/orbital/license"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the generator settings.
type Config struct {
	// MaxN is the table dimension: orbitals n = 1..MaxN, L = 0..n-1.
	MaxN int `yaml:"max_n"`

	// Workers bounds the number of table cells computed concurrently.
	Workers int `yaml:"workers"`

	// Header is the file named in the generated #include line.
	Header string `yaml:"header"`

	// LicenseStyle is one of "text", "c", "shell".
	LicenseStyle string `yaml:"license_style"`

	// Output is the destination path; empty means stdout.
	Output string `yaml:"output"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the settings used to produce the shipped data tables.
func Default() *Config {
	return &Config{
		MaxN:         16,
		Workers:      runtime.NumCPU(),
		Header:       "radial_data.hh",
		LicenseStyle: "c",
		Logging:      LoggingConfig{Level: "info"},
	}
}

// Load reads path and overlays its values on Default. Fields absent from
// the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if c.MaxN < 1 {
		return fmt.Errorf("%w: max_n must be >= 1, got %d", ErrInvalidConfig, c.MaxN)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalidConfig, c.Workers)
	}
	if _, err := license.ParseStyle(c.LicenseStyle); err != nil {
		return fmt.Errorf("%w: license_style: %v", ErrInvalidConfig, err)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Style returns the parsed license style.
func (c *Config) Style() license.Style {
	s, _ := license.ParseStyle(c.LicenseStyle)

	return s
}

// Level returns the parsed zap level.
func (c *Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("%w: logging.level: %v", ErrInvalidConfig, err)
	}

	return lvl, nil
}
