// SPDX-License-Identifier: MIT

// Package config loads the fragmerge run configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fragmerge/closure"
)

// Environment overrides, applied after the file.
const (
	EnvMaxFragments = "FRAGMERGE_MAX_FRAGMENTS"
	EnvTimeout      = "FRAGMERGE_TIMEOUT"
	EnvLogLevel     = "FRAGMERGE_LOG_LEVEL"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the top-level configuration.
type Config struct {
	Limits      LimitsConfig      `yaml:"limits"`
	Incremental IncrementalConfig `yaml:"incremental"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// LimitsConfig bounds a single solver run.
type LimitsConfig struct {
	MaxFragments int    `yaml:"max_fragments"` // closure working-list capacity
	Timeout      string `yaml:"timeout"`       // wall-clock budget, "" or "0" = none
}

// IncrementalConfig controls the compatibility-graph merge.
type IncrementalConfig struct {
	RepairAdjacency bool `yaml:"repair_adjacency"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Limits: LimitsConfig{
			MaxFragments: closure.DefaultMaxFragments,
			Timeout:      "1m",
		},
		Incremental: IncrementalConfig{
			RepairAdjacency: false,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML file over the defaults. An empty path or a missing
// file yields the defaults. Environment overrides are applied last and the
// result is validated.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// defaults
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvMaxFragments); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvMaxFragments, v, ErrInvalidConfig)
		}
		c.Limits.MaxFragments = n
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		c.Limits.Timeout = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}

	return nil
}

// Validate checks that every field is usable.
func (c *Config) Validate() error {
	if c.Limits.MaxFragments < 1 {
		return fmt.Errorf("limits.max_fragments must be >= 1, got %d: %w",
			c.Limits.MaxFragments, ErrInvalidConfig)
	}
	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}

	return nil
}

// TimeoutDuration parses Limits.Timeout. Zero means no budget.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Limits.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Limits.Timeout)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("limits.timeout %q: %w", c.Limits.Timeout, ErrInvalidConfig)
	}

	return d, nil
}

// LogLevel parses Logging.Level.
func (c *Config) LogLevel() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return lvl, fmt.Errorf("logging.level %q: %w", c.Logging.Level, ErrInvalidConfig)
	}

	return lvl, nil
}
