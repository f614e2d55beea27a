// SPDX-License-Identifier: MIT

// Package config loads dequectl settings.
//
// Configuration comes from at most one YAML file passed with --config (or the
// DEQUECTL_CONFIG environment variable). Values missing from the file keep
// their defaults; command-line flags are applied on top by the caller and
// the result is checked with Validate.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable consulted when no path is given.
const EnvVar = "DEQUECTL_CONFIG"

// Log formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config is the full dequectl configuration.
type Config struct {
	// SegmentSize is the chunk capacity of every deque the tool builds.
	SegmentSize int `yaml:"segment_size"`

	// Delimiter separates elements when printing.
	Delimiter string `yaml:"delimiter"`

	Log LogConfig `yaml:"log"`
}

// LogConfig configures the structured logger.
type LogConfig struct {
	// Level is a zerolog level name: trace, debug, info, warn, error, disabled.
	Level string `yaml:"level"`

	// Format is "console" (human readable) or "json".
	Format string `yaml:"format"`
}

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true,
	"error": true, "fatal": true, "panic": true, "disabled": true,
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		SegmentSize: 32,
		Delimiter:   ", ",
		Log: LogConfig{
			Level:  "info",
			Format: FormatConsole,
		},
	}
}

// Load reads path, or the file named by EnvVar when path is empty. With
// neither set it returns Default.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return Default(), nil
	}

	return LoadFile(path)
}

// LoadFile reads a YAML file over the defaults and validates the result.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result. Unknown
// keys are rejected; an empty document yields the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports the first problem found.
func (c *Config) Validate() error {
	if c.SegmentSize <= 0 {
		return fmt.Errorf("%w: segment_size must be positive, got %d", ErrInvalidConfig, c.SegmentSize)
	}
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("%w: unknown log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	if c.Log.Format != FormatConsole && c.Log.Format != FormatJSON {
		return fmt.Errorf("%w: log.format must be %q or %q, got %q", ErrInvalidConfig, FormatConsole, FormatJSON, c.Log.Format)
	}

	return nil
}
