// Movietool - Console Movie Catalog Manager
// Copyright 2026 M. Rourke (mrourke)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mrourke/movietool

// Package config loads and validates Movietool configuration.
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (DATABASE_PATH, LOG_LEVEL, ...)
//   - Config file (config.yaml)
//   - Built-in defaults
package config

import (
	"fmt"
	"strings"
)

// Config is the root configuration for the tool.
type Config struct {
	Database DatabaseConfig `koanf:"database"`
	Logging  LoggingConfig  `koanf:"logging"`
	Export   ExportConfig   `koanf:"export"`
}

// DatabaseConfig holds DuckDB settings.
type DatabaseConfig struct {
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"` // Number of DuckDB threads (0 = use NumCPU)
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Console is human-readable and the default for an interactive tool.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// ExportConfig holds catalog export settings.
type ExportConfig struct {
	// Path is the file the catalog JSON export is written to.
	Path string `koanf:"path"`
}

// Validate checks the loaded configuration for values the rest of the
// application cannot work with. It is called by LoadWithKoanf after all
// layers are merged.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path must not be empty")
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("database.threads must not be negative, got %d", c.Database.Threads)
	}

	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "disabled":
	default:
		return fmt.Errorf("logging.level %q is not a recognized level", c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}

	if c.Export.Path == "" {
		return fmt.Errorf("export.path must not be empty")
	}

	return nil
}

// Load reads configuration from defaults, an optional config file and
// environment variables, in that layering order (highest priority wins):
//
//  1. Built-in defaults
//  2. Config file (config.yaml if present, or the path in MOVIETOOL_CONFIG)
//  3. Environment variables
//
// See LoadWithKoanf for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
