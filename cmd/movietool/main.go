// Movietool - Console Movie Catalog Manager
// Copyright 2026 M. Rourke (mrourke)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mrourke/movietool

// Package main is the entry point for the movietool console application.
//
// Movietool is an interactive movie catalog manager: it searches, adds,
// updates and deletes movies, registers users, records 1-5 ratings and
// reports the top rated movie per occupation and per gender, all against
// a single-file DuckDB catalog.
//
// # Application Architecture
//
// The tool initializes components in the following order:
//
//  1. Configuration: settings from a config file and environment variables (Koanf v2)
//  2. Logging: zerolog to stderr, so menu output on stdout stays clean
//  3. Database: DuckDB catalog, schema created and reference lists seeded on first run
//  4. Console: the interactive menu loop on stdin/stdout
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins): environment variables, then config.yaml, then built-in
// defaults. The config file path can be set with MOVIETOOL_CONFIG.
//
// Common settings:
//   - DATABASE_PATH: catalog file (default movietool.duckdb)
//   - LOG_LEVEL: trace..disabled (default info)
//   - EXPORT_PATH: JSON export target (default catalog.json)
//
// # Signal Handling
//
// SIGINT and SIGTERM end the session: the menu loop stops at the next
// prompt boundary and the database is checkpointed and closed.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/mrourke/movietool/internal/config"
	"github.com/mrourke/movietool/internal/console"
	"github.com/mrourke/movietool/internal/database"
	"github.com/mrourke/movietool/internal/logging"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize zerolog with configuration
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("db_path", cfg.Database.Path).
		Str("export_path", cfg.Export.Path).
		Msg("Starting movietool")

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Debug().Msg("Database initialized")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := console.New(db, console.NewStdinReader(os.Stdin), os.Stdout, cfg.Export.Path)
	if err := c.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		// Close the database before exiting so the deferred close is not
		// skipped by Fatal.
		if closeErr := db.Close(); closeErr != nil {
			logging.Error().Err(closeErr).Msg("Error closing database")
		}
		logging.Fatal().Err(err).Msg("Console session failed")
	}

	logging.Info().Msg("Session ended")
}
