// Movietool - Console Movie Catalog Manager
// Copyright 2026 M. Rourke (mrourke)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mrourke/movietool

// Package console implements the interactive menu loop of the catalog
// manager.
//
// The package is organized as follows:
//   - input.go: stdin abstraction so the loop is testable with scripted input
//   - prompts.go: re-prompting input helpers (years, dates, bounded ints)
//   - render.go: plain-text rendering of movies, users and reports
//   - menu.go: the menu loop and one handler per menu option
//
// All catalog access goes through the database package; this package owns
// only input collection, input validation and output formatting. Menu
// output is written to the configured writer (stdout in production) while
// logs go to stderr, so the two streams never interleave.
package console
