// Movietool - Console Movie Catalog Manager
// Copyright 2026 M. Rourke (mrourke)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mrourke/movietool

package database

import (
	"errors"
	"io"

	"github.com/mrourke/movietool/internal/logging"
)

// Sentinel errors returned by catalog operations. Callers match them with
// errors.Is; the wrapped message carries the offending id or value.
var (
	// ErrNotFound indicates a movie, genre, user or occupation id that does
	// not resolve. Callers are expected to pre-check ids via the companion
	// read operations, so hitting this usually means a caller bug.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateTitle indicates an insert whose canonical title already
	// exists in the catalog. Nothing is written.
	ErrDuplicateTitle = errors.New("movie title already exists")

	// ErrDuplicateGenre indicates an attempt to attach a genre that is
	// already associated with the movie. Nothing is written.
	ErrDuplicateGenre = errors.New("genre already associated with movie")

	// ErrInvalidDate indicates a derived date that does not exist on the
	// calendar, such as February 29 moved to a non-leap year.
	ErrInvalidDate = errors.New("invalid calendar date")

	// ErrMovieHasRatings indicates a delete refused because rating events
	// still reference the movie.
	ErrMovieHasRatings = errors.New("movie has rating events")
)

// closeWithLog closes a resource and logs any error.
// Use this for cleanup operations where errors should be acknowledged but
// not fail the operation.
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource and explicitly ignores any error.
// Use this in error paths where Close() errors are not actionable.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close() // cleanup is best-effort
	}
}
