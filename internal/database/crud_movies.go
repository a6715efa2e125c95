// Movietool - Console Movie Catalog Manager
// Copyright 2026 M. Rourke (mrourke)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mrourke/movietool

/*
crud_movies.go - Movie Mutations

Every mutation preserves the canonical-title invariant: a stored title is
always "Name (YYYY)" with YYYY equal to the year of release_date. Title and
release-date updates therefore rewrite both columns together when needed.

Multi-row writes (insert with genres, delete with associations) run inside a
transaction so the catalog never holds a half-written movie.
*/

//nolint:staticcheck // File documentation, not package doc
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mrourke/movietool/internal/logging"
	"github.com/mrourke/movietool/internal/models"
)

// InsertMovie adds a movie with the given display title, release date and
// genre ids. The stored title is the canonical "Name (YYYY)" form derived
// from the release date. Returns ErrDuplicateTitle when a movie with the
// same canonical title already exists; in that case nothing is written.
func (db *DB) InsertMovie(ctx context.Context, title string, releaseDate time.Time, genreIDs []int64) (int64, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	canonical := models.CanonicalTitle(models.StripTitleYear(title), fmt.Sprintf("%04d", releaseDate.Year()))

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	var exists bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM movies WHERE lower(title) = lower(?))`,
		canonical).Scan(&exists)
	if err != nil {
		return 0, fmt.Errorf("failed to check for duplicate title: %w", err)
	}
	if exists {
		return 0, fmt.Errorf("%w: %s", ErrDuplicateTitle, canonical)
	}

	var movieID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO movies (title, release_date) VALUES (?, ?) RETURNING id`,
		canonical, releaseDate).Scan(&movieID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert movie: %w", err)
	}

	for _, genreID := range genreIDs {
		if err := attachGenreTx(ctx, tx, movieID, genreID); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit movie insert: %w", err)
	}

	logging.Info().
		Int64("movie_id", movieID).
		Str("title", canonical).
		Int("genres", len(genreIDs)).
		Msg("Movie added to catalog")

	return movieID, nil
}

// attachGenreTx associates one genre with a movie inside an open
// transaction. It verifies the genre id resolves and that the pair is not
// already present.
func attachGenreTx(ctx context.Context, tx *sql.Tx, movieID, genreID int64) error {
	var exists bool
	err := tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM genres WHERE id = ?)`, genreID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check genre %d: %w", genreID, err)
	}
	if !exists {
		return fmt.Errorf("%w: genre id %d", ErrNotFound, genreID)
	}

	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM movie_genres WHERE movie_id = ? AND genre_id = ?)`,
		movieID, genreID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check genre association: %w", err)
	}
	if exists {
		return fmt.Errorf("%w: genre id %d", ErrDuplicateGenre, genreID)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO movie_genres (movie_id, genre_id) VALUES (?, ?)`,
		movieID, genreID); err != nil {
		return fmt.Errorf("failed to attach genre %d: %w", genreID, err)
	}
	return nil
}

// UpdateMovieTitle renames a movie. The new display title is combined with
// the year of the existing release date so the stored form stays canonical,
// regardless of any year the caller embedded in the new title.
func (db *DB) UpdateMovieTitle(ctx context.Context, movieID int64, newTitle string) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	movie, err := db.GetMovieByID(ctx, movieID)
	if err != nil {
		return err
	}

	canonical := models.CanonicalTitle(
		models.StripTitleYear(newTitle),
		fmt.Sprintf("%04d", movie.ReleaseDate.Year()))

	if _, err := db.conn.ExecContext(ctx,
		`UPDATE movies SET title = ? WHERE id = ?`, canonical, movieID); err != nil {
		return fmt.Errorf("failed to update title of movie %d: %w", movieID, err)
	}

	logging.Info().
		Int64("movie_id", movieID).
		Str("old_title", movie.Title).
		Str("new_title", canonical).
		Msg("Movie title updated")

	return nil
}

// UpdateMovieReleaseYear moves a movie to a different year while keeping
// its month and day. The embedded title year is rewritten to match. Returns
// ErrInvalidDate when the existing month and day do not exist in the target
// year (February 29 moved to a non-leap year).
func (db *DB) UpdateMovieReleaseYear(ctx context.Context, movieID int64, year int) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	movie, err := db.GetMovieByID(ctx, movieID)
	if err != nil {
		return err
	}

	old := movie.ReleaseDate
	newDate := time.Date(year, old.Month(), old.Day(), 0, 0, 0, 0, time.UTC)
	// time.Date normalizes Feb 29 to Mar 1 in a non-leap year; detect that
	// instead of silently shifting the date.
	if newDate.Month() != old.Month() || newDate.Day() != old.Day() {
		return fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, old.Month(), old.Day())
	}

	return db.updateMovieDate(ctx, movie, newDate)
}

// UpdateMovieReleaseDate replaces a movie's full release date and rewrites
// the embedded title year to the new date's year.
func (db *DB) UpdateMovieReleaseDate(ctx context.Context, movieID int64, releaseDate time.Time) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	movie, err := db.GetMovieByID(ctx, movieID)
	if err != nil {
		return err
	}

	return db.updateMovieDate(ctx, movie, releaseDate)
}

// updateMovieDate writes a new release date together with the matching
// canonical title in a single statement.
func (db *DB) updateMovieDate(ctx context.Context, movie *models.Movie, newDate time.Time) error {
	newTitle := models.ReplaceTitleYear(movie.Title, newDate.Year())

	if _, err := db.conn.ExecContext(ctx,
		`UPDATE movies SET title = ?, release_date = ? WHERE id = ?`,
		newTitle, newDate, movie.ID); err != nil {
		return fmt.Errorf("failed to update release date of movie %d: %w", movie.ID, err)
	}

	logging.Info().
		Int64("movie_id", movie.ID).
		Str("title", newTitle).
		Str("release_date", newDate.Format("2006-01-02")).
		Msg("Movie release date updated")

	return nil
}

// AddMovieGenres attaches additional genres to an existing movie. The whole
// batch is transactional: one unknown or duplicate genre id and nothing is
// written.
func (db *DB) AddMovieGenres(ctx context.Context, movieID int64, genreIDs []int64) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	if _, err := db.GetMovieByID(ctx, movieID); err != nil {
		return err
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, genreID := range genreIDs {
		if err := attachGenreTx(ctx, tx, movieID, genreID); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit genre additions: %w", err)
	}

	logging.Info().
		Int64("movie_id", movieID).
		Int("genres", len(genreIDs)).
		Msg("Genres added to movie")

	return nil
}

// DeleteMovieGenreAt detaches the genre at the given 1-based position in a
// movie's genre list, where positions follow attachment order. Returns
// ErrNotFound when the position is out of range.
func (db *DB) DeleteMovieGenreAt(ctx context.Context, movieID int64, position int) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	if _, err := db.GetMovieByID(ctx, movieID); err != nil {
		return err
	}

	rows, err := db.conn.QueryContext(ctx,
		`SELECT id FROM movie_genres WHERE movie_id = ? ORDER BY id`, movieID)
	if err != nil {
		return fmt.Errorf("failed to list genre associations for movie %d: %w", movieID, err)
	}
	defer closeWithLog(rows, "rows")

	var associationIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("failed to scan genre association: %w", err)
		}
		associationIDs = append(associationIDs, id)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate genre associations: %w", err)
	}

	if position < 1 || position > len(associationIDs) {
		return fmt.Errorf("%w: genre position %d of %d", ErrNotFound, position, len(associationIDs))
	}

	if _, err := db.conn.ExecContext(ctx,
		`DELETE FROM movie_genres WHERE id = ?`, associationIDs[position-1]); err != nil {
		return fmt.Errorf("failed to delete genre association: %w", err)
	}

	logging.Info().
		Int64("movie_id", movieID).
		Int("position", position).
		Msg("Genre removed from movie")

	return nil
}

// DeleteMovie removes a movie and its genre associations. Returns
// ErrMovieHasRatings when rating events still reference the movie; rating
// history is append-only and never cascaded away.
func (db *DB) DeleteMovie(ctx context.Context, movieID int64) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	movie, err := db.GetMovieByID(ctx, movieID)
	if err != nil {
		return err
	}

	var ratingCount int
	err = db.conn.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM user_movies WHERE movie_id = ?`, movieID).Scan(&ratingCount)
	if err != nil {
		return fmt.Errorf("failed to count ratings for movie %d: %w", movieID, err)
	}
	if ratingCount > 0 {
		return fmt.Errorf("%w: movie %d has %d rating(s)", ErrMovieHasRatings, movieID, ratingCount)
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM movie_genres WHERE movie_id = ?`, movieID); err != nil {
		return fmt.Errorf("failed to delete genre associations of movie %d: %w", movieID, err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM movies WHERE id = ?`, movieID); err != nil {
		return fmt.Errorf("failed to delete movie %d: %w", movieID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit movie delete: %w", err)
	}

	logging.Info().
		Int64("movie_id", movieID).
		Str("title", movie.Title).
		Msg("Movie deleted from catalog")

	return nil
}

// movieNotFound normalizes a sql.ErrNoRows from a movie lookup into the
// package sentinel.
func movieNotFound(movieID int64, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: movie id %d", ErrNotFound, movieID)
	}
	return fmt.Errorf("failed to load movie %d: %w", movieID, err)
}
