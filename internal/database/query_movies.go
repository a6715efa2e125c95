// Movietool - Console Movie Catalog Manager
// Copyright 2026 M. Rourke (mrourke)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mrourke/movietool

/*
query_movies.go - Movie Read Operations

Free-text search strips the embedded "(YYYY)" from stored titles before
matching, so a numeric query only hits movies whose name actually contains
those digits. Year search goes through the release date instead.
*/

//nolint:staticcheck // File documentation, not package doc
package database

import (
	"context"
	"fmt"

	"github.com/mrourke/movietool/internal/models"
)

const movieColumns = `id, title, release_date, created_at`

// SearchMovies returns movies whose display title contains the given text,
// case-insensitively. The embedded year is not part of the searched text.
// Results are ordered by title; genres are loaded for each hit.
func (db *DB) SearchMovies(ctx context.Context, text string) ([]models.Movie, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := fmt.Sprintf(`
		SELECT %s FROM movies
		WHERE contains(lower(regexp_replace(title, '\(\d{4}\)', '', 'g')), lower(?))
		ORDER BY title`, movieColumns)

	return db.queryMovies(ctx, query, text)
}

// SearchMoviesByYear returns movies released in the given year, ordered by
// title, with genres loaded.
func (db *DB) SearchMoviesByYear(ctx context.Context, year int) ([]models.Movie, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := fmt.Sprintf(`
		SELECT %s FROM movies
		WHERE EXTRACT(YEAR FROM release_date) = ?
		ORDER BY title`, movieColumns)

	return db.queryMovies(ctx, query, year)
}

// GetAllMovies returns the whole catalog ordered by id, with genres loaded.
func (db *DB) GetAllMovies(ctx context.Context) ([]models.Movie, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := fmt.Sprintf(`SELECT %s FROM movies ORDER BY id`, movieColumns)
	return db.queryMovies(ctx, query)
}

// GetTopMovies returns the first n movies sorted by title ascending, with
// genres loaded. Callers bound n by CountMovies before asking.
func (db *DB) GetTopMovies(ctx context.Context, n int) ([]models.Movie, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := fmt.Sprintf(`SELECT %s FROM movies ORDER BY title LIMIT ?`, movieColumns)
	return db.queryMovies(ctx, query, n)
}

// GetMovieByID returns one movie with its genres. Returns ErrNotFound when
// the id does not resolve.
func (db *DB) GetMovieByID(ctx context.Context, movieID int64) (*models.Movie, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := fmt.Sprintf(`SELECT %s FROM movies WHERE id = ?`, movieColumns)

	var m models.Movie
	err := db.conn.QueryRowContext(ctx, query, movieID).
		Scan(&m.ID, &m.Title, &m.ReleaseDate, &m.CreatedAt)
	if err != nil {
		return nil, movieNotFound(movieID, err)
	}

	if err := db.loadMovieGenres(ctx, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// MovieExists reports whether a movie id resolves.
func (db *DB) MovieExists(ctx context.Context, movieID int64) (bool, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var exists bool
	err := db.conn.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM movies WHERE id = ?)`, movieID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check movie %d: %w", movieID, err)
	}
	return exists, nil
}

// CountMovies returns the catalog size.
func (db *DB) CountMovies(ctx context.Context) (int, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var count int
	err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM movies`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count movies: %w", err)
	}
	return count, nil
}

// GetGenres returns the fixed genre reference list ordered by id.
func (db *DB) GetGenres(ctx context.Context) ([]models.Genre, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx, `SELECT id, name FROM genres ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query genres: %w", err)
	}
	defer closeWithLog(rows, "rows")

	var genres []models.Genre
	for rows.Next() {
		var g models.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("failed to scan genre: %w", err)
		}
		genres = append(genres, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate genres: %w", err)
	}
	return genres, nil
}

// queryMovies runs a movie select and loads genres for each result row.
func (db *DB) queryMovies(ctx context.Context, query string, args ...any) ([]models.Movie, error) {
	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}
	defer closeWithLog(rows, "rows")

	var movies []models.Movie
	for rows.Next() {
		var m models.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.ReleaseDate, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate movies: %w", err)
	}

	for i := range movies {
		if err := db.loadMovieGenres(ctx, &movies[i]); err != nil {
			return nil, err
		}
	}
	return movies, nil
}

// loadMovieGenres fills a movie's genre list in attachment order.
func (db *DB) loadMovieGenres(ctx context.Context, m *models.Movie) error {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT g.id, g.name
		FROM movie_genres mg
		JOIN genres g ON g.id = mg.genre_id
		WHERE mg.movie_id = ?
		ORDER BY mg.id`, m.ID)
	if err != nil {
		return fmt.Errorf("failed to query genres of movie %d: %w", m.ID, err)
	}
	defer closeWithLog(rows, "rows")

	m.Genres = nil
	for rows.Next() {
		var g models.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return fmt.Errorf("failed to scan genre of movie %d: %w", m.ID, err)
		}
		m.Genres = append(m.Genres, g)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate genres of movie %d: %w", m.ID, err)
	}
	return nil
}
