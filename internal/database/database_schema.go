// Movietool - Console Movie Catalog Manager
// Copyright 2026 M. Rourke (mrourke)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mrourke/movietool

/*
database_schema.go - Database Schema Management

Tables:
  - movies: catalog entries with canonical "Name (YYYY)" titles
  - genres: fixed genre reference list (seeded once, read-only)
  - movie_genres: movie-to-genre associations; attachment order is the
    movie_genres.id order and drives positional deletion
  - occupations: fixed occupation reference list (seeded once, read-only)
  - users: registered raters
  - user_movies: append-only rating events

Uniqueness of (movie_id, genre_id) pairs and of canonical titles is
enforced by the mutation logic rather than by storage constraints, matching
the contract the console layer programs against.
*/

//nolint:staticcheck // File documentation, not package doc
package database

import (
	"context"
	"fmt"
	"time"
)

// schemaContext returns a context with timeout for schema operations.
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// createTables creates the sequences and core tables.
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	queries := []string{
		`CREATE SEQUENCE IF NOT EXISTS seq_movie_id START 1`,
		`CREATE SEQUENCE IF NOT EXISTS seq_genre_id START 1`,
		`CREATE SEQUENCE IF NOT EXISTS seq_movie_genre_id START 1`,
		`CREATE SEQUENCE IF NOT EXISTS seq_occupation_id START 1`,
		`CREATE SEQUENCE IF NOT EXISTS seq_user_id START 1`,
		`CREATE SEQUENCE IF NOT EXISTS seq_user_movie_id START 1`,

		`CREATE TABLE IF NOT EXISTS movies (
			id BIGINT PRIMARY KEY DEFAULT nextval('seq_movie_id'),
			title TEXT NOT NULL,
			release_date DATE NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS genres (
			id BIGINT PRIMARY KEY DEFAULT nextval('seq_genre_id'),
			name TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS movie_genres (
			id BIGINT PRIMARY KEY DEFAULT nextval('seq_movie_genre_id'),
			movie_id BIGINT NOT NULL,
			genre_id BIGINT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS occupations (
			id BIGINT PRIMARY KEY DEFAULT nextval('seq_occupation_id'),
			name TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS users (
			id BIGINT PRIMARY KEY DEFAULT nextval('seq_user_id'),
			age BIGINT NOT NULL,
			gender TEXT NOT NULL,
			zip_code TEXT NOT NULL,
			occupation_id BIGINT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS user_movies (
			id BIGINT PRIMARY KEY DEFAULT nextval('seq_user_movie_id'),
			user_id BIGINT NOT NULL,
			movie_id BIGINT NOT NULL,
			rating INTEGER NOT NULL,
			rated_at DATE NOT NULL
		)`,
	}

	for _, query := range queries {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}

	return nil
}

// createIndexes creates indexes for the common lookup paths.
func (db *DB) createIndexes() error {
	ctx, cancel := schemaContext()
	defer cancel()

	queries := []string{
		`CREATE INDEX IF NOT EXISTS idx_movies_title ON movies(title)`,
		`CREATE INDEX IF NOT EXISTS idx_movie_genres_movie ON movie_genres(movie_id)`,
		`CREATE INDEX IF NOT EXISTS idx_user_movies_movie ON user_movies(movie_id)`,
		`CREATE INDEX IF NOT EXISTS idx_user_movies_user ON user_movies(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_users_occupation ON users(occupation_id)`,
	}

	for _, query := range queries {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to create index: %s: %w", query, err)
		}
	}

	return nil
}

// referenceGenres is the fixed genre list, seeded on first startup.
// It mirrors the MovieLens genre taxonomy the catalog data comes from.
var referenceGenres = []string{
	"Action", "Adventure", "Animation", "Children's", "Comedy", "Crime",
	"Documentary", "Drama", "Fantasy", "Film-Noir", "Horror", "Musical",
	"Mystery", "Romance", "Sci-Fi", "Thriller", "War", "Western",
}

// referenceOccupations is the fixed occupation list, seeded on first startup.
var referenceOccupations = []string{
	"Administrator", "Artist", "Doctor", "Educator", "Engineer",
	"Entertainment", "Executive", "Healthcare", "Homemaker", "Lawyer",
	"Librarian", "Marketing", "None", "Other", "Programmer", "Retired",
	"Salesman", "Scientist", "Student", "Technician", "Writer",
}

// seedReferenceData inserts the genre and occupation reference lists when
// their tables are empty. Both lists are read-only at runtime.
func (db *DB) seedReferenceData() error {
	ctx, cancel := schemaContext()
	defer cancel()

	if err := db.seedNames(ctx, "genres", referenceGenres); err != nil {
		return err
	}
	if err := db.seedNames(ctx, "occupations", referenceOccupations); err != nil {
		return err
	}
	return nil
}

// seedNames fills a (id, name) reference table if and only if it is empty.
func (db *DB) seedNames(ctx context.Context, table string, names []string) error {
	var count int
	if err := db.conn.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&count); err != nil {
		return fmt.Errorf("failed to count %s: %w", table, err)
	}
	if count > 0 {
		return nil
	}

	for _, name := range names {
		query := fmt.Sprintf("INSERT INTO %s (name) VALUES (?)", table)
		if _, err := db.conn.ExecContext(ctx, query, name); err != nil {
			return fmt.Errorf("failed to seed %s with %q: %w", table, name, err)
		}
	}

	return nil
}
