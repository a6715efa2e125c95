// Movietool - Console Movie Catalog Manager
// Copyright 2026 M. Rourke (mrourke)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mrourke/movietool

/*
crud_users.go - User and Rating Operations

Users are created once and never mutated. Rating events are append-only:
the same user may rate the same movie again and both events are kept, which
also means re-running a top-movie report never changes past results.
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

// InsertUser registers a new user. The occupation id must resolve against
// the fixed occupation list; ErrNotFound is returned otherwise.
func (db *DB) InsertUser(ctx context.Context, age int64, gender, zipCode string, occupationID int64) (int64, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var exists bool
	err := db.conn.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM occupations WHERE id = ?)`, occupationID).Scan(&exists)
	if err != nil {
		return 0, fmt.Errorf("failed to check occupation %d: %w", occupationID, err)
	}
	if !exists {
		return 0, fmt.Errorf("%w: occupation id %d", ErrNotFound, occupationID)
	}

	var userID int64
	err = db.conn.QueryRowContext(ctx,
		`INSERT INTO users (age, gender, zip_code, occupation_id) VALUES (?, ?, ?, ?) RETURNING id`,
		age, gender, zipCode, occupationID).Scan(&userID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}

	logging.Info().
		Int64("user_id", userID).
		Str("gender", gender).
		Int64("occupation_id", occupationID).
		Msg("User registered")

	return userID, nil
}

// GetUserByID returns one user with their occupation resolved. Returns
// ErrNotFound when the id does not resolve.
func (db *DB) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var u models.User
	err := db.conn.QueryRowContext(ctx, `
		SELECT u.id, u.age, u.gender, u.zip_code, u.created_at, o.id, o.name
		FROM users u
		JOIN occupations o ON o.id = u.occupation_id
		WHERE u.id = ?`, userID).
		Scan(&u.ID, &u.Age, &u.Gender, &u.ZipCode, &u.CreatedAt,
			&u.Occupation.ID, &u.Occupation.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: user id %d", ErrNotFound, userID)
		}
		return nil, fmt.Errorf("failed to load user %d: %w", userID, err)
	}
	return &u, nil
}

// GetAllUsers returns all registered users ordered by id, with occupations
// resolved.
func (db *DB) GetAllUsers(ctx context.Context) ([]models.User, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx, `
		SELECT u.id, u.age, u.gender, u.zip_code, u.created_at, o.id, o.name
		FROM users u
		JOIN occupations o ON o.id = u.occupation_id
		ORDER BY u.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer closeWithLog(rows, "rows")

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Age, &u.Gender, &u.ZipCode, &u.CreatedAt,
			&u.Occupation.ID, &u.Occupation.Name); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}
	return users, nil
}

// GetOccupations returns the fixed occupation reference list ordered by id.
func (db *DB) GetOccupations(ctx context.Context) ([]models.Occupation, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx, `SELECT id, name FROM occupations ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query occupations: %w", err)
	}
	defer closeWithLog(rows, "rows")

	var occupations []models.Occupation
	for rows.Next() {
		var o models.Occupation
		if err := rows.Scan(&o.ID, &o.Name); err != nil {
			return nil, fmt.Errorf("failed to scan occupation: %w", err)
		}
		occupations = append(occupations, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate occupations: %w", err)
	}
	return occupations, nil
}

// InsertRating appends a rating event for an existing user and movie. The
// rated date defaults to today when zero. Repeat ratings by the same user
// for the same movie are kept as separate events.
func (db *DB) InsertRating(ctx context.Context, userID, movieID int64, rating int, ratedAt time.Time) (int64, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	if _, err := db.GetUserByID(ctx, userID); err != nil {
		return 0, err
	}
	if _, err := db.GetMovieByID(ctx, movieID); err != nil {
		return 0, err
	}

	if ratedAt.IsZero() {
		ratedAt = time.Now().UTC()
	}

	var ratingID int64
	err := db.conn.QueryRowContext(ctx,
		`INSERT INTO user_movies (user_id, movie_id, rating, rated_at) VALUES (?, ?, ?, ?) RETURNING id`,
		userID, movieID, rating, ratedAt).Scan(&ratingID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert rating: %w", err)
	}

	logging.Info().
		Int64("rating_id", ratingID).
		Int64("user_id", userID).
		Int64("movie_id", movieID).
		Int("rating", rating).
		Msg("Rating recorded")

	return ratingID, nil
}
