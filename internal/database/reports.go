// Movietool - Console Movie Catalog Manager
// Copyright 2026 M. Rourke (mrourke)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mrourke/movietool

/*
reports.go - Top-Rated Movie Reports

Both reports answer the same shape of question: for every group, which
single movie received the highest rating? A window function finds the per
group maximum; ties at that maximum resolve to the alphabetically first
title, which keeps the reports deterministic across runs.

Groups with no rating events are simply absent from the result.
*/

//nolint:staticcheck // File documentation, not package doc
package database

import (
	"context"
	"fmt"

	"github.com/mrourke/movietool/internal/models"
)

// TopMoviesByOccupation returns, for each occupation with at least one
// rating event, the highest-rated movie. Ties at the maximum rating go to
// the alphabetically first title. Rows are ordered by occupation name.
func (db *DB) TopMoviesByOccupation(ctx context.Context) ([]models.TopRatedMovie, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `
		WITH rated AS (
			SELECT o.name AS grp, m.title AS title, um.rating AS rating,
			       MAX(um.rating) OVER (PARTITION BY o.name) AS max_rating
			FROM user_movies um
			JOIN users u ON u.id = um.user_id
			JOIN occupations o ON o.id = u.occupation_id
			JOIN movies m ON m.id = um.movie_id
		)
		SELECT grp, MIN(title) AS title, max_rating
		FROM rated
		WHERE rating = max_rating
		GROUP BY grp, max_rating
		ORDER BY grp`

	return db.queryTopRated(ctx, query)
}

// TopMoviesByGender returns, for each gender code with at least one rating
// event, the highest-rated movie, with the same tie rule as the occupation
// report. Rows are ordered by gender code. Display labels for the codes
// are the console layer's concern.
func (db *DB) TopMoviesByGender(ctx context.Context) ([]models.TopRatedMovie, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `
		WITH rated AS (
			SELECT u.gender AS grp, m.title AS title, um.rating AS rating,
			       MAX(um.rating) OVER (PARTITION BY u.gender) AS max_rating
			FROM user_movies um
			JOIN users u ON u.id = um.user_id
			JOIN movies m ON m.id = um.movie_id
		)
		SELECT grp, MIN(title) AS title, max_rating
		FROM rated
		WHERE rating = max_rating
		GROUP BY grp, max_rating
		ORDER BY grp`

	return db.queryTopRated(ctx, query)
}

// queryTopRated runs one of the report queries and scans its rows.
func (db *DB) queryTopRated(ctx context.Context, query string) ([]models.TopRatedMovie, error) {
	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to run top-rated report: %w", err)
	}
	defer closeWithLog(rows, "rows")

	var results []models.TopRatedMovie
	for rows.Next() {
		var r models.TopRatedMovie
		if err := rows.Scan(&r.Group, &r.Title, &r.Rating); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate report rows: %w", err)
	}
	return results, nil
}
