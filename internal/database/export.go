// Movietool - Console Movie Catalog Manager
// Copyright 2026 M. Rourke (mrourke)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mrourke/movietool

package database

import (
	"context"
	"fmt"
	"io"
	"time"

	json "github.com/goccy/go-json"

	"github.com/mrourke/movietool/internal/models"
)

// ExportCatalogJSON writes the full catalog as indented JSON: every movie
// with its genres, rating count and average rating.
func (db *DB) ExportCatalogJSON(ctx context.Context, w io.Writer) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	movies, err := db.GetAllMovies(ctx)
	if err != nil {
		return err
	}

	export := models.CatalogExport{
		GeneratedAt: time.Now().UTC(),
		MovieCount:  len(movies),
		Movies:      make([]models.MovieExport, 0, len(movies)),
	}

	for _, m := range movies {
		count, avg, err := db.ratingSummary(ctx, m.ID)
		if err != nil {
			return err
		}

		me := models.MovieExport{
			ID:            m.ID,
			Title:         m.Title,
			ReleaseDate:   m.ReleaseDate.Format("2006-01-02"),
			RatingCount:   count,
			AverageRating: avg,
		}
		for _, g := range m.Genres {
			me.Genres = append(me.Genres, g.Name)
		}
		export.Movies = append(export.Movies, me)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(export); err != nil {
		return fmt.Errorf("failed to encode catalog export: %w", err)
	}
	return nil
}

// ratingSummary returns the rating event count and mean rating for a movie.
// The mean is zero when the movie has no rating events.
func (db *DB) ratingSummary(ctx context.Context, movieID int64) (int, float64, error) {
	var count int
	var avg float64
	err := db.conn.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(AVG(rating), 0) FROM user_movies WHERE movie_id = ?`,
		movieID).Scan(&count, &avg)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to summarize ratings for movie %d: %w", movieID, err)
	}
	return count, avg, nil
}
