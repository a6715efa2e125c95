// Movietool - Console Movie Catalog Manager
// Copyright 2026 M. Rourke (mrourke)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mrourke/movietool

package models

import (
	"time"
)

// Movie represents a catalog entry. Genres are loaded in attachment order,
// which is also the order the console displays them in; positional genre
// deletion depends on that ordering.
type Movie struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"` // canonical form: "Name (YYYY)"
	ReleaseDate time.Time `json:"release_date"`
	CreatedAt   time.Time `json:"created_at"`
	Genres      []Genre   `json:"genres,omitempty"`
}

// Genre is one entry of the fixed genre reference list.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Occupation is one entry of the fixed occupation reference list.
type Occupation struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// User represents a registered rater. Users are created once and never
// mutated or deleted by this tool.
type User struct {
	ID         int64      `json:"id"`
	Age        int64      `json:"age"`
	Gender     string     `json:"gender"` // M, F or N
	ZipCode    string     `json:"zip_code"`
	Occupation Occupation `json:"occupation"`
	CreatedAt  time.Time  `json:"created_at"`
}

// UserMovie is a single rating event: one user's 1-5 score for one movie.
// Rating events are append-only.
type UserMovie struct {
	ID      int64     `json:"id"`
	User    User      `json:"user"`
	Movie   Movie     `json:"movie"`
	Rating  int       `json:"rating"`
	RatedAt time.Time `json:"rated_at"`
}

// TopRatedMovie is one row of a top-movie report: the highest-rated movie
// within a group (an occupation name or a gender code), with ties at the
// maximum rating resolved by alphabetical title.
type TopRatedMovie struct {
	Group  string `json:"group"`
	Title  string `json:"title"`
	Rating int    `json:"rating"`
}

// GenderLabel maps a stored gender code to its display label. Unknown codes
// are passed through verbatim.
func GenderLabel(code string) string {
	switch code {
	case "M":
		return "Male"
	case "F":
		return "Female"
	case "N":
		return "Non-Binary"
	default:
		return code
	}
}

// CatalogExport is the top-level shape of the JSON catalog export.
type CatalogExport struct {
	GeneratedAt time.Time     `json:"generated_at"`
	MovieCount  int           `json:"movie_count"`
	Movies      []MovieExport `json:"movies"`
}

// MovieExport is one exported movie with its genres and rating summary.
type MovieExport struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	ReleaseDate   string   `json:"release_date"` // YYYY-MM-DD
	Genres        []string `json:"genres,omitempty"`
	RatingCount   int      `json:"rating_count"`
	AverageRating float64  `json:"average_rating,omitempty"`
}
