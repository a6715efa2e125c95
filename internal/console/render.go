// Movietool - Console Movie Catalog Manager
// Copyright 2026 M. Rourke (mrourke)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mrourke/movietool

package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/mrourke/movietool/internal/models"
)

// releaseDateLayout is the display form of release dates.
const releaseDateLayout = "January 02, 2006"

// renderMovie writes one movie's details: id, canonical title, release
// date and comma-separated genre names.
func renderMovie(w io.Writer, m *models.Movie) {
	fmt.Fprintf(w, "Movie ID: %d\n", m.ID)
	fmt.Fprintf(w, "Title: %s\n", m.Title)
	fmt.Fprintf(w, "Release Date: %s\n", m.ReleaseDate.Format(releaseDateLayout))
	if len(m.Genres) > 0 {
		names := make([]string, len(m.Genres))
		for i, g := range m.Genres {
			names[i] = g.Name
		}
		fmt.Fprintf(w, "Genre(s): %s\n", strings.Join(names, ", "))
	}
}

// renderMovieList writes a sequence of movies separated by blank lines.
func renderMovieList(w io.Writer, movies []models.Movie) {
	if len(movies) == 0 {
		fmt.Fprintln(w, "No movies found.")
		return
	}
	for i := range movies {
		renderMovie(w, &movies[i])
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "%d movie(s) found.\n", len(movies))
}

// renderUser writes one user's details with the occupation resolved.
func renderUser(w io.Writer, u *models.User) {
	fmt.Fprintf(w, "User ID: %d\n", u.ID)
	fmt.Fprintf(w, "Age: %d\n", u.Age)
	fmt.Fprintf(w, "Gender: %s\n", models.GenderLabel(u.Gender))
	fmt.Fprintf(w, "Zip Code: %s\n", u.ZipCode)
	fmt.Fprintf(w, "Occupation: %s\n", u.Occupation.Name)
}

// renderRatingConfirmation writes the user, movie and score of a freshly
// recorded rating.
func renderRatingConfirmation(w io.Writer, u *models.User, m *models.Movie, rating int) {
	fmt.Fprintln(w, "Rating recorded:")
	fmt.Fprintf(w, "  User %d (%d, %s, %s)\n", u.ID, u.Age, models.GenderLabel(u.Gender), u.Occupation.Name)
	fmt.Fprintf(w, "  %s\n", m.Title)
	fmt.Fprintf(w, "  %d of 5\n", rating)
}

// renderReport writes top-rated report rows as "{group}: {title} - {rating}/5".
// The label function maps the stored group value to its display form; gender
// reports pass models.GenderLabel, occupation reports pass identity.
func renderReport(w io.Writer, rows []models.TopRatedMovie, label func(string) string) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No ratings recorded yet.")
		return
	}
	for _, row := range rows {
		fmt.Fprintf(w, "%s: %s - %d/5\n", label(row.Group), row.Title, row.Rating)
	}
}

// renderGenres writes the genre reference list as numbered rows.
func renderGenres(w io.Writer, genres []models.Genre) {
	for _, g := range genres {
		fmt.Fprintf(w, "%3d. %s\n", g.ID, g.Name)
	}
}

// renderOccupations writes the occupation reference list as numbered rows.
func renderOccupations(w io.Writer, occupations []models.Occupation) {
	for _, o := range occupations {
		fmt.Fprintf(w, "%3d. %s\n", o.ID, o.Name)
	}
}
