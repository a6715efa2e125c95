// Movietool - Console Movie Catalog Manager
// Copyright 2026 M. Rourke (mrourke)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mrourke/movietool

/*
menu.go - Interactive Menu Loop

The loop shows the main menu, dispatches one handler per choice, and
repeats until the operator exits, input runs out or the context is
cancelled. Handlers translate the catalog's sentinel errors into plain
messages and never abort the session; only infrastructure failures
propagate out of Run.
*/

//nolint:staticcheck // File documentation, not package doc
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mrourke/movietool/internal/database"
	"github.com/mrourke/movietool/internal/logging"
	"github.com/mrourke/movietool/internal/models"
	"github.com/mrourke/movietool/internal/validation"
)

// maxIDInput bounds id prompts; DuckDB sequences start at 1 and a catalog
// will never approach this.
const maxIDInput = 1 << 31

// Console drives the interactive session against one open catalog.
type Console struct {
	db         *database.DB
	prompter   *Prompter
	out        io.Writer
	exportPath string
}

// New creates a Console reading from in, writing to out, and exporting to
// exportPath when the operator asks for a JSON export.
func New(db *database.DB, in InputReader, out io.Writer, exportPath string) *Console {
	return &Console{
		db:         db,
		prompter:   NewPrompter(in, out),
		out:        out,
		exportPath: exportPath,
	}
}

// Run executes the menu loop until the operator exits. Exhausted input
// (io.EOF) and context cancellation both end the session cleanly.
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "Welcome to the movie catalog manager.")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.printMenu()
		choice, err := c.prompter.IntInRange("Select an option: ", 1, 11)
		if err != nil {
			return c.finish(err)
		}

		var handlerErr error
		switch choice {
		case 1:
			handlerErr = c.searchByTitle(ctx)
		case 2:
			handlerErr = c.searchByYear(ctx)
		case 3:
			handlerErr = c.addMovie(ctx)
		case 4:
			handlerErr = c.listMovies(ctx)
		case 5:
			handlerErr = c.updateMovie(ctx)
		case 6:
			handlerErr = c.deleteMovie(ctx)
		case 7:
			handlerErr = c.addUser(ctx)
		case 8:
			handlerErr = c.rateMovie(ctx)
		case 9:
			handlerErr = c.reports(ctx)
		case 10:
			handlerErr = c.exportCatalog(ctx)
		case 11:
			fmt.Fprintln(c.out, "Goodbye.")
			return nil
		}
		if handlerErr != nil {
			return c.finish(handlerErr)
		}
		fmt.Fprintln(c.out)
	}
}

// finish maps end-of-input to a clean exit.
func (c *Console) finish(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(c.out, "\nGoodbye.")
		return nil
	}
	return err
}

func (c *Console) printMenu() {
	fmt.Fprint(c.out, `
Main Menu
  1) Search movies by title
  2) Search movies by year
  3) Add a movie
  4) List movies
  5) Update a movie
  6) Delete a movie
  7) Add a user
  8) Rate a movie
  9) Top rated movie reports
 10) Export catalog to JSON
 11) Exit
`)
}

// reportCatalogError prints a plain message for the sentinel errors a
// handler can run into and reports whether the error was handled. Anything
// else is an infrastructure failure the caller propagates.
func (c *Console) reportCatalogError(err error) bool {
	switch {
	case errors.Is(err, database.ErrNotFound):
		fmt.Fprintf(c.out, "Not found: %v\n", err)
	case errors.Is(err, database.ErrDuplicateTitle):
		fmt.Fprintln(c.out, "A movie with that title already exists. Nothing was added.")
	case errors.Is(err, database.ErrDuplicateGenre):
		fmt.Fprintln(c.out, "That genre is already on the movie. Nothing was changed.")
	case errors.Is(err, database.ErrInvalidDate):
		fmt.Fprintln(c.out, "That change would produce a date that does not exist. Nothing was changed.")
	case errors.Is(err, database.ErrMovieHasRatings):
		fmt.Fprintln(c.out, "That movie has ratings and cannot be deleted.")
	default:
		return false
	}
	return true
}

func (c *Console) searchByTitle(ctx context.Context) error {
	text, err := c.prompter.NonEmptyLine("Enter a title to search for: ")
	if err != nil {
		return err
	}

	movies, err := c.db.SearchMovies(ctx, text)
	if err != nil {
		return err
	}
	renderMovieList(c.out, movies)
	return nil
}

func (c *Console) searchByYear(ctx context.Context) error {
	year, err := c.prompter.Year("Enter a release year to search for: ")
	if err != nil {
		return err
	}

	movies, err := c.db.SearchMoviesByYear(ctx, year)
	if err != nil {
		return err
	}
	renderMovieList(c.out, movies)
	return nil
}

func (c *Console) addMovie(ctx context.Context) error {
	rawTitle, err := c.prompter.NonEmptyLine("Enter the movie title: ")
	if err != nil {
		return err
	}
	title := TitleCase(rawTitle)

	input := NewMovieInput{Title: title}
	if verr := validation.ValidateStruct(&input); verr != nil {
		c.printValidationErrors(verr)
		return nil
	}

	releaseDate, err := c.prompter.ReleaseDate()
	if err != nil {
		return err
	}

	genreIDs, err := c.collectGenres(ctx, nil)
	if err != nil {
		return err
	}

	movieID, err := c.db.InsertMovie(ctx, title, releaseDate, genreIDs)
	if err != nil {
		if c.reportCatalogError(err) {
			return nil
		}
		return err
	}

	movie, err := c.db.GetMovieByID(ctx, movieID)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Movie added:")
	renderMovie(c.out, movie)
	return nil
}

// collectGenres shows the genre list and gathers picks until the operator
// declines to add another. Genres already attached (or already picked) are
// refused with a message instead of a round-trip failure later.
func (c *Console) collectGenres(ctx context.Context, existing []models.Genre) ([]int64, error) {
	genres, err := c.db.GetGenres(ctx)
	if err != nil {
		return nil, err
	}

	taken := make(map[int64]bool, len(existing))
	for _, g := range existing {
		taken[g.ID] = true
	}

	var picked []int64
	for {
		more, err := c.prompter.YesNo("Add a genre (Y/N)? ")
		if err != nil {
			return nil, err
		}
		if !more {
			return picked, nil
		}

		renderGenres(c.out, genres)
		n, err := c.prompter.IntInRange("Enter the genre number: ", 1, len(genres))
		if err != nil {
			return nil, err
		}
		id := genres[n-1].ID
		if taken[id] {
			fmt.Fprintln(c.out, "That genre is already on the movie.")
			continue
		}
		taken[id] = true
		picked = append(picked, id)
	}
}

func (c *Console) listMovies(ctx context.Context) error {
	all, err := c.prompter.YesNo("List the entire catalog (Y/N)? ")
	if err != nil {
		return err
	}

	if all {
		movies, err := c.db.GetAllMovies(ctx)
		if err != nil {
			return err
		}
		renderMovieList(c.out, movies)
		return nil
	}

	count, err := c.db.CountMovies(ctx)
	if err != nil {
		return err
	}
	if count == 0 {
		fmt.Fprintln(c.out, "No movies found.")
		return nil
	}
	n, err := c.prompter.IntInRange(fmt.Sprintf("How many movies (1-%d)? ", count), 1, count)
	if err != nil {
		return err
	}
	movies, err := c.db.GetTopMovies(ctx, n)
	if err != nil {
		return err
	}
	renderMovieList(c.out, movies)
	return nil
}

func (c *Console) updateMovie(ctx context.Context) error {
	movie, err := c.promptMovie(ctx)
	if err != nil || movie == nil {
		return err
	}
	renderMovie(c.out, movie)

	fmt.Fprint(c.out, `
Update
  1) Title
  2) Release year
  3) Release date
  4) Add genres
  5) Remove a genre
`)
	choice, err := c.prompter.IntInRange("Select an option: ", 1, 5)
	if err != nil {
		return err
	}

	var changed bool
	switch choice {
	case 1:
		changed, err = c.updateTitle(ctx, movie)
	case 2:
		changed, err = c.updateReleaseYear(ctx, movie)
	case 3:
		changed, err = c.updateReleaseDate(ctx, movie)
	case 4:
		changed, err = c.addGenres(ctx, movie)
	case 5:
		changed, err = c.removeGenre(ctx, movie)
	}
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	updated, err := c.db.GetMovieByID(ctx, movie.ID)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Movie updated:")
	renderMovie(c.out, updated)
	return nil
}

func (c *Console) updateTitle(ctx context.Context, movie *models.Movie) (bool, error) {
	rawTitle, err := c.prompter.NonEmptyLine("Enter the new title: ")
	if err != nil {
		return false, err
	}
	if err := c.db.UpdateMovieTitle(ctx, movie.ID, TitleCase(rawTitle)); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Console) updateReleaseYear(ctx context.Context, movie *models.Movie) (bool, error) {
	year, err := c.prompter.Year("Enter the new release year: ")
	if err != nil {
		return false, err
	}
	if err := c.db.UpdateMovieReleaseYear(ctx, movie.ID, year); err != nil {
		if c.reportCatalogError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (c *Console) updateReleaseDate(ctx context.Context, movie *models.Movie) (bool, error) {
	date, err := c.prompter.ReleaseDate()
	if err != nil {
		return false, err
	}
	if err := c.db.UpdateMovieReleaseDate(ctx, movie.ID, date); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Console) addGenres(ctx context.Context, movie *models.Movie) (bool, error) {
	genreIDs, err := c.collectGenres(ctx, movie.Genres)
	if err != nil {
		return false, err
	}
	if len(genreIDs) == 0 {
		return false, nil
	}
	if err := c.db.AddMovieGenres(ctx, movie.ID, genreIDs); err != nil {
		if c.reportCatalogError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (c *Console) removeGenre(ctx context.Context, movie *models.Movie) (bool, error) {
	if len(movie.Genres) == 0 {
		fmt.Fprintln(c.out, "The movie has no genres.")
		return false, nil
	}
	for i, g := range movie.Genres {
		fmt.Fprintf(c.out, "%3d. %s\n", i+1, g.Name)
	}
	position, err := c.prompter.IntInRange("Enter the genre position to remove: ", 1, len(movie.Genres))
	if err != nil {
		return false, err
	}
	if err := c.db.DeleteMovieGenreAt(ctx, movie.ID, position); err != nil {
		if c.reportCatalogError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (c *Console) deleteMovie(ctx context.Context) error {
	movie, err := c.promptMovie(ctx)
	if err != nil || movie == nil {
		return err
	}
	renderMovie(c.out, movie)

	confirmed, err := c.prompter.YesNo("Delete this movie (Y/N)? ")
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(c.out, "Nothing was deleted.")
		return nil
	}

	if err := c.db.DeleteMovie(ctx, movie.ID); err != nil {
		if c.reportCatalogError(err) {
			return nil
		}
		return err
	}
	fmt.Fprintln(c.out, "Movie deleted.")
	return nil
}

func (c *Console) addUser(ctx context.Context) error {
	age, err := c.prompter.IntInRange("Enter the user's age: ", 0, 120)
	if err != nil {
		return err
	}
	gender, err := c.prompter.Gender("Enter the user's gender (M/F/N): ")
	if err != nil {
		return err
	}
	zip, err := c.prompter.ZipCode("Enter the user's zip code: ")
	if err != nil {
		return err
	}

	occupations, err := c.db.GetOccupations(ctx)
	if err != nil {
		return err
	}
	renderOccupations(c.out, occupations)
	n, err := c.prompter.IntInRange("Enter the occupation number: ", 1, len(occupations))
	if err != nil {
		return err
	}
	occupationID := occupations[n-1].ID

	input := NewUserInput{
		Age:          int64(age),
		Gender:       gender,
		ZipCode:      zip,
		OccupationID: occupationID,
	}
	if verr := validation.ValidateStruct(&input); verr != nil {
		c.printValidationErrors(verr)
		return nil
	}

	userID, err := c.db.InsertUser(ctx, input.Age, input.Gender, input.ZipCode, input.OccupationID)
	if err != nil {
		if c.reportCatalogError(err) {
			return nil
		}
		return err
	}

	user, err := c.db.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, "User registered:")
	renderUser(c.out, user)
	return nil
}

func (c *Console) rateMovie(ctx context.Context) error {
	userID, err := c.prompter.IntInRange("Enter the user ID: ", 1, maxIDInput)
	if err != nil {
		return err
	}
	user, err := c.db.GetUserByID(ctx, int64(userID))
	if err != nil {
		if c.reportCatalogError(err) {
			return nil
		}
		return err
	}

	movie, err := c.promptMovie(ctx)
	if err != nil || movie == nil {
		return err
	}
	renderMovie(c.out, movie)

	rating, err := c.prompter.IntInRange("Enter a rating (1-5): ", 1, 5)
	if err != nil {
		return err
	}

	input := NewRatingInput{UserID: user.ID, MovieID: movie.ID, Rating: rating}
	if verr := validation.ValidateStruct(&input); verr != nil {
		c.printValidationErrors(verr)
		return nil
	}

	today, err := c.prompter.YesNo("Use today's date (Y/N)? ")
	if err != nil {
		return err
	}
	var ratedAt time.Time
	if !today {
		ratedAt, err = c.prompter.RatedDate()
		if err != nil {
			return err
		}
	}

	if _, err := c.db.InsertRating(ctx, user.ID, movie.ID, rating, ratedAt); err != nil {
		if c.reportCatalogError(err) {
			return nil
		}
		return err
	}
	renderRatingConfirmation(c.out, user, movie, rating)
	return nil
}

func (c *Console) reports(ctx context.Context) error {
	fmt.Fprint(c.out, `
Reports
  1) Top rated movie by occupation
  2) Top rated movie by gender
`)
	choice, err := c.prompter.IntInRange("Select an option: ", 1, 2)
	if err != nil {
		return err
	}

	var rows []models.TopRatedMovie
	label := func(s string) string { return s }
	switch choice {
	case 1:
		rows, err = c.db.TopMoviesByOccupation(ctx)
	case 2:
		rows, err = c.db.TopMoviesByGender(ctx)
		label = models.GenderLabel
	}
	if err != nil {
		return err
	}
	renderReport(c.out, rows, label)
	return nil
}

func (c *Console) exportCatalog(ctx context.Context) error {
	f, err := os.Create(c.exportPath)
	if err != nil {
		return fmt.Errorf("failed to create export file %s: %w", c.exportPath, err)
	}

	if err := c.db.ExportCatalogJSON(ctx, f); err != nil {
		if cerr := f.Close(); cerr != nil {
			logging.Warn().Err(cerr).Msg("Failed to close export file")
		}
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close export file %s: %w", c.exportPath, err)
	}

	fmt.Fprintf(c.out, "Catalog exported to %s.\n", c.exportPath)
	return nil
}

// promptMovie asks for a movie id and loads the movie. A missing id prints
// a message and returns (nil, nil) so the handler can bail out quietly.
func (c *Console) promptMovie(ctx context.Context) (*models.Movie, error) {
	id, err := c.prompter.IntInRange("Enter the movie ID: ", 1, maxIDInput)
	if err != nil {
		return nil, err
	}
	movie, err := c.db.GetMovieByID(ctx, int64(id))
	if err != nil {
		if c.reportCatalogError(err) {
			return nil, nil
		}
		return nil, err
	}
	return movie, nil
}

func (c *Console) printValidationErrors(verr *validation.InputValidationError) {
	for _, msg := range verr.Messages() {
		fmt.Fprintln(c.out, msg)
	}
}
