// Movietool - Console Movie Catalog Manager
// Copyright 2026 M. Rourke (mrourke)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mrourke/movietool

package console

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mrourke/movietool/internal/config"
	"github.com/mrourke/movietool/internal/database"
)

// consoleDBSemaphore serializes DuckDB access across this package's tests,
// for the same reason the database package serializes its own: concurrent
// DuckDB CGO calls can hang under CI resource pressure.
var consoleDBSemaphore = make(chan struct{}, 1)

func setupTestConsole(t *testing.T, lines ...string) (*Console, *database.DB, *bytes.Buffer) {
	t.Helper()

	consoleDBSemaphore <- struct{}{}
	t.Cleanup(func() {
		<-consoleDBSemaphore
	})

	db, err := database.New(&config.DatabaseConfig{
		Path:      ":memory:",
		MaxMemory: "512MB",
		Threads:   1,
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Failed to close test database: %v", err)
		}
	})

	var out bytes.Buffer
	exportPath := filepath.Join(t.TempDir(), "catalog.json")
	c := New(db, &scriptReader{lines: lines}, &out, exportPath)
	return c, db, &out
}

func TestRunExit(t *testing.T) {
	c, _, out := setupTestConsole(t, "11")

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out.String(), "Goodbye.") {
		t.Error("Expected a goodbye message")
	}
}

func TestRunEOFEndsSession(t *testing.T) {
	c, _, _ := setupTestConsole(t)

	if err := c.Run(context.Background()); err != nil {
		t.Errorf("Expected clean exit on exhausted input, got %v", err)
	}
}

func TestRunCancelledContext(t *testing.T) {
	c, _, _ := setupTestConsole(t, "11")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := c.Run(ctx); err != context.Canceled {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestAddMovieFlow(t *testing.T) {
	// Option 3: title, release date, one genre pick, then exit.
	c, db, out := setupTestConsole(t,
		"3",
		"the dark knight",
		"2008", "7", "18",
		"y", "1", // add genre: pick the first listed genre
		"n", // no more genres
		"11",
	)

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	movies, err := db.GetAllMovies(context.Background())
	if err != nil {
		t.Fatalf("GetAllMovies failed: %v", err)
	}
	if len(movies) != 1 {
		t.Fatalf("Expected 1 movie, got %d", len(movies))
	}
	if movies[0].Title != "The Dark Knight (2008)" {
		t.Errorf("Expected title-cased canonical title, got %q", movies[0].Title)
	}
	if len(movies[0].Genres) != 1 || movies[0].Genres[0].Name != "Action" {
		t.Errorf("Expected [Action], got %v", movies[0].Genres)
	}
	if !strings.Contains(out.String(), "Movie added:") {
		t.Error("Expected an added confirmation")
	}
}

func TestSearchFlow(t *testing.T) {
	c, db, out := setupTestConsole(t,
		"1", "batman",
		"2", "2004",
		"11",
	)

	ctx := context.Background()
	if _, err := db.InsertMovie(ctx, "Batman Begins",
		time.Date(2005, time.June, 15, 0, 0, 0, 0, time.UTC), nil); err != nil {
		t.Fatalf("InsertMovie failed: %v", err)
	}
	if _, err := db.InsertMovie(ctx, "Catwoman",
		time.Date(2004, time.July, 23, 0, 0, 0, 0, time.UTC), nil); err != nil {
		t.Fatalf("InsertMovie failed: %v", err)
	}

	if err := c.Run(ctx); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !strings.Contains(out.String(), "Batman Begins (2005)") {
		t.Error("Expected title search to find Batman Begins")
	}
	if !strings.Contains(out.String(), "Catwoman (2004)") {
		t.Error("Expected year search to find Catwoman")
	}
}

func TestAddUserAndRateFlow(t *testing.T) {
	// Option 7 registers a user, option 8 rates the seeded movie with
	// today's date, option 9/2 prints the gender report.
	c, db, out := setupTestConsole(t,
		"7", "34", "f", "60614", "5", // age, gender, zip, occupation number
		"8", "1", "1", "5", "y", // user id, movie id, rating, today
		"9", "2",
		"11",
	)

	ctx := context.Background()
	if _, err := db.InsertMovie(ctx, "Heat",
		time.Date(1995, time.December, 15, 0, 0, 0, 0, time.UTC), nil); err != nil {
		t.Fatalf("InsertMovie failed: %v", err)
	}

	if err := c.Run(ctx); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	users, err := db.GetAllUsers(ctx)
	if err != nil {
		t.Fatalf("GetAllUsers failed: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("Expected 1 user, got %d", len(users))
	}
	if users[0].Gender != "F" {
		t.Errorf("Expected gender F, got %q", users[0].Gender)
	}

	if !strings.Contains(out.String(), "Rating recorded:") {
		t.Error("Expected a rating confirmation")
	}
	if !strings.Contains(out.String(), "Female: Heat (1995) - 5/5") {
		t.Errorf("Expected gender report line, got:\n%s", out.String())
	}
}

func TestDeleteMovieFlow(t *testing.T) {
	c, db, out := setupTestConsole(t,
		"6", "1", "y",
		"11",
	)

	ctx := context.Background()
	if _, err := db.InsertMovie(ctx, "Ephemeral",
		time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC), nil); err != nil {
		t.Fatalf("InsertMovie failed: %v", err)
	}

	if err := c.Run(ctx); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	count, err := db.CountMovies(ctx)
	if err != nil {
		t.Fatalf("CountMovies failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected empty catalog after delete, got %d", count)
	}
	if !strings.Contains(out.String(), "Movie deleted.") {
		t.Error("Expected a deletion confirmation")
	}
}

func TestDeleteMovieDeclined(t *testing.T) {
	c, db, out := setupTestConsole(t,
		"6", "1", "n",
		"11",
	)

	ctx := context.Background()
	if _, err := db.InsertMovie(ctx, "Kept",
		time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC), nil); err != nil {
		t.Fatalf("InsertMovie failed: %v", err)
	}

	if err := c.Run(ctx); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	count, err := db.CountMovies(ctx)
	if err != nil {
		t.Fatalf("CountMovies failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Declined delete removed the movie")
	}
	if !strings.Contains(out.String(), "Nothing was deleted.") {
		t.Error("Expected a nothing-deleted message")
	}
}

func TestUpdateTitleFlow(t *testing.T) {
	c, db, _ := setupTestConsole(t,
		"5", "1", "1", "new name",
		"11",
	)

	ctx := context.Background()
	if _, err := db.InsertMovie(ctx, "Old Name",
		time.Date(2005, time.March, 12, 0, 0, 0, 0, time.UTC), nil); err != nil {
		t.Fatalf("InsertMovie failed: %v", err)
	}

	if err := c.Run(ctx); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	movie, err := db.GetMovieByID(ctx, 1)
	if err != nil {
		t.Fatalf("GetMovieByID failed: %v", err)
	}
	if movie.Title != "New Name (2005)" {
		t.Errorf("Expected %q, got %q", "New Name (2005)", movie.Title)
	}
}

func TestUpdateMovieUnknownID(t *testing.T) {
	c, _, out := setupTestConsole(t,
		"5", "42",
		"11",
	)

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out.String(), "Not found") {
		t.Error("Expected a not-found message")
	}
}

func TestExportFlow(t *testing.T) {
	c, db, out := setupTestConsole(t,
		"10",
		"11",
	)

	ctx := context.Background()
	if _, err := db.InsertMovie(ctx, "Exported",
		time.Date(2019, time.April, 5, 0, 0, 0, 0, time.UTC), nil); err != nil {
		t.Fatalf("InsertMovie failed: %v", err)
	}

	if err := c.Run(ctx); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out.String(), "Catalog exported to") {
		t.Error("Expected an export confirmation")
	}
}
