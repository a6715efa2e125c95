// Movietool - Console Movie Catalog Manager
// Copyright 2026 M. Rourke (mrourke)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mrourke/movietool

/*
Package models defines data structures for the Movietool application.

This package contains all data models shared between the database layer and
the console layer, plus the canonical-title helpers that keep a movie's
display title consistent with its release date.

Key Components:

  - Movie: Catalog entry with genre associations eagerly loaded
  - Genre / Occupation: Fixed reference lists, read-only at runtime
  - User: Registered rater (age, gender code, zip code, occupation)
  - UserMovie: A single rating event (1-5) with its rating date
  - TopRatedMovie: One row of the top-movie-by-occupation/gender reports
  - CatalogExport: Shape of the JSON catalog export

Canonical Title:

A movie's title is stored as "Name (YYYY)" where YYYY always matches the
release date's year. The release date is the source of truth; the embedded
year is a cached rendering recomputed on every mutation that touches either
field. CanonicalTitle, ReplaceTitleYear, StripTitleYear and TitleYear
implement that convention in one place.
*/
package models
