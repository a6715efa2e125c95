// Movietool - Console Movie Catalog Manager
// Copyright 2026 M. Rourke (mrourke)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mrourke/movietool

/*
Package database provides DuckDB-backed persistence for the movie catalog.

The DB type wraps a database/sql connection to an embedded DuckDB file (or
an in-memory database for tests) and exposes every read and write operation
the console layer needs. The handle is created once per session in main()
and passed explicitly to whoever needs it; there is no package-level state.

File organization:

  - database.go: DB type, connection lifecycle, context defaults
  - database_schema.go: table/sequence/index creation and reference seeding
  - errors.go: sentinel errors and close helpers
  - crud_movies.go: movie mutations (insert, title/year/date updates,
    genre attach/detach, delete)
  - crud_users.go: user registration and rating events
  - query_movies.go: search, listing and lookup reads
  - reports.go: top-rated-movie aggregations by occupation and gender
  - export.go: JSON catalog export

Mutations that touch more than one row run inside a transaction so a failed
write never leaves the title/year invariant or the genre-uniqueness
invariant violated. Reads always hit the store directly; nothing is cached.
*/
package database
