// Movietool - Console Movie Catalog Manager
// Copyright 2026 M. Rourke (mrourke)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mrourke/movietool

package console

// Input structs collected by the menu handlers. The prompt helpers already
// constrain individual answers; validating the assembled struct catches
// anything a future handler wires up without a constrained prompt.

// NewMovieInput is the assembled input of the add-movie flow.
type NewMovieInput struct {
	Title string `validate:"required"`
}

// NewUserInput is the assembled input of the add-user flow.
type NewUserInput struct {
	Age          int64  `validate:"min=0,max=120"`
	Gender       string `validate:"required,oneof=M F N"`
	ZipCode      string `validate:"required,len=5,number"`
	OccupationID int64  `validate:"min=1"`
}

// NewRatingInput is the assembled input of the rate-movie flow.
type NewRatingInput struct {
	UserID  int64 `validate:"min=1"`
	MovieID int64 `validate:"min=1"`
	Rating  int   `validate:"min=1,max=5"`
}
