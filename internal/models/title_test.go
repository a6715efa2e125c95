// Movietool - Console Movie Catalog Manager
// Copyright 2026 M. Rourke (mrourke)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mrourke/movietool

package models

import (
	"testing"
)

func TestCanonicalTitle(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		year     string
		expected string
	}{
		{"plain title", "Inception", "2010", "Inception (2010)"},
		{"title with spaces", "  The Matrix  ", "1999", "The Matrix (1999)"},
		{"multi word", "Batman Begins", "2005", "Batman Begins (2005)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanonicalTitle(tt.title, tt.year); got != tt.expected {
				t.Errorf("CanonicalTitle(%q, %q) = %q, want %q", tt.title, tt.year, got, tt.expected)
			}
		})
	}
}

func TestReplaceTitleYear(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		year     int
		expected string
	}{
		{"replace existing year", "Old Name (2005)", 2009, "Old Name (2009)"},
		{"trims prefix", "Old Name  (2005)", 2009, "Old Name (2009)"},
		{"no embedded year appends", "Bare Title", 2001, "Bare Title (2001)"},
		{"only first year replaced", "2001 A Space Odyssey (1968)", 1970, "2001 A Space Odyssey (1970)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReplaceTitleYear(tt.title, tt.year); got != tt.expected {
				t.Errorf("ReplaceTitleYear(%q, %d) = %q, want %q", tt.title, tt.year, got, tt.expected)
			}
		})
	}
}

func TestReplaceTitleYearFirstParenthesizedYearWins(t *testing.T) {
	// A four-digit run inside the name itself is only matched when
	// parenthesized; bare digits are left alone.
	got := ReplaceTitleYear("Blade Runner 2049 (2017)", 2018)
	if got != "Blade Runner 2049 (2018)" {
		t.Errorf("ReplaceTitleYear = %q, want %q", got, "Blade Runner 2049 (2018)")
	}
}

func TestStripTitleYear(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"Batman Begins (2005)", "Batman Begins"},
		{"No Year Here", "No Year Here"},
		{"Blade Runner 2049 (2017)", "Blade Runner 2049"},
	}

	for _, tt := range tests {
		if got := StripTitleYear(tt.title); got != tt.expected {
			t.Errorf("StripTitleYear(%q) = %q, want %q", tt.title, got, tt.expected)
		}
	}
}

func TestTitleYear(t *testing.T) {
	tests := []struct {
		title string
		year  int
		ok    bool
	}{
		{"Inception (2010)", 2010, true},
		{"No Year", 0, false},
		{"Short (99)", 0, false},
	}

	for _, tt := range tests {
		year, ok := TitleYear(tt.title)
		if year != tt.year || ok != tt.ok {
			t.Errorf("TitleYear(%q) = (%d, %v), want (%d, %v)", tt.title, year, ok, tt.year, tt.ok)
		}
	}
}

func TestGenderLabel(t *testing.T) {
	tests := []struct {
		code     string
		expected string
	}{
		{"M", "Male"},
		{"F", "Female"},
		{"N", "Non-Binary"},
		{"X", "X"}, // unknown codes pass through verbatim
		{"", ""},
	}

	for _, tt := range tests {
		if got := GenderLabel(tt.code); got != tt.expected {
			t.Errorf("GenderLabel(%q) = %q, want %q", tt.code, got, tt.expected)
		}
	}
}
