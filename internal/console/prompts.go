// Movietool - Console Movie Catalog Manager
// Copyright 2026 M. Rourke (mrourke)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mrourke/movietool

/*
prompts.go - Re-Prompting Input Helpers

Every helper loops until it gets a valid answer or input runs out; an
io.EOF from the reader propagates so the menu loop can shut down instead
of spinning on an exhausted stream. Calendar-aware day bounds live here:
February always allows 29 so a leap-day release can be entered, with the
full date checked against the calendar at the end.
*/

//nolint:staticcheck // File documentation, not package doc
package console

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// yearPattern accepts four-digit years from 1900 onward. The upper bound
// against the current year is checked separately.
var yearPattern = regexp.MustCompile(`^(19|20)\d{2}$`)

// titleCaser capitalizes the first letter of each word without lowering
// the rest, so an entered "WALL-E" survives intact.
var titleCaser = cases.Title(language.AmericanEnglish, cases.NoLower)

// Prompter collects validated input from an InputReader, writing prompts
// and re-prompt messages to out.
type Prompter struct {
	in  InputReader
	out io.Writer
}

// NewPrompter creates a Prompter over the given reader and writer.
func NewPrompter(in InputReader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out}
}

// Line prints the prompt and returns the next trimmed input line.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// NonEmptyLine re-prompts until a non-empty line is entered.
func (p *Prompter) NonEmptyLine(prompt string) (string, error) {
	for {
		line, err := p.Line(prompt)
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
		fmt.Fprintln(p.out, "A value is required.")
	}
}

// Year re-prompts until a four-digit year between 1900 and the current
// year is entered.
func (p *Prompter) Year(prompt string) (int, error) {
	current := time.Now().Year()
	for {
		line, err := p.Line(prompt)
		if err != nil {
			return 0, err
		}
		if yearPattern.MatchString(line) {
			year, _ := strconv.Atoi(line)
			if year <= current {
				return year, nil
			}
		}
		fmt.Fprintf(p.out, "Please enter a year between 1900 and %d.\n", current)
	}
}

// IntInRange re-prompts until an integer in [lo, hi] is entered.
func (p *Prompter) IntInRange(prompt string, lo, hi int) (int, error) {
	for {
		line, err := p.Line(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil && n >= lo && n <= hi {
			return n, nil
		}
		fmt.Fprintf(p.out, "Please enter a number between %d and %d.\n", lo, hi)
	}
}

// ZipCode re-prompts until a five-digit zip code is entered.
func (p *Prompter) ZipCode(prompt string) (string, error) {
	for {
		line, err := p.Line(prompt)
		if err != nil {
			return "", err
		}
		if len(line) == 5 {
			if _, err := strconv.Atoi(line); err == nil {
				return line, nil
			}
		}
		fmt.Fprintln(p.out, "Please enter a five-digit zip code.")
	}
}

// Gender re-prompts until an answer starting with M, F or N is entered
// and returns the single-letter code.
func (p *Prompter) Gender(prompt string) (string, error) {
	for {
		line, err := p.Line(prompt)
		if err != nil {
			return "", err
		}
		if line != "" {
			code := strings.ToUpper(line[:1])
			switch code {
			case "M", "F", "N":
				return code, nil
			}
		}
		fmt.Fprintln(p.out, "Please enter M, F or N.")
	}
}

// YesNo re-prompts until an answer starting with Y or N is entered.
func (p *Prompter) YesNo(prompt string) (bool, error) {
	for {
		line, err := p.Line(prompt)
		if err != nil {
			return false, err
		}
		if line != "" {
			switch strings.ToUpper(line[:1]) {
			case "Y":
				return true, nil
			case "N":
				return false, nil
			}
		}
		fmt.Fprintln(p.out, "Please enter Y or N.")
	}
}

// maxDayOfMonth returns the largest day the month prompt accepts.
// February reports 29 regardless of year; the caller validates the full
// date against the calendar afterwards.
func maxDayOfMonth(month time.Month) int {
	switch month {
	case time.February:
		return 29
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// ReleaseDate collects a full release date: year, then month, then a day
// bounded by the chosen month. A February 29 in a non-leap year is
// rejected and the whole date is collected again.
func (p *Prompter) ReleaseDate() (time.Time, error) {
	return p.date("release")
}

// RatedDate collects the date a rating was given, with the same calendar
// checks as ReleaseDate.
func (p *Prompter) RatedDate() (time.Time, error) {
	return p.date("rating")
}

func (p *Prompter) date(noun string) (time.Time, error) {
	for {
		year, err := p.Year(fmt.Sprintf("Enter the %s year: ", noun))
		if err != nil {
			return time.Time{}, err
		}
		monthNum, err := p.IntInRange(fmt.Sprintf("Enter the %s month (1-12): ", noun), 1, 12)
		if err != nil {
			return time.Time{}, err
		}
		month := time.Month(monthNum)
		day, err := p.IntInRange(
			fmt.Sprintf("Enter the %s day (1-%d): ", noun, maxDayOfMonth(month)),
			1, maxDayOfMonth(month))
		if err != nil {
			return time.Time{}, err
		}

		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		if date.Month() == month && date.Day() == day {
			return date, nil
		}
		fmt.Fprintf(p.out, "%d-%02d-%02d is not a valid calendar date.\n", year, month, day)
	}
}

// TitleCase capitalizes the first letter of each word of an entered movie
// title, leaving existing capitals alone.
func TitleCase(s string) string {
	return titleCaser.String(strings.TrimSpace(s))
}
