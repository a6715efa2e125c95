// Movietool - Console Movie Catalog Manager
// Copyright 2026 M. Rourke (mrourke)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mrourke/movietool

package console

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"
)

// scriptReader feeds a fixed sequence of lines, then io.EOF.
type scriptReader struct {
	lines []string
}

func (s *scriptReader) ReadLine() (string, error) {
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func newTestPrompter(lines ...string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return NewPrompter(&scriptReader{lines: lines}, &out), &out
}

func TestStdinReader(t *testing.T) {
	r := NewStdinReader(strings.NewReader("first\r\nsecond\nlast"))

	for _, want := range []string{"first", "second", "last"} {
		got, err := r.ReadLine()
		if err != nil {
			t.Fatalf("ReadLine failed: %v", err)
		}
		if got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	}

	if _, err := r.ReadLine(); err != io.EOF {
		t.Errorf("Expected io.EOF, got %v", err)
	}
}

func TestPrompterYear(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  int
	}{
		{name: "valid first try", lines: []string{"1995"}, want: 1995},
		{name: "re-prompts on non-numeric", lines: []string{"abcd", "2010"}, want: 2010},
		{name: "re-prompts on three digits", lines: []string{"995", "1995"}, want: 1995},
		{name: "re-prompts below 1900", lines: []string{"1850", "1900"}, want: 1900},
		{name: "re-prompts on future year", lines: []string{"2099", "2020"}, want: 2020},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPrompter(tt.lines...)
			got, err := p.Year("Year: ")
			if err != nil {
				t.Fatalf("Year failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestPrompterYearEOF(t *testing.T) {
	p, _ := newTestPrompter("not-a-year")
	if _, err := p.Year("Year: "); err != io.EOF {
		t.Errorf("Expected io.EOF after exhausted input, got %v", err)
	}
}

func TestPrompterIntInRange(t *testing.T) {
	p, _ := newTestPrompter("0", "6", "x", "3")
	got, err := p.IntInRange("Rating: ", 1, 5)
	if err != nil {
		t.Fatalf("IntInRange failed: %v", err)
	}
	if got != 3 {
		t.Errorf("Expected 3, got %d", got)
	}
}

func TestPrompterZipCode(t *testing.T) {
	p, _ := newTestPrompter("123", "12a45", "123456", "60614")
	got, err := p.ZipCode("Zip: ")
	if err != nil {
		t.Fatalf("ZipCode failed: %v", err)
	}
	if got != "60614" {
		t.Errorf("Expected 60614, got %q", got)
	}
}

func TestPrompterGender(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{name: "single letter", lines: []string{"M"}, want: "M"},
		{name: "lowercase word", lines: []string{"female"}, want: "F"},
		{name: "non-binary", lines: []string{"n"}, want: "N"},
		{name: "re-prompts on unknown", lines: []string{"x", "", "M"}, want: "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPrompter(tt.lines...)
			got, err := p.Gender("Gender: ")
			if err != nil {
				t.Fatalf("Gender failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestPrompterYesNo(t *testing.T) {
	p, _ := newTestPrompter("maybe", "yes")
	got, err := p.YesNo("Confirm? ")
	if err != nil {
		t.Fatalf("YesNo failed: %v", err)
	}
	if !got {
		t.Error("Expected true for yes")
	}

	p, _ = newTestPrompter("No")
	got, err = p.YesNo("Confirm? ")
	if err != nil {
		t.Fatalf("YesNo failed: %v", err)
	}
	if got {
		t.Error("Expected false for no")
	}
}

func TestPrompterReleaseDate(t *testing.T) {
	p, _ := newTestPrompter("2004", "2", "29")
	got, err := p.ReleaseDate()
	if err != nil {
		t.Fatalf("ReleaseDate failed: %v", err)
	}
	want := time.Date(2004, time.February, 29, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestPrompterReleaseDateRejectsBadLeapDay(t *testing.T) {
	// Feb 29 2005 does not exist; the whole date is collected again.
	p, out := newTestPrompter("2005", "2", "29", "2005", "2", "28")
	got, err := p.ReleaseDate()
	if err != nil {
		t.Fatalf("ReleaseDate failed: %v", err)
	}
	want := time.Date(2005, time.February, 28, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if !strings.Contains(out.String(), "not a valid calendar date") {
		t.Error("Expected a calendar rejection message")
	}
}

func TestPrompterReleaseDateDayBounds(t *testing.T) {
	// Day 31 is outside April's bound and re-prompted within the month.
	p, _ := newTestPrompter("1999", "4", "31", "30")
	got, err := p.ReleaseDate()
	if err != nil {
		t.Fatalf("ReleaseDate failed: %v", err)
	}
	want := time.Date(1999, time.April, 30, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "the dark knight", want: "The Dark Knight"},
		{in: "  heat  ", want: "Heat"},
		{in: "WALL-E", want: "WALL-E"},
		{in: "blade runner 2049", want: "Blade Runner 2049"},
	}

	for _, tt := range tests {
		if got := TitleCase(tt.in); got != tt.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
