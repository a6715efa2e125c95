// Movietool - Console Movie Catalog Manager
// Copyright 2026 M. Rourke (mrourke)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mrourke/movietool

package models

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// titleYearPattern matches the parenthesized four-digit year embedded in a
// canonical title, e.g. "(2010)" in "Inception (2010)".
var titleYearPattern = regexp.MustCompile(`\((\d{4})\)`)

// CanonicalTitle composes the stored title form "Name (YYYY)" from a display
// title and a four-digit year string. The caller is responsible for having
// validated the year format.
func CanonicalTitle(title, year string) string {
	return fmt.Sprintf("%s (%s)", strings.TrimSpace(title), year)
}

// ReplaceTitleYear rewrites the embedded "(YYYY)" of a canonical title with
// a new year, preserving the trimmed text before it. A title without an
// embedded year gets one appended.
func ReplaceTitleYear(title string, year int) string {
	loc := titleYearPattern.FindStringIndex(title)
	if loc == nil {
		return fmt.Sprintf("%s (%d)", strings.TrimSpace(title), year)
	}
	prefix := strings.TrimSpace(title[:loc[0]])
	return fmt.Sprintf("%s (%d)", prefix, year)
}

// StripTitleYear removes the embedded "(YYYY)" from a canonical title,
// returning the bare display title. Free-text search matches against this
// form so a query like "2005" does not hit every movie from that year.
func StripTitleYear(title string) string {
	return strings.TrimSpace(titleYearPattern.ReplaceAllString(title, ""))
}

// TitleYear extracts the embedded year from a canonical title. The second
// return is false when the title carries no "(YYYY)" suffix. The release
// date remains the source of truth; this is a display convenience.
func TitleYear(title string) (int, bool) {
	m := titleYearPattern.FindStringSubmatch(title)
	if m == nil {
		return 0, false
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return year, true
}
