// Movietool - Console Movie Catalog Manager
// Copyright 2026 M. Rourke (mrourke)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mrourke/movietool

package console

import (
	"bufio"
	"io"
	"strings"
)

// InputReader abstracts line-based user input so the menu loop can be
// driven by scripted input in tests. ReadLine returns the entered line
// without its trailing newline; io.EOF signals that input is exhausted.
type InputReader interface {
	ReadLine() (string, error)
}

// StdinReader is the production InputReader. It wraps any io.Reader
// (os.Stdin in practice) in a bufio.Reader for line-based reading.
type StdinReader struct {
	reader *bufio.Reader
}

// NewStdinReader creates a StdinReader over the given source. Construct it
// once per session; each call allocates a fresh buffer.
func NewStdinReader(r io.Reader) *StdinReader {
	return &StdinReader{reader: bufio.NewReader(r)}
}

// ReadLine reads one line, stripping the trailing newline and any carriage
// return. A final unterminated line is returned before io.EOF surfaces.
func (s *StdinReader) ReadLine() (string, error) {
	line, err := s.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
