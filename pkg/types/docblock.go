// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types holds the values shared by the docblock generators, the
// dispatcher and the public facade.
package types

import (
	"fmt"
	"strings"
)

// Line endings understood by the generators.
const (
	LF   = "\n"
	CRLF = "\r\n"
	CR   = "\r"
)

// Config is the fixed decoration of a language generator. It is a value:
// a generator keeps one and derives per-call copies with WithLineEnding,
// never mutating the original.
type Config struct {
	LineEnding string // Joins output lines (defaults to LF when empty)
	Prefix     string // Opening line, e.g. "/**" (empty = none)
	Infix      string // Prepended to every body line, e.g. " * "
	Suffix     string // Closing line, e.g. " */" (empty = none)
	Command    string // Tag symbol, e.g. "@"
}

// WithLineEnding returns a copy of c using lineEnding. An empty lineEnding
// keeps the current one.
func (c Config) WithLineEnding(lineEnding string) Config {
	if lineEnding != "" {
		c.LineEnding = lineEnding
	}
	return c
}

// EOL returns the effective line ending.
func (c Config) EOL() string {
	if c.LineEnding == "" {
		return LF
	}
	return c.LineEnding
}

// Generator produces a docblock for a single line of source text.
// Declining is not an error: ok is false when nothing could be generated.
type Generator interface {
	// Name identifies the generator in logs and listings.
	Name() string

	// Doc documents signature using lineEnding between output lines.
	Doc(signature, lineEnding string) (block string, ok bool)
}

// ParseLineEnding maps a configuration name to a line ending. "auto" and ""
// return the empty string, meaning "detect from the document".
func ParseLineEnding(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return "", nil
	case "lf", "unix":
		return LF, nil
	case "crlf", "windows", "dos":
		return CRLF, nil
	case "cr", "mac":
		return CR, nil
	default:
		return "", fmt.Errorf("unknown line ending %q (want auto, lf, crlf or cr)", name)
	}
}
