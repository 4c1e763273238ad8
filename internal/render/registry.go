// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package render matches a signature against an ordered list of construct
// specs and turns the winning match into a decorated docblock.
package render

import (
	"regexp"

	"github.com/petar-djukic/go-docblock/pkg/types"
)

// WhitespaceGroup is the reserved capture holding the signature's leading
// indentation. It is never substituted into a template.
const WhitespaceGroup = "whitespace"

// Capture is one named sub-match. Present is false when the group did not
// take part in the match, which is distinct from matching the empty string.
type Capture struct {
	Value   string
	Present bool
}

// Transform converts a raw capture into output text. Returning false drops
// the placeholder's line from the docblock.
type Transform func(cfg types.Config, m Match, c Capture) (string, bool)

// Spec describes one documentable construct.
type Spec struct {
	Name     string
	Pattern  *regexp.Regexp
	Template string
	Fields   map[string]Transform // Capture name to transform
}

// Registry is an ordered list of specs. Earlier specs take precedence.
type Registry []Spec

// Match holds the named captures of a successful pattern match, in the
// order the groups appear in the pattern.
type Match struct {
	names    []string
	captures map[string]Capture
}

// Get returns the capture for name. Unknown names are reported as absent.
func (m Match) Get(name string) Capture {
	return m.captures[name]
}

// Value returns the captured text for name, or "" when absent.
func (m Match) Value(name string) string {
	return m.captures[name].Value
}

// Names returns the group names in pattern order.
func (m Match) Names() []string {
	return m.names
}

// Find tries each spec in order against signature and returns the first
// one that matches. ok is false when no spec matches.
func (r Registry) Find(signature string) (spec *Spec, m Match, ok bool) {
	for i := range r {
		if m, ok := matchSpec(&r[i], signature); ok {
			return &r[i], m, true
		}
	}
	return nil, Match{}, false
}

func matchSpec(s *Spec, signature string) (Match, bool) {
	loc := s.Pattern.FindStringSubmatchIndex(signature)
	if loc == nil {
		return Match{}, false
	}

	m := Match{captures: make(map[string]Capture)}
	for i, name := range s.Pattern.SubexpNames() {
		if name == "" {
			continue
		}
		start, end := loc[2*i], loc[2*i+1]
		c := Capture{Present: start >= 0}
		if c.Present {
			c.Value = signature[start:end]
		}
		m.names = append(m.names, name)
		m.captures[name] = c
	}
	return m, true
}
