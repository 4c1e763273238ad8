// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package render

import (
	"regexp"
	"strings"

	"github.com/petar-djukic/go-docblock/pkg/types"
)

var (
	// Templates are stored indented in source; the indentation is not part
	// of the docblock.
	templateIndent = regexp.MustCompile(`\n[ \t]*`)

	// A leftover placeholder and the line break after it.
	leftover = regexp.MustCompile(`%[a-zA-Z_]+%\n?`)
)

// Render fills the spec's template from m. It returns the trimmed body and
// the signature's leading whitespace, which the caller uses to indent the
// formatted block.
func Render(s *Spec, m Match, cfg types.Config) (body, whitespace string) {
	body = Dedent(s.Template)

	for _, name := range m.Names() {
		c := m.Get(name)
		if name == WhitespaceGroup {
			whitespace = c.Value
			continue
		}

		value := c.Value
		if fn, ok := s.Fields[name]; ok {
			v, keep := fn(cfg, m, c)
			if !keep {
				continue
			}
			value = v
		}
		if value == "" {
			continue
		}

		body = strings.ReplaceAll(body, "%"+name+"%", value)
	}

	body = leftover.ReplaceAllString(body, "")
	return strings.TrimSpace(body), whitespace
}

// Dedent trims the template and strips the indentation from each line.
func Dedent(template string) string {
	return templateIndent.ReplaceAllString(strings.TrimSpace(template), "\n")
}

// Doc runs the whole pipeline: find the first matching spec, render it and
// format the result. ok is false when no spec matches.
func Doc(r Registry, cfg types.Config, signature string) (string, bool) {
	s, m, ok := r.Find(signature)
	if !ok {
		return "", false
	}
	body, whitespace := Render(s, m, cfg)
	return Format(body, whitespace, cfg), true
}
