// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package php

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/petar-djukic/go-docblock/internal/render"
	"github.com/petar-djukic/go-docblock/pkg/types"
)

// classKeywords are the modifiers folded into a class header, in order.
var classKeywords = []string{"abstract", "static", "final"}

// keywordField emits a bare tag for a modifier such as "@static".
func keywordField(cfg types.Config, _ render.Match, c render.Capture) (string, bool) {
	s := strings.TrimSpace(c.Value)
	if s == "" {
		return "", false
	}
	return cfg.Command + s, true
}

// accessField always produces an @access tag, guessing from the construct
// name when no modifier was written.
func accessField(cfg types.Config, m render.Match, c render.Capture) (string, bool) {
	access := c.Value
	if access == "" {
		access = GuessAccess(m.Value("name"))
	}
	return fmt.Sprintf("%saccess %s", cfg.Command, access), true
}

// paramsField emits one @param line per parameter. Parameters are split on
// bare commas, so a default value containing a comma splits too. A
// parameter without a name drops the whole field.
func paramsField(cfg types.Config, _ render.Match, c render.Capture) (string, bool) {
	if c.Value == "" {
		return "", false
	}

	var lines []string
	for _, p := range strings.Split(c.Value, ",") {
		chunks := strings.Split(p, "=")

		name := strings.TrimSpace(chunks[0])
		if name == "" {
			return "", false
		}

		if len(chunks) == 1 {
			lines = append(lines, fmt.Sprintf("%sparam mixed %s", cfg.Command, name))
			continue
		}

		def := strings.TrimSpace(chunks[1])
		lines = append(lines, fmt.Sprintf("%sparam %s %s (default: %s)", cfg.Command, GuessType(def), name, def))
	}

	return strings.Join(lines, cfg.EOL()), true
}

// classNameField prefixes the class name with its modifiers, e.g.
// "Abstract Foo".
func classNameField(_ types.Config, m render.Match, c render.Capture) (string, bool) {
	var words []string
	for _, key := range classKeywords {
		if m.Value(key) != "" {
			words = append(words, key)
		}
	}
	if len(words) > 0 {
		words[0] = capitalize(words[0])
	}
	words = append(words, c.Value)
	return strings.Join(words, " "), true
}

func extendsField(cfg types.Config, _ render.Match, c render.Capture) (string, bool) {
	s := strings.TrimSpace(c.Value)
	if s == "" {
		return "", false
	}
	return cfg.Command + "extends " + s, true
}

func implementsField(cfg types.Config, _ render.Match, c render.Capture) (string, bool) {
	if c.Value == "" {
		return "", false
	}

	var lines []string
	for _, name := range strings.Split(c.Value, ",") {
		lines = append(lines, cfg.Command+"implements "+strings.TrimSpace(name))
	}
	return strings.Join(lines, cfg.EOL()), true
}

// varValueField documents a member variable's default and type. The @var
// line is emitted even when there is no default.
func varValueField(cfg types.Config, _ render.Match, c render.Capture) (string, bool) {
	value := strings.TrimSpace(c.Value)

	var b strings.Builder
	if value != "" {
		b.WriteString("(default value: " + value + ")")
		b.WriteString(cfg.EOL())
		b.WriteString(cfg.EOL())
	}
	b.WriteString(cfg.Command + "var " + GuessType(value))
	return b.String(), true
}

// GuessAccess infers visibility from naming convention. Double-underscore
// names are magic methods and stay public.
func GuessAccess(name string) string {
	switch {
	case strings.HasPrefix(name, "__"):
		return "public"
	case strings.HasPrefix(name, "_T"):
		return "protected"
	case strings.HasPrefix(name, "_"):
		return "private"
	default:
		return "public"
	}
}

// GuessType infers a type from a default-value literal. The checks are
// substring based: "'a' . true" is a string, "istrue" is a bool.
func GuessType(s string) string {
	switch {
	case s == "":
		return "mixed"
	case strings.ContainsAny(s, `"'`):
		return "string"
	case strings.Contains(s, "array("):
		return "array"
	case strings.Contains(s, "true"), strings.Contains(s, "false"):
		return "bool"
	case isDigits(s):
		return "int"
	case isFloat(s):
		return "float"
	default:
		return "mixed"
	}
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

func isFloat(s string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
