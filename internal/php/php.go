// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package php documents PHP functions, classes, interfaces and member
// variables from a single source line.
package php

import (
	"regexp"

	"github.com/petar-djukic/go-docblock/internal/render"
	"github.com/petar-djukic/go-docblock/pkg/types"
)

// Construct names, in match precedence order.
const (
	ConstructFunction       = "function"
	ConstructClass          = "class"
	ConstructInterface      = "interface"
	ConstructMemberVariable = "member_variable"
)

// DefaultConfig is the phpDocumentor comment style.
var DefaultConfig = types.Config{
	LineEnding: types.LF,
	Prefix:     "/**",
	Infix:      " * ",
	Suffix:     " */",
	Command:    "@",
}

// Extensions lists the file extensions that select the PHP generator.
var Extensions = []string{
	"php", "phtml", "php3", "php4", "php5",
	"ph3", "ph4", "ph5", "phps",
	"module", "inc", "install",
}

var (
	functionPattern = regexp.MustCompile(`^(?P<whitespace>\s*)` +
		`(?:(?:(?P<abstract>abstract)|(?P<final>final)|(?P<static>static)|(?P<access>private|public|protected))\s+)*` +
		`function\s*&?(?P<name>[-a-zA-Z0-9_]+)\s*\((?P<params>.*)\)\s*(?:\{.*\}?|;)?\s*$`)

	classPattern = regexp.MustCompile(`^(?P<whitespace>\s*)` +
		`(?:(?:(?P<abstract>abstract)|(?P<final>final)|(?P<static>static))\s+)*` +
		`class\s+(?P<name>[-a-zA-Z0-9_]+)` +
		`(?:\s+extends\s+(?P<extends>[-a-zA-Z0-9_]+))?` +
		`(?:\s+implements\s+(?P<implements>[-a-zA-Z0-9_,\s]+))?`)

	interfacePattern = regexp.MustCompile(`^(?P<whitespace>\s*)` +
		`interface\s+(?P<name>[-a-zA-Z0-9_]+)` +
		`(?:\s+extends\s+(?P<extends>[-a-zA-Z0-9_]+))?`)

	memberVariablePattern = regexp.MustCompile(`^(?P<whitespace>\s*)` +
		`(?:(?:(?P<abstract>abstract)|(?P<static>static)|(?P<final>final)|(?P<access>private|public|protected))\s+)*` +
		`(?:var\s+)?\$(?P<name>[-a-zA-Z0-9_]+)` +
		`(?:\s*=\s*(?P<value>[^;]+);)?`)
)

// Registry returns the PHP construct specs. Functions are tried first,
// member variables last.
func Registry() render.Registry {
	return render.Registry{
		{
			Name:    ConstructFunction,
			Pattern: functionPattern,
			Template: `
				%name% function.

				%access%
				%abstract%
				%static%
				%final%
				%params%
				@return void
			`,
			Fields: map[string]render.Transform{
				"access":   accessField,
				"abstract": keywordField,
				"final":    keywordField,
				"static":   keywordField,
				"params":   paramsField,
			},
		},
		{
			Name:    ConstructClass,
			Pattern: classPattern,
			Template: `
				%name% class.

				%abstract%
				%static%
				%final%
				%extends%
				%implements%
			`,
			Fields: map[string]render.Transform{
				"name":       classNameField,
				"abstract":   keywordField,
				"final":      keywordField,
				"static":     keywordField,
				"extends":    extendsField,
				"implements": implementsField,
			},
		},
		{
			Name:    ConstructInterface,
			Pattern: interfacePattern,
			Template: `
				%name% interface.

				%extends%
			`,
			Fields: map[string]render.Transform{
				"extends": extendsField,
			},
		},
		{
			Name:    ConstructMemberVariable,
			Pattern: memberVariablePattern,
			Template: `
				%name%

				%value%
				%access%
				%abstract%
				%static%
				%final%
			`,
			Fields: map[string]render.Transform{
				"abstract": keywordField,
				"static":   keywordField,
				"final":    keywordField,
				"access":   accessField,
				"value":    varValueField,
			},
		},
	}
}

// Generator documents PHP signatures. The zero value is not usable; call New.
type Generator struct {
	cfg      types.Config
	registry render.Registry
}

// Verify interface compliance at compile time.
var _ types.Generator = (*Generator)(nil)

// New returns a PHP generator using DefaultConfig.
func New() *Generator {
	return &Generator{cfg: DefaultConfig, registry: Registry()}
}

// Name implements types.Generator.
func (g *Generator) Name() string {
	return "php"
}

// Doc implements types.Generator.
func (g *Generator) Doc(signature, lineEnding string) (string, bool) {
	return render.Doc(g.registry, g.cfg.WithLineEnding(lineEnding), signature)
}

// Construct reports which construct signature would be documented as, or
// "" when none matches.
func (g *Generator) Construct(signature string) string {
	s, _, ok := g.registry.Find(signature)
	if !ok {
		return ""
	}
	return s.Name
}
