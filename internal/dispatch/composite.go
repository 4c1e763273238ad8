// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package dispatch chooses a docblock generator for a file and chains
// generators when the language is unknown.
package dispatch

import (
	"github.com/petar-djukic/go-docblock/internal/php"
	"github.com/petar-djukic/go-docblock/pkg/types"
)

// Composite tries a fixed, ordered chain of generators and returns the
// first block produced. The order is the priority; it is never sorted.
type Composite struct {
	generators []types.Generator
}

// Verify interface compliance at compile time.
var _ types.Generator = (*Composite)(nil)

// NewComposite returns a Composite trying generators in the given order.
func NewComposite(generators ...types.Generator) *Composite {
	return &Composite{generators: append([]types.Generator(nil), generators...)}
}

// NewAuto returns the language-guessing chain.
func NewAuto() *Composite {
	return NewComposite(php.New())
}

// Name implements types.Generator.
func (c *Composite) Name() string {
	return "auto"
}

// Generators returns the chain in priority order.
func (c *Composite) Generators() []types.Generator {
	return append([]types.Generator(nil), c.generators...)
}

// Doc implements types.Generator. The caller's line ending is passed to
// every generator in the chain.
func (c *Composite) Doc(signature, lineEnding string) (string, bool) {
	block, _, ok := c.DocWith(signature, lineEnding)
	return block, ok
}

// DocWith is Doc that also reports which generator produced the block.
func (c *Composite) DocWith(signature, lineEnding string) (string, types.Generator, bool) {
	for _, g := range c.generators {
		if block, ok := g.Doc(signature, lineEnding); ok && block != "" {
			return block, g, true
		}
	}
	return "", nil, false
}
