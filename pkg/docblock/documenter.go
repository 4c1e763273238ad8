// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package docblock

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/petar-djukic/go-docblock/internal/dispatch"
	"github.com/petar-djukic/go-docblock/internal/host"
	"github.com/petar-djukic/go-docblock/pkg/types"
)

// Documenter generates docblocks. Its configuration is fixed at New, so a
// Documenter may be shared between goroutines.
type Documenter struct {
	lang       string
	lineEnding string
	lookahead  int
	router     *dispatch.Router
	log        *zap.SugaredLogger
}

// New validates cfg and returns a Documenter.
func New(cfg Config) (*Documenter, error) {
	lineEnding, err := types.ParseLineEnding(cfg.LineEnding)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "line ending"), ErrInvalidConfig)
	}
	if cfg.Lookahead < 0 {
		return nil, errors.WithHint(
			errors.Wrapf(ErrInvalidConfig, "lookahead %d is negative", cfg.Lookahead),
			"lookahead counts the lines searched past a blank line; 0 means the default of 3")
	}

	applyDefaults(&cfg)

	return &Documenter{
		lang:       strings.ToLower(strings.TrimSpace(cfg.Lang)),
		lineEnding: lineEnding,
		lookahead:  cfg.Lookahead,
		router:     dispatch.NewRouter(),
		log:        cfg.Logger,
	}, nil
}

// applyDefaults fills in zero-value fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Lang == "" {
		cfg.Lang = LangAuto
	}
	if cfg.Lookahead == 0 {
		cfg.Lookahead = host.DefaultLookahead
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop().Sugar()
	}
}

// Generate documents signature. ext is the file extension hint, ignored
// when the Documenter has an explicit language. An empty lineEnding uses
// the configured one, falling back to LF.
func (d *Documenter) Generate(signature, ext, lineEnding string) (string, error) {
	if lineEnding == "" {
		lineEnding = d.lineEnding
	}
	if lineEnding == "" {
		lineEnding = types.LF
	}

	g := d.router.GeneratorFor(d.hint(ext))
	block, name, ok := d.doc(g, signature, lineEnding)
	if !ok {
		d.log.Debugw("no construct matched", "generator", g.Name(), "signature", signature)
		return "", errors.Wrapf(ErrNothingGenerated, "%s generator", g.Name())
	}

	d.log.Debugw("generated docblock", "generator", name, "bytes", len(block))
	return block, nil
}

// constructNamer is implemented by generators that can report which
// construct a signature matched.
type constructNamer interface {
	Construct(signature string) string
}

// doc runs g and returns the name of the generator that produced the
// block. For the auto chain that is the winning member, not "auto".
func (d *Documenter) doc(g types.Generator, signature, lineEnding string) (string, string, bool) {
	winner := g
	var block string
	var ok bool
	if c, isChain := g.(*dispatch.Composite); isChain {
		block, winner, ok = c.DocWith(signature, lineEnding)
	} else {
		block, ok = g.Doc(signature, lineEnding)
	}
	if !ok {
		return "", "", false
	}

	if cn, isNamer := winner.(constructNamer); isNamer {
		d.log.Debugw("construct matched", "generator", winner.Name(), "construct", cn.Construct(signature))
	}
	return block, winner.Name(), true
}

// DocumentFile prepares a docblock for line (1-based) of the file at path.
// Blank lines are skipped up to the configured lookahead. The file is not
// modified; call Apply on the returned Edit.
func (d *Documenter) DocumentFile(path string, line int) (*Edit, error) {
	// Lines are always split on the file's own line ending; the configured
	// one only shapes the generated block.
	doc, err := host.ReadDocument(path, "")
	if err != nil {
		return nil, err
	}

	target, err := doc.FindSignature(line, d.lookahead)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	if target.Number != line {
		d.log.Debugw("skipped blank lines", "from", line, "to", target.Number)
	}

	ext := dispatch.ExtensionOf(path)
	lineEnding := d.lineEnding
	if lineEnding == "" {
		lineEnding = doc.LineEnding
	}

	g := d.router.GeneratorFor(d.hint(ext))
	block, name, ok := d.doc(g, target.Text, lineEnding)
	if !ok {
		return nil, errors.WithHint(
			errors.Wrapf(ErrNothingGenerated, "%s:%d", path, target.Number),
			fmt.Sprintf("the %s generator did not recognise a declaration on this line", g.Name()))
	}

	block, cursor, hasCursor := host.ExtractInsertionPoint(block)

	d.log.Debugw("documented line",
		"path", path,
		"line", target.Number,
		"generator", name)

	return &Edit{
		Path:      path,
		Line:      target.Number,
		Offset:    target.Offset,
		Generator: name,
		Block:     block,
		Cursor:    cursor,
		HasCursor: hasCursor,
		Before:    doc.Text,
		After:     doc.InsertBefore(target, block),
	}, nil
}

// hint returns the extension hint to route on: the explicit language when
// one is configured, otherwise ext.
func (d *Documenter) hint(ext string) string {
	if d.lang != LangAuto {
		return d.lang
	}
	return ext
}

// Languages lists the generator names: the PHP extension whitelist first,
// then the auto chain in priority order.
func Languages() (extensions []string, chain []string) {
	extensions = dispatch.PHPExtensions()
	for _, g := range dispatch.NewAuto().Generators() {
		chain = append(chain, g.Name())
	}
	return extensions, chain
}
