// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/petar-djukic/go-docblock/pkg/docblock"
)

// newGenerateCmd creates the "generate" command.
func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [declaration]",
		Short: "Print a docblock for a declaration",
		Long:  "Generate documents the declaration given as arguments, or the first line of stdin when no arguments are given.",
		RunE:  runGenerate,
	}

	cmd.Flags().StringP("ext", "e", "", "File extension hint, e.g. php")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ext, _ := cmd.Flags().GetString("ext")

	signature := strings.Join(args, " ")
	if signature == "" {
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("reading declaration from stdin: %w", err)
		}
		signature = line
	}

	d, _, err := newDocumenter()
	if err != nil {
		return err
	}

	block, err := d.Generate(signature, ext, "")
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), block)
	return nil
}

// newInsertCmd creates the "insert" command.
func newInsertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insert FILE",
		Short: "Insert a docblock above a line of a file",
		Long:  "Insert documents the declaration on --line (or the next non-blank line) and inserts the docblock above it. Without --write the docblock is printed instead.",
		Args:  cobra.ExactArgs(1),
		RunE:  runInsert,
	}

	cmd.Flags().IntP("line", "l", 1, "1-based line of the declaration")
	cmd.Flags().BoolP("write", "w", false, "Write the result back to the file")
	cmd.Flags().Bool("diff", false, "Print a diff instead of the docblock")

	return cmd
}

func runInsert(cmd *cobra.Command, args []string) error {
	line, _ := cmd.Flags().GetInt("line")
	write, _ := cmd.Flags().GetBool("write")
	diff, _ := cmd.Flags().GetBool("diff")

	d, log, err := newDocumenter()
	if err != nil {
		return err
	}

	edit, err := d.DocumentFile(args[0], line)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case diff:
		fmt.Fprint(out, edit.Diff())
	case !write:
		fmt.Fprint(out, edit.Block)
	}

	if write {
		if err := edit.Apply(); err != nil {
			return err
		}
		log.Infow("inserted docblock", "path", edit.Path, "line", edit.Line, "generator", edit.Generator)
	}
	if edit.HasCursor {
		log.Debugw("insertion point", "offset", edit.Offset+edit.Cursor.Offset, "length", edit.Cursor.Length)
	}
	return nil
}

// newLangsCmd creates the "langs" command.
func newLangsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List known extensions and the auto-detection order",
		RunE: func(cmd *cobra.Command, args []string) error {
			extensions, chain := docblock.Languages()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "php: %s\n", strings.Join(extensions, ", "))
			fmt.Fprintf(out, "auto: %s\n", strings.Join(chain, " > "))
			return nil
		},
	}
}
