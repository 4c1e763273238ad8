// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command docblock generates documentation comments for declarations.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/petar-djukic/go-docblock/pkg/docblock"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:           "docblock",
		Short:         "Generate docblocks from declarations",
		Long:          "docblock reads a function, class, interface or member variable declaration and prints a documentation comment for it.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().String("lang", docblock.LangAuto, "Language or extension alias (auto guesses from the file extension)")
	rootCmd.PersistentFlags().String("line-ending", "auto", "Line ending: auto, lf, crlf or cr")
	rootCmd.PersistentFlags().Int("lookahead", 3, "Lines searched past a blank line")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("log-json", false, "Log as JSON")

	// Bind flags to viper.
	viper.BindPFlag("lang", rootCmd.PersistentFlags().Lookup("lang"))
	viper.BindPFlag("line-ending", rootCmd.PersistentFlags().Lookup("line-ending"))
	viper.BindPFlag("lookahead", rootCmd.PersistentFlags().Lookup("lookahead"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("log-json", rootCmd.PersistentFlags().Lookup("log-json"))

	// Env vars: DOCBLOCK_LANG, DOCBLOCK_LINE_ENDING, etc.
	viper.SetEnvPrefix("DOCBLOCK")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Config file.
	viper.SetConfigName(".docblock")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // Ignore error; config file is optional.

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newInsertCmd())
	rootCmd.AddCommand(newLangsCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		reportError(err)
		os.Exit(1)
	}
}

// newDocumenter builds a Documenter from the bound configuration.
func newDocumenter() (*docblock.Documenter, *zap.SugaredLogger, error) {
	log, err := newLogger(viper.GetBool("verbose"), viper.GetBool("log-json"))
	if err != nil {
		return nil, nil, errors.Wrap(err, "initializing logger")
	}

	d, err := docblock.New(docblock.Config{
		Lang:       viper.GetString("lang"),
		LineEnding: viper.GetString("line-ending"),
		Lookahead:  viper.GetInt("lookahead"),
		Logger:     log,
	})
	if err != nil {
		return nil, nil, err
	}
	return d, log, nil
}

// newLogger returns a no-op logger unless verbose or JSON logging is on.
// Logs go to stderr so generated text on stdout stays clean.
func newLogger(verbose, jsonOutput bool) (*zap.SugaredLogger, error) {
	if !verbose && !jsonOutput {
		return zap.NewNop().Sugar(), nil
	}

	var config zap.Config
	if jsonOutput {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	config.OutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// reportError prints err to stderr. When nothing could be generated the
// terminal bell is rung as well, matching an editor's failure beep.
func reportError(err error) {
	if errors.Is(err, docblock.ErrNothingGenerated) || errors.Is(err, docblock.ErrBlankLines) {
		fmt.Fprint(os.Stderr, "\a")
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
	}
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print docblock version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("docblock %s\n", version)
		},
	}
}
