// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Semrel - a command-line helper that inspects a git repository's commit
history since the last version tag, classifies each commit by its gitmoji
marker, and recommends a semantic-version bump.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bartekus/semrel/cmd/semrel/internal/clierr"
	"github.com/bartekus/semrel/internal/gitrepo"
	"github.com/bartekus/semrel/internal/report"
	"github.com/bartekus/semrel/pkg/changes"
)

// NewRootCmd constructs the semrel root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("SEMREL_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	var (
		repoPath string
		format   string
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:           "semrel",
		Short:         "Suggest a semantic-version bump from gitmoji commit history",
		Long:          "Semrel groups the commits made since the last version tag by their gitmoji marker and recommends whether the next release should bump the major, minor or patch version.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalysis(cmd, repoPath, format, verbose)
		},
	}

	cmd.Flags().StringVar(&repoPath, "repo", ".", "path to the git repository to inspect")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json or yaml")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of semrel",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "semrel version %s\n", version)
		},
	})

	return cmd
}

func runAnalysis(cmd *cobra.Command, repoPath, format string, verbose bool) error {
	outputFormat, err := report.ParseFormat(format)
	if err != nil {
		return err
	}

	logger := newLogger(cmd, verbose)

	repo, err := gitrepo.Open(repoPath, logger)
	if err != nil {
		return clierr.Wrap(2, "repository not readable", err)
	}

	ch, err := changes.FromSource(repo)
	if err != nil {
		return clierr.Wrap(2, "reading commit history", err)
	}
	logger.Debug().
		Int("commits", ch.Len()).
		Str("action", ch.RecommendedAction().String()).
		Msg("aggregated changes")

	return report.Render(cmd.OutOrStdout(), ch, outputFormat)
}

func newLogger(cmd *cobra.Command, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
		Level(level).
		With().Timestamp().Logger()
}
