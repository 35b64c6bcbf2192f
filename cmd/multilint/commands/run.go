// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gkze/multilint/cmd/multilint/internal/clierr"
	"github.com/gkze/multilint/internal/multilint"
	"github.com/gkze/multilint/internal/tools"
)

// Exit codes: tool failures are ordinary non-success, configuration
// problems are distinct.
const (
	exitToolFailure = 1
	exitConfigError = 2
)

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// stateDir anchors run state next to the config file, mirroring how the
// config itself is project-scoped.
func stateDir(configPath string) string {
	return filepath.Join(filepath.Dir(configPath), ".multilint", "run")
}

func runAll(ctx context.Context, paths []string, opts *rootOptions) error {
	log := newLogger(opts.verbose)

	m, err := multilint.New(paths, opts.configDir, tools.Registry, log)
	if err != nil {
		return clierr.Wrap(exitConfigError, "configuration", err)
	}

	report, err := m.RunAll(ctx, nil)
	if err != nil {
		return clierr.Wrap(exitConfigError, "run aborted", err)
	}

	store := multilint.NewReportStore(stateDir(m.ConfigPath()))
	if err := store.WriteReport(report); err != nil {
		log.Warn("could not persist run state", "error", err)
	}

	log.Info("results")
	for _, t := range report.Tools() {
		outcome, _ := report.Outcome(t)
		log.Info("result", "tool", t, "outcome", outcome)
	}

	if !report.Success() {
		return clierr.New(exitToolFailure, "one or more tools did not succeed")
	}
	return nil
}
