// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands builds the multilint command tree.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd constructs the multilint root Cobra command. Running the
// root itself runs every configured tool over the given paths.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("MULTILINT_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "multilint [paths...]",
		Short: "Run multiple code quality tools under one interface",
		Long: `Multilint runs a configured, ordered sequence of code quality tools
against a set of source paths and reports one consolidated result.
Tools and their options are configured in a single ` + "`.multilint.yaml`" + `
found by searching upward from the working directory.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAll(cmd.Context(), args, &opts)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().StringVarP(&opts.configDir, "config-dir", "C", ".", "directory to start the config file search from")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of multilint",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "multilint version %s\n", version)
		},
	})

	cmd.AddCommand(newToolsCmd())
	cmd.AddCommand(newReportCmd(&opts))

	return cmd
}

type rootOptions struct {
	verbose   bool
	configDir string
}
