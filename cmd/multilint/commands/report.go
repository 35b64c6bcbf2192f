// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gkze/multilint/cmd/multilint/internal/clierr"
	"github.com/gkze/multilint/internal/config"
	"github.com/gkze/multilint/internal/multilint"
)

func newReportCmd(opts *rootOptions) *cobra.Command {
	var (
		asJSON bool
		reset  bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the outcome of the last run",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Find(opts.configDir)
			if err != nil {
				return clierr.Wrap(exitConfigError, "configuration", err)
			}
			store := multilint.NewReportStore(stateDir(path))

			if reset {
				return store.Reset()
			}

			last, err := store.ReadLastRun()
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(last)
			}

			out := cmd.OutOrStdout()
			if last == nil {
				fmt.Fprintln(out, "No run state found.")
				return nil
			}

			fmt.Fprintf(out, "Overall: %s\n", last.Overall)
			if len(last.Failed) > 0 {
				fmt.Fprintln(out, "Did not succeed:")
				for _, t := range last.Failed {
					fmt.Fprintf(out, "  - %s\n", t)
				}
			} else {
				fmt.Fprintln(out, "All tools succeeded.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	cmd.Flags().BoolVar(&reset, "reset", false, "clear persisted run state")
	return cmd
}
