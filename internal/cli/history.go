// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/calc/benchmark"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	DB    string
	Label string
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(_ *RootOptions) *cobra.Command {
	opts := &HistoryOptions{}

	cmd := &cobra.Command{
		Use:           "history <description>",
		Short:         "List the recorded timings of a case",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "SQLite history database (required)")
	cmd.Flags().StringVar(&opts.Label, "label", benchmark.DefaultConfig().Label, "record label")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runHistory(opts *HistoryOptions, description string, cmd *cobra.Command) error {
	store, err := benchmark.OpenStore(opts.DB)
	if err != nil {
		return commandError("failed to open history", err)
	}
	defer store.Close()

	entries, err := store.History(cmd.Context(), opts.Label, description)
	if err != nil {
		return commandError("failed to read history", err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tRECORDED\tITERATIONS\tTIME")
	for _, entry := range entries {
		fmt.Fprintf(w, "%s\t%s\t%d\t%dµs\n",
			entry.RunID, entry.RecordedAt.UTC().Format(time.RFC3339), entry.Iterations, entry.Micros)
	}

	return w.Flush()
}
