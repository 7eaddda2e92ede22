// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/calc"
)

// EvalOptions holds flags for the eval command.
type EvalOptions struct {
	Strict   bool
	Strategy string
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{}

	cmd := &cobra.Command{
		Use:   "eval [file|-]",
		Short: "Evaluate a program",
		Long: `Evaluate the program in a file, or stdin when the file is "-" or omitted.

A malformed program evaluates to 0 unless --strict is set.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) > 0 {
				path = args[0]
			}
			return runEval(rootOpts, opts, path, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "report evaluation errors instead of printing 0")
	cmd.Flags().StringVar(&opts.Strategy, "strategy", calc.StrategyResults.String(), "error propagation strategy (results|panics)")

	return cmd
}

func runEval(rootOpts *RootOptions, opts *EvalOptions, path string, cmd *cobra.Command) error {
	strategy, err := calc.ParseStrategy(opts.Strategy)
	if err != nil {
		return failure("invalid strategy", err)
	}

	program, err := readInput(path, cmd.InOrStdin())
	if err != nil {
		return err
	}

	parser := calc.New(
		calc.WithStrategy(strategy),
		calc.WithLogger(newLogger(cmd.ErrOrStderr(), rootOpts.Verbose)),
		calc.WithDebug(rootOpts.Verbose),
	)

	value, err := parser.Evaluate(program)
	if err != nil && opts.Strict {
		return failure("evaluation failed", err)
	}

	// Evaluate reports 0 alongside any error.
	fmt.Fprintln(cmd.OutOrStdout(), value)

	return nil
}
