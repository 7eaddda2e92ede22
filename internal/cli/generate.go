// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/calc"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	Seed       int64
	Depth      int
	MaxLiteral int64
	Parens     bool
	Malformed  bool
	Output     string
}

const (
	defGenerateDepth      = 12
	defGenerateMaxLiteral = 1000
)

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(_ *RootOptions) *cobra.Command {
	opts := &GenerateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a benchmark input",
		Long: `Generate a random program for use as a benchmark input.

Valid programs never divide by zero; --malformed programs always fail to
evaluate. The same seed always produces the same program.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, cmd)
		},
	}

	cmd.Flags().Int64Var(&opts.Seed, "seed", 1, "random seed")
	cmd.Flags().IntVar(&opts.Depth, "depth", defGenerateDepth, "maximum expression depth")
	cmd.Flags().Int64Var(&opts.MaxLiteral, "max-literal", defGenerateMaxLiteral, "largest literal")
	cmd.Flags().BoolVar(&opts.Parens, "parens", true, "wrap some operations in parentheses")
	cmd.Flags().BoolVar(&opts.Malformed, "malformed", false, "generate a program that fails to evaluate")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func runGenerate(opts *GenerateOptions, cmd *cobra.Command) (err error) {
	g := calc.NewGenerator(opts.Seed,
		calc.WithDepth(opts.Depth),
		calc.WithMaxLiteral(opts.MaxLiteral),
		calc.WithParens(opts.Parens),
	)

	program := g.Program()
	if opts.Malformed {
		program = g.Malformed()
	}

	var w io.Writer = cmd.OutOrStdout()
	if opts.Output != "" {
		var f *os.File
		if f, err = os.Create(opts.Output); err != nil {
			return commandError("failed to create output", err)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = commandError("failed to write output", closeErr)
			}
		}()

		w = f
	}

	if _, err = fmt.Fprintln(w, program); err != nil {
		err = commandError("failed to write output", err)
	}

	return
}
