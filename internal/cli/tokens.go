// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/calc"
	"gitlab.com/fisherprime/calc/lexer"
)

// NewTokensCommand creates the tokens command.
func NewTokensCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens <file|->",
		Short: "List a program's tokens",
		Long: `List the tokens of a program, one per line as POS<TAB>ID<TAB>VAL.

Tokens are listed up to the first unknown character, the grammar is not checked.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runTokens(rootOpts *RootOptions, path string, cmd *cobra.Command) error {
	program, err := readInput(path, cmd.InOrStdin())
	if err != nil {
		return err
	}

	items, err := calc.Tokens(cmd.Context(), program,
		lexer.WithLogger(newLogger(cmd.ErrOrStderr(), rootOpts.Verbose)),
		lexer.WithDebug(rootOpts.Verbose),
	)

	out := cmd.OutOrStdout()
	for _, item := range items {
		fmt.Fprintf(out, "%d\t%s\t%s\n", item.Pos, item.ID, item.Val)
	}

	if err != nil {
		return failure("invalid program", err)
	}

	return nil
}
