// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"gitlab.com/fisherprime/calc/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}
}
