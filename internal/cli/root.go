// SPDX-License-Identifier: MIT
package cli

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/calc"
	"gitlab.com/fisherprime/calc/benchmark"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool

	Config  string
	Label   string
	Results string
	DB      string
	Workers int
	Repeat  int
}

// UsageMessage is reported when the iteration count is missing or invalid.
const UsageMessage = "Please provide number of iterations as first argument."

// NewRootCommand creates the root command for the calcbench CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "calcbench <iterations>",
		Short: "Benchmark the prefix notation calculator",
		Long: `Time the prefix notation calculator on the suite's inputs.

Each case evaluates its whole input file <iterations> times; the user CPU
time is printed & appended to the results log as label;description;µs.`,
		Args:          iterationArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			iterations, _ := strconv.ParseUint(args[0], 10, 64)
			return runBenchmark(opts, iterations, cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.Flags().StringVar(&opts.Config, "config", "", "YAML suite configuration")
	cmd.Flags().StringVar(&opts.Label, "label", "", "record label (overrides the suite)")
	cmd.Flags().StringVar(&opts.Results, "results", "", "results log (overrides the suite)")
	cmd.Flags().StringVar(&opts.DB, "db", "", "SQLite history database (overrides the suite)")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "goroutines sharing the iterations (overrides the suite)")
	cmd.Flags().IntVar(&opts.Repeat, "repeat", 0, "measurements per case (overrides the suite)")

	// Add subcommands
	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewTokensCommand(opts))
	cmd.AddCommand(NewGenerateCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))

	return cmd
}

// iterationArgs accepts exactly one positive integer.
func iterationArgs(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return failure(UsageMessage, nil)
	}

	if n, err := strconv.ParseUint(args[0], 10, 64); err != nil || n < 1 {
		return failure(UsageMessage, nil)
	}

	return nil
}

func runBenchmark(opts *RootOptions, iterations uint64, cmd *cobra.Command) (err error) {
	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)
	calc.SetLogger(logger)

	cfg, err := suiteConfig(opts, cmd)
	if err != nil {
		return
	}

	cases, err := cfg.LoadCases(logger, opts.Verbose)
	if err != nil {
		return commandError("failed to load cases", err)
	}

	sinks, err := cfg.OpenSinks()
	if err != nil {
		return commandError("failed to open results", err)
	}
	defer func() {
		if closeErr := benchmark.CloseSinks(sinks); closeErr != nil && err == nil {
			err = commandError("failed to close results", closeErr)
		}
	}()

	runner := benchmark.NewRunner(cfg.Label,
		benchmark.WithOutput(cmd.OutOrStdout()),
		benchmark.WithLogger(logger),
		benchmark.WithDebug(opts.Verbose),
		benchmark.WithWorkers(cfg.Workers),
		benchmark.WithRepeat(cfg.Repeat),
		benchmark.WithSinks(sinks...),
	)

	if _, err = runner.RunAll(cmd.Context(), cases, iterations); err != nil {
		err = commandError("benchmark failed", err)
	}

	return
}

// suiteConfig loads the suite & applies the flags that were set.
func suiteConfig(opts *RootOptions, cmd *cobra.Command) (cfg *benchmark.Config, err error) {
	if opts.Config != "" {
		if cfg, err = benchmark.LoadConfig(opts.Config); err != nil {
			if errors.Is(err, benchmark.ErrInvalidConfig) {
				err = failure("invalid configuration", err)
			} else {
				err = commandError("failed to load config", err)
			}

			return
		}
	} else {
		cfg = benchmark.DefaultConfig()
	}

	flags := cmd.Flags()
	if flags.Changed("label") {
		cfg.Label = opts.Label
	}
	if flags.Changed("results") {
		cfg.Results = opts.Results
	}
	if flags.Changed("db") {
		cfg.DB = opts.DB
	}
	if flags.Changed("workers") {
		cfg.Workers = opts.Workers
	}
	if flags.Changed("repeat") {
		cfg.Repeat = opts.Repeat
	}

	if err = cfg.Validate(); err != nil {
		err = failure("invalid configuration", err)
	}

	return
}
