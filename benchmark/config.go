// SPDX-License-Identifier: MIT
package benchmark

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"gitlab.com/fisherprime/calc"
)

type (
	// Config defines a benchmark suite.
	Config struct {
		// Label prefixes every record, identifying the implementation being measured.
		Label string `yaml:"label"`
		// Results is the `;` delimited log records are appended to, disabled when empty.
		Results string `yaml:"results"`
		// DB is the SQLite history database, disabled when empty.
		DB string `yaml:"db"`

		Workers int `yaml:"workers"`
		Repeat  int `yaml:"repeat"`

		Cases []CaseConfig `yaml:"cases"`
	}

	// CaseConfig describes one case of the suite.
	CaseConfig struct {
		Description string `yaml:"description"`
		Input       string `yaml:"input"`
		// Strategy is a [calc.Strategy] name.
		Strategy string `yaml:"strategy"`
	}
)

const (
	defLabel   = "go"
	defResults = "results.csv"

	validInput   = "input.ok"
	invalidInput = "input.err"
)

// DefaultConfig obtains the default suite, timing both strategies on valid & invalid input.
func DefaultConfig() *Config {
	return &Config{
		Label:   defLabel,
		Results: defResults,
		Workers: 1,
		Repeat:  1,
		Cases: []CaseConfig{
			{Description: "parser-results-no-errors", Input: validInput, Strategy: calc.StrategyResults.String()},
			{Description: "parser-panics-no-errors", Input: validInput, Strategy: calc.StrategyPanics.String()},
			{Description: "parser-results-with-errors", Input: invalidInput, Strategy: calc.StrategyResults.String()},
			{Description: "parser-panics-with-errors", Input: invalidInput, Strategy: calc.StrategyPanics.String()},
		},
	}
}

// LoadConfig reads a YAML suite from path; fields absent from the file keep their defaults.
func LoadConfig(path string) (cfg *Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("failed to read config: %w", err)
		return
	}

	cfg = DefaultConfig()
	if err = yaml.Unmarshal(data, cfg); err != nil {
		err = fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		return
	}

	err = cfg.Validate()

	return
}

// Validate fills unset options with defaults & rejects unusable cases.
func (c *Config) Validate() (err error) {
	if c.Label == "" {
		c.Label = defLabel
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	if c.Repeat < 1 {
		c.Repeat = 1
	}

	if len(c.Cases) < 1 {
		return fmt.Errorf("%w: no cases", ErrInvalidConfig)
	}

	if e := (Record{Label: c.Label}).Validate(); e != nil {
		err = fmt.Errorf("%w: label: %w", ErrInvalidConfig, e)
	}

	for index, cc := range c.Cases {
		if cc.Description == "" {
			err = errors.Join(err, fmt.Errorf("%w: case %d has no description", ErrInvalidConfig, index))
		}
		if e := (Record{Description: cc.Description}).Validate(); e != nil {
			err = errors.Join(err, fmt.Errorf("%w: case %d: %w", ErrInvalidConfig, index, e))
		}
		if cc.Input == "" {
			err = errors.Join(err, fmt.Errorf("%w: case %q has no input", ErrInvalidConfig, cc.Description))
		}
		if _, e := calc.ParseStrategy(cc.Strategy); e != nil {
			err = errors.Join(err, fmt.Errorf("%w: case %q: %w", ErrInvalidConfig, cc.Description, e))
		}
	}

	return
}

// LoadCases loads every case's input, binding it to a parser using the case's strategy.
func (c *Config) LoadCases(logger logrus.FieldLogger, debug bool) (cases []Case, err error) {
	for _, cc := range c.Cases {
		var strategy calc.Strategy
		if strategy, err = calc.ParseStrategy(cc.Strategy); err != nil {
			return
		}

		parser := calc.New(calc.WithStrategy(strategy), calc.WithLogger(logger), calc.WithDebug(debug))

		var b *ProgramBenchmark
		if b, err = LoadProgram(cc.Input, parser); err != nil {
			err = fmt.Errorf("case %q: %w", cc.Description, err)
			return
		}

		cases = append(cases, Case{Description: cc.Description, Benchmark: b})
	}

	return
}

// OpenSinks opens the results log & history database the suite enables.
//
// Sinks opened before a failure are closed.
func (c *Config) OpenSinks() (sinks []Sink, err error) {
	if c.Results != "" {
		var s *CSVSink
		if s, err = OpenCSV(c.Results); err != nil {
			return
		}
		sinks = append(sinks, s)
	}

	if c.DB != "" {
		var s *Store
		if s, err = OpenStore(c.DB); err != nil {
			CloseSinks(sinks)
			sinks = nil

			return
		}
		sinks = append(sinks, s)
	}

	return
}

// CloseSinks closes every sink, joining their errors.
func CloseSinks(sinks []Sink) (err error) {
	for _, s := range sinks {
		err = errors.Join(err, s.Close())
	}

	return
}
