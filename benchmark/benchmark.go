// SPDX-License-Identifier: MIT

// Package benchmark measures the CPU time spent evaluating programs & logs the results.
//
// A [Runner] times a [Case] for a number of iterations with a [Clock], prints a console line per
// case & writes a [Record] to every configured [Sink].
package benchmark

import (
	"errors"
	"fmt"
	"os"
)

type (
	// Benchmark is a unit of work repeated by a [Runner].
	//
	// Run must be safe for concurrent use when the Runner has more than one worker.
	Benchmark interface {
		Run() int64
	}

	// Executor evaluates a program, [calc.Parser] satisfies it.
	Executor interface {
		Execute(program string) int64
	}

	// ProgramBenchmark evaluates an in-memory program on each Run.
	ProgramBenchmark struct {
		program string
		parser  Executor
	}
)

// Benchmark errors.
var (
	ErrLoad          = errors.New("failed to load program")
	ErrNoIterations  = errors.New("iteration count must be positive")
	ErrInvalidConfig = errors.New("invalid benchmark configuration")
)

// NewProgramBenchmark instantiates a [ProgramBenchmark].
func NewProgramBenchmark(program string, parser Executor) *ProgramBenchmark {
	return &ProgramBenchmark{program: program, parser: parser}
}

// LoadProgram reads a whole file into memory & binds it to parser.
func LoadProgram(path string, parser Executor) (b *ProgramBenchmark, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrLoad, err)
		return
	}

	b = NewProgramBenchmark(string(data), parser)

	return
}

// Run evaluates the program once.
func (b *ProgramBenchmark) Run() int64 { return b.parser.Execute(b.program) }

// Program retrieves the loaded program.
func (b *ProgramBenchmark) Program() string { return b.program }
