// SPDX-License-Identifier: MIT
package benchmark

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/calc/types"
)

type (
	// Case is a described [Benchmark].
	Case struct {
		Description string
		Benchmark   Benchmark
	}

	// Runner times cases & reports their records.
	Runner struct {
		label   string
		workers int
		repeat  int

		clock  Clock
		out    io.Writer
		sinks  []Sink
		logger logrus.FieldLogger
		debug  bool
	}

	// RunnerOption defines the Runner functional option type.
	RunnerOption func(*Runner)
)

const (
	labelWidthFmt = "%20s  %-50s  "
	timingFmt     = "%10dµs\n"

	// Iterations between cancellation checks.
	cancelCheckInterval = 1024
)

var fLogger logrus.FieldLogger = logrus.New()

// NewRunner instantiates a [Runner] labelling its records with label.
func NewRunner(label string, options ...RunnerOption) *Runner {
	r := &Runner{
		label:   label,
		workers: 1,
		repeat:  1,
		clock:   CPUClock{},
		out:     os.Stdout,
		logger:  fLogger,
	}

	for _, opt := range options {
		opt(r)
	}

	return r
}

// WithClock configures the [Clock] used for timing.
func WithClock(clock Clock) RunnerOption { return func(r *Runner) { r.clock = clock } }

// WithOutput configures the console writer.
func WithOutput(w io.Writer) RunnerOption { return func(r *Runner) { r.out = w } }

// WithSinks appends record sinks.
func WithSinks(sinks ...Sink) RunnerOption {
	return func(r *Runner) { r.sinks = append(r.sinks, sinks...) }
}

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) RunnerOption {
	return func(r *Runner) { r.logger = logger }
}

// WithDebug configures the debug option.
func WithDebug(debug bool) RunnerOption { return func(r *Runner) { r.debug = debug } }

// WithWorkers configures the number of goroutines sharing the iterations; values below 1 are
// ignored.
func WithWorkers(workers int) RunnerOption {
	return func(r *Runner) {
		if workers > 0 {
			r.workers = workers
		}
	}
}

// WithRepeat configures the number of measurements per case; values below 1 are ignored.
func WithRepeat(repeat int) RunnerOption {
	return func(r *Runner) {
		if repeat > 0 {
			r.repeat = repeat
		}
	}
}

// RunAll runs every case in order, stopping at the first failure.
func (r *Runner) RunAll(ctx context.Context, cases []Case, iterations uint64) (records []Record, err error) {
	for _, c := range cases {
		var rec Record
		if rec, err = r.Run(ctx, c, iterations); err != nil {
			return
		}

		records = append(records, rec)
	}

	return
}

// Run times iterations runs of a case, prints the console line & writes the record to every sink.
//
// With a repeat count above 1 the recorded time is the median measurement.
func (r *Runner) Run(ctx context.Context, c Case, iterations uint64) (rec Record, err error) {
	if iterations < 1 {
		err = ErrNoIterations
		return
	}

	fmt.Fprintf(r.out, labelWidthFmt, r.label, c.Description)

	samples := make(types.Samples[int64], 0, r.repeat)
	var checksum int64

	for index := 0; index < r.repeat; index++ {
		var elapsed int64
		if elapsed, checksum, err = r.measure(ctx, c.Benchmark, iterations); err != nil {
			fmt.Fprintln(r.out)
			return
		}

		samples = append(samples, elapsed)
	}

	micros, _ := samples.Median()
	fmt.Fprintf(r.out, timingFmt, micros)

	rec = Record{
		Label:       r.label,
		Description: c.Description,
		Micros:      micros,
		Iterations:  iterations,
		Checksum:    checksum,
	}

	entry := r.logger.WithFields(logrus.Fields{
		"label":       rec.Label,
		"description": rec.Description,
		"iterations":  iterations,
		"checksum":    checksum,
	})
	if r.debug {
		minimum, _ := samples.Min()
		maximum, _ := samples.Max()
		mean, _ := samples.Mean()

		entry.WithFields(logrus.Fields{
			"min":  minimum,
			"max":  maximum,
			"mean": mean,
		}).Debugf("measured %v µs, median %d", samples, micros)
	}

	for _, sink := range r.sinks {
		if err = sink.Write(ctx, rec); err != nil {
			entry.WithError(err).Error("failed to write record")
			return
		}
	}

	return
}

// measure returns the elapsed microseconds & the sum of every run's result.
func (r *Runner) measure(ctx context.Context, b Benchmark, iterations uint64) (micros, checksum int64, err error) {
	if r.workers < 2 || iterations < uint64(r.workers) {
		elapsed := Time(r.clock, func() { checksum, err = runSequence(ctx, b, iterations) })
		micros = elapsed.Microseconds()

		return
	}

	pool, err := ants.NewPool(r.workers)
	if err != nil {
		err = fmt.Errorf("failed to create worker pool: %w", err)
		return
	}
	defer pool.Release()

	var sum atomic.Int64
	elapsed := Time(r.clock, func() {
		err = r.runParallel(ctx, pool, b, iterations, &sum)
	})
	micros, checksum = elapsed.Microseconds(), sum.Load()

	return
}

// runParallel splits iterations evenly across the pool's workers.
func (r *Runner) runParallel(ctx context.Context, pool *ants.Pool, b Benchmark, iterations uint64, sum *atomic.Int64) error {
	workers := uint64(r.workers)
	done := make(chan bool, workers)
	errChan := make(chan error, workers)

	var completed types.SafeCounter

	for index := uint64(0); index < workers; index++ {
		share := iterations / workers
		if index < iterations%workers {
			share++
		}

		task := func() {
			partial, err := runSequence(ctx, b, share)
			if err != nil {
				errChan <- err
				return
			}

			sum.Add(partial)
			completed.Inc()
			done <- true
		}

		if err := pool.Submit(task); err != nil {
			errChan <- err
		}
	}

	err := types.MonitorChannels(ctx, r.workers, done, errChan, "worker")
	if r.debug {
		r.logger.WithError(err).Debugf("%d of %d workers completed", completed.Value(), r.workers)
	}

	return err
}

func runSequence(ctx context.Context, b Benchmark, iterations uint64) (checksum int64, err error) {
	for index := uint64(0); index < iterations; index++ {
		if index%cancelCheckInterval == 0 {
			if err = ctx.Err(); err != nil {
				return
			}
		}

		checksum += b.Run()
	}

	return
}
