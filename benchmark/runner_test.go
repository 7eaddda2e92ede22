// SPDX-License-Identifier: MIT
package benchmark

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/fisherprime/calc"
)

func TestRunner_RunAll(t *testing.T) {
	var out bytes.Buffer
	sink := &memorySink{}

	r := NewRunner("go",
		WithClock(&stepClock{step: 1500 * time.Microsecond}),
		WithOutput(&out),
		WithSinks(sink),
	)

	cases := []Case{
		{Description: "parser-results-no-errors", Benchmark: NewProgramBenchmark("* 3 (+ 2 2)", calc.New())},
		{Description: "parser-panics-with-errors", Benchmark: NewProgramBenchmark("+ 1", calc.New(calc.WithStrategy(calc.StrategyPanics)))},
	}

	records, err := r.RunAll(context.Background(), cases, 10)
	require.NoError(t, err)

	want := []Record{
		{Label: "go", Description: "parser-results-no-errors", Micros: 1500, Iterations: 10, Checksum: 120},
		{Label: "go", Description: "parser-panics-with-errors", Micros: 1500, Iterations: 10, Checksum: 0},
	}
	assert.Equal(t, want, records)
	assert.Equal(t, want, sink.records)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "runner", out.Bytes())
}

func TestRunner_Workers(t *testing.T) {
	for _, workers := range []int{1, 3, 4, 16} {
		b := &countingBenchmark{}
		r := NewRunner("go", WithClock(&stepClock{}), WithOutput(&bytes.Buffer{}), WithWorkers(workers))

		rec, err := r.Run(context.Background(), Case{Description: "count", Benchmark: b}, 10)
		require.NoError(t, err)

		assert.Equal(t, int64(10), b.runs.Load(), "workers: %d", workers)
		assert.Equal(t, int64(10), rec.Checksum, "workers: %d", workers)
	}
}

func TestRunner_RepeatMedian(t *testing.T) {
	b := &countingBenchmark{}
	clock := &scriptedClock{readings: []time.Duration{0, 9, 10, 12, 20, 23}, unit: time.Microsecond}

	r := NewRunner("go", WithClock(clock), WithOutput(&bytes.Buffer{}), WithRepeat(3))

	rec, err := r.Run(context.Background(), Case{Description: "count", Benchmark: b}, 5)
	require.NoError(t, err)

	// Measurements of 9, 2 & 3µs.
	assert.Equal(t, int64(3), rec.Micros)
	assert.Equal(t, int64(15), b.runs.Load())
}

func TestRunner_Debug(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	r := NewRunner("go", WithClock(&stepClock{}), WithOutput(&bytes.Buffer{}), WithLogger(logger), WithDebug(true))

	_, err := r.Run(context.Background(), Case{Description: "count", Benchmark: &countingBenchmark{}}, 3)
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, int64(3), entry.Data["checksum"])
}

func TestRunner_DebugStatistics(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	clock := &scriptedClock{readings: []time.Duration{0, 9, 10, 12, 20, 23}, unit: time.Microsecond}
	r := NewRunner("go",
		WithClock(clock),
		WithOutput(&bytes.Buffer{}),
		WithLogger(logger),
		WithDebug(true),
		WithRepeat(3),
	)

	_, err := r.Run(context.Background(), Case{Description: "count", Benchmark: &countingBenchmark{}}, 2)
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, int64(2), entry.Data["min"])
	assert.Equal(t, int64(9), entry.Data["max"])
	assert.Equal(t, int64(4), entry.Data["mean"])
}

func TestRunner_DebugWorkers(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	r := NewRunner("go",
		WithClock(&stepClock{}),
		WithOutput(&bytes.Buffer{}),
		WithLogger(logger),
		WithDebug(true),
		WithWorkers(3),
	)

	_, err := r.Run(context.Background(), Case{Description: "count", Benchmark: &countingBenchmark{}}, 9)
	require.NoError(t, err)

	var found bool
	for _, entry := range hook.AllEntries() {
		if entry.Message == "3 of 3 workers completed" {
			found = true
		}
	}
	assert.True(t, found, "the completed worker count is logged")
}

func TestRunner_Errors(t *testing.T) {
	errSink := errors.New("sink failure")

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name       string
		ctx        context.Context
		iterations uint64
		workers    int
		sinkErr    error
		wantErr    error
	}{
		{name: "no iterations", ctx: context.Background(), iterations: 0, wantErr: ErrNoIterations},
		{name: "cancelled", ctx: cancelled, iterations: 5, wantErr: context.Canceled},
		{name: "cancelled workers", ctx: cancelled, iterations: 5, workers: 2, wantErr: context.Canceled},
		{name: "sink", ctx: context.Background(), iterations: 5, sinkErr: errSink, wantErr: errSink},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, _ := test.NewNullLogger()
			r := NewRunner("go",
				WithClock(&stepClock{}),
				WithOutput(&bytes.Buffer{}),
				WithLogger(logger),
				WithWorkers(tt.workers),
				WithSinks(&memorySink{err: tt.sinkErr}),
			)

			_, err := r.Run(tt.ctx, Case{Description: "count", Benchmark: &countingBenchmark{}}, tt.iterations)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// scriptedClock replays readings in order.
type scriptedClock struct {
	readings []time.Duration
	unit     time.Duration
	index    int
}

func (c *scriptedClock) Now() (now time.Duration) {
	now = c.readings[c.index] * c.unit
	c.index++

	return
}
