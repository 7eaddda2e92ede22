// SPDX-License-Identifier: MIT
package benchmark

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
)

type (
	// Record is the outcome of one benchmarked case.
	Record struct {
		Label       string
		Description string
		Micros      int64

		// Iterations & Checksum are kept by the history store only.
		Iterations uint64
		Checksum   int64
	}

	// Sink persists records.
	Sink interface {
		Write(ctx context.Context, rec Record) error
		Close() error
	}

	// CSVSink appends records to a `;` delimited file, one [Record.String] per line.
	CSVSink struct {
		m sync.Mutex
		f *os.File
	}
)

const (
	fieldDelimiter = ";"
	csvFileMode    = 0o644
)

// ErrInvalidField is returned for labels & descriptions that would break a results line.
var ErrInvalidField = errors.New("field contains a delimiter or line break")

// String renders the record as `label;description;microseconds`.
func (r Record) String() string {
	return r.Label + fieldDelimiter + r.Description + fieldDelimiter + fmt.Sprint(r.Micros)
}

// Validate checks that the record renders as a single three field line.
func (r Record) Validate() (err error) {
	for _, field := range []string{r.Label, r.Description} {
		if strings.ContainsAny(field, fieldDelimiter+"\r\n") {
			return fmt.Errorf("%w: %q", ErrInvalidField, field)
		}
	}

	return
}

// OpenCSV opens path for appending, the file is created when missing.
func OpenCSV(path string) (s *CSVSink, err error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, csvFileMode)
	if err != nil {
		err = fmt.Errorf("failed to open results log: %w", err)
		return
	}

	s = &CSVSink{f: f}

	return
}

// Write appends one record.
func (s *CSVSink) Write(ctx context.Context, rec Record) (err error) {
	if err = ctx.Err(); err != nil {
		return
	}
	if err = rec.Validate(); err != nil {
		return
	}

	s.m.Lock()
	defer s.m.Unlock()

	_, err = fmt.Fprintln(s.f, rec)

	return
}

// Close closes the underlying file.
func (s *CSVSink) Close() error {
	s.m.Lock()
	defer s.m.Unlock()

	return s.f.Close()
}
