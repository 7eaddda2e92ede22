// SPDX-License-Identifier: MIT
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type (
	// ExitError carries the status a failed command exits with.
	ExitError struct {
		Err     error
		Message string
		Code    int
	}
)

// Process exit statuses.
const (
	ExitSuccess = iota
	// ExitFailure reports a usage, configuration or evaluation failure.
	ExitFailure
	// ExitCommandError reports an I/O failure.
	ExitCommandError
)

// failure builds an ExitFailure error; err may be nil.
func failure(message string, err error) error {
	return &ExitError{Code: ExitFailure, Message: message, Err: err}
}

// commandError builds an ExitCommandError error.
func commandError(message string, err error) error {
	return &ExitError{Code: ExitCommandError, Message: message, Err: err}
}

// Error is the error interface implementation for ExitError.
func (e *ExitError) Error() (msg string) {
	if msg = e.Message; e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}

	return
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode obtains the exit status for a command's error; errors other than [ExitError] fail with
// ExitFailure.
func ExitCode(err error) (code int) {
	if err == nil {
		return ExitSuccess
	}

	code = ExitFailure

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.Code
	}

	return
}

// newLogger creates the text logger shared by the commands; diagnostics never mix with results.
func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	return logger
}

// readInput reads a whole file, "-" reads stdin.
func readInput(path string, stdin io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)

	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", commandError("failed to read input", err)
	}

	return string(data), nil
}
