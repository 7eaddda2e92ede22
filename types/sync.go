// SPDX-License-Identifier: NONE
package types

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

type (
	// SafeCounter is a thread-safe counter.
	SafeCounter struct {
		m   sync.Mutex
		val int
	}
)

const (
	BufferedErrChanSize = 5
)

// Synchronization errors.
var (
	ErrInvalidGoroutineCount = errors.New("invalid goroutine count")
)

// Inc increments the counter.
func (c *SafeCounter) Inc() {
	c.m.Lock()
	defer c.m.Unlock()
	c.val++
}

// Value returns the current value of the counter.
func (c *SafeCounter) Value() int {
	c.m.Lock()
	defer c.m.Unlock()
	return c.val
}

// MonitorChannels gathers the completion status & `error`s of operations goroutines.
//
// Every goroutine is expected to either send on done or on errChan exactly once. Closing done
// stops the wait early. Errors are joined in arrival order behind errPrefix, which should be in
// the singular form.
func MonitorChannels(ctx context.Context, operations int, done <-chan bool, errChan <-chan error, errPrefix string) (err error) {
	if operations < 1 {
		err = fmt.Errorf("%s %w: %d", errPrefix, ErrInvalidGoroutineCount, operations)
		return
	}

	for index := 0; index < operations; index++ {
		select {
		case <-ctx.Done():
			if err != nil {
				err = fmt.Errorf("%w, %w", err, ctx.Err())
			} else {
				err = ctx.Err()
			}

			return
		case _, open := <-done:
			if !open {
				return
			}
		case e, open := <-errChan:
			if !open {
				return
			}

			if err != nil {
				err = fmt.Errorf("%w, %w", err, e)
			} else {
				err = fmt.Errorf("%s %w", errPrefix, e)
			}
		}
	}

	return
}
