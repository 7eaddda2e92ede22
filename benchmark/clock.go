// SPDX-License-Identifier: MIT
package benchmark

import "time"

type (
	// Clock reports a monotonically increasing duration.
	Clock interface {
		Now() time.Duration
	}

	// CPUClock reports the user CPU time consumed by the whole process.
	CPUClock struct{}
)

// Time measures the duration of fn on clock.
func Time(clock Clock, fn func()) time.Duration {
	start := clock.Now()
	fn()

	return clock.Now() - start
}
