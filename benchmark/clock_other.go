// SPDX-License-Identifier: MIT

//go:build !unix

package benchmark

import "time"

var processStart = time.Now()

// Now falls back to the wall time elapsed since the package was initialised.
func (CPUClock) Now() time.Duration { return time.Since(processStart) }
