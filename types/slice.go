// SPDX-License-Identifier: NONE
package types

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/constraints"
)

type (
	// Number is satisfied by the integer & floating point types.
	Number interface {
		constraints.Integer | constraints.Float
	}

	// Samples is a series of measurements.
	Samples[T Number] []T
)

// Validation errors.
var (
	ErrNoSamples = errors.New("no samples")
)

// Sort for `Samples`, ascending.
func (sl Samples[T]) Sort() {
	sort.Slice(sl, func(i, j int) bool { return sl[i] < sl[j] })
}

// Min for `Samples`.
func (sl Samples[T]) Min() (resl T, err error) {
	if len(sl) < 1 {
		err = ErrNoSamples
		return
	}

	resl = sl[0]
	for _, val := range sl[1:] {
		if val < resl {
			resl = val
		}
	}

	return
}

// Max for `Samples`.
func (sl Samples[T]) Max() (resl T, err error) {
	if len(sl) < 1 {
		err = ErrNoSamples
		return
	}

	resl = sl[0]
	for _, val := range sl[1:] {
		if val > resl {
			resl = val
		}
	}

	return
}

// Sum for `Samples`; an empty series sums to 0.
func (sl Samples[T]) Sum() (resl T) {
	for _, val := range sl {
		resl += val
	}

	return
}

// Mean for `Samples`, truncated for integer types.
func (sl Samples[T]) Mean() (resl T, err error) {
	if len(sl) < 1 {
		err = ErrNoSamples
		return
	}

	resl = sl.Sum() / T(len(sl))

	return
}

// Median for `Samples`.
//
// The lower middle value is used for an even count so that the result is always a measured value.
// The receiver is left unmodified.
func (sl Samples[T]) Median() (resl T, err error) {
	if len(sl) < 1 {
		err = ErrNoSamples
		return
	}

	sorted := make(Samples[T], len(sl))
	copy(sorted, sl)
	sorted.Sort()

	resl = sorted[(len(sorted)-1)/2]

	return
}

// String is the `fmt.Stringer` interface implementation for `Samples`.
func (sl Samples[T]) String() (dst string) {
	if len(sl) < 1 {
		return "[]"
	}

	buffer := strings.Builder{}
	fmt.Fprintf(&buffer, "[%v", sl[0])
	for index := 1; index < len(sl); index++ {
		fmt.Fprintf(&buffer, ",%v", sl[index])
	}
	buffer.WriteString("]")

	return buffer.String()
}
