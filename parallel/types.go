// SPDX-License-Identifier: MIT
// Package parallel: sentinel error set and the chunk type.
// All entry points MUST return these sentinels on invalid input and tests
// MUST check them via errors.Is. No entry point panics on user input.
package parallel

import "errors"

var (
	// ErrBadTotal indicates that a partition over an empty or negative index
	// range was requested (total < 1).
	ErrBadTotal = errors.New("parallel: total must be at least 1")

	// ErrBadParts indicates that a non-positive chunk count was requested
	// (parts < 1).
	ErrBadParts = errors.New("parallel: parts must be at least 1")

	// ErrNilTask indicates that MapRanges was handed a nil task function.
	ErrNilTask = errors.New("parallel: task function is nil")
)

// Range is a half-open chunk [Start,End) of term indices assigned to one task.
// A Range produced by Partition is never empty.
type Range struct {
	Start int // first index in the chunk, inclusive
	End   int // one past the last index in the chunk
}

// Len reports the number of indices covered by the chunk.
func (r Range) Len() int { return r.End - r.Start }
