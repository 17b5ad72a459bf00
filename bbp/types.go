// Package bbp: sentinel errors and configuration options.
package bbp

import (
	"errors"
	"runtime"
)

// Sentinel errors returned by Estimate, reported before any worker starts.
var (
	// ErrBadDigits indicates that fewer than one significant digit was requested.
	ErrBadDigits = errors.New("bbp: digits must be at least 1")

	// ErrBadWorkers indicates a non-positive worker count.
	ErrBadWorkers = errors.New("bbp: workers must be at least 1")
)

// Options configures the behavior of Estimate.
type Options struct {
	Workers int // number of parallel workers (default: available CPU cores)
}

// Option represents a functional option for configuring Estimate.
type Option func(*Options)

// WithWorkers sets the worker count. Values below one are rejected by
// Estimate with ErrBadWorkers.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// DefaultOptions returns the Options Estimate starts from.
//
// Defaults:
//   - Workers: runtime.NumCPU() (detected core count).
func DefaultOptions() Options {
	return Options{Workers: runtime.NumCPU()}
}
