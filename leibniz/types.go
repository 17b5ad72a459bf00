// Package leibniz: sentinel errors and configuration options for the
// alternating-series accumulator.
package leibniz

import (
	"errors"
	"runtime"
)

// Sentinel errors returned by Estimate. All are reported before any worker
// is dispatched; a failed validation never starts the computation.
var (
	// ErrBadTerms indicates that fewer than one series term was requested.
	ErrBadTerms = errors.New("leibniz: terms must be at least 1")

	// ErrBadWorkers indicates a non-positive worker count.
	ErrBadWorkers = errors.New("leibniz: workers must be at least 1")

	// ErrBadPrecision indicates a non-positive significant-digit precision.
	ErrBadPrecision = errors.New("leibniz: precision must be at least 1")
)

// DefaultPrecision is the significant-digit precision used when
// WithPrecision is not supplied.
const DefaultPrecision = 100

// Options configures the behavior of Estimate.
//
// Workers   – degree of parallelism; chunk count is min(Workers, terms).
// Precision – significant decimal digits carried through all arithmetic.
type Options struct {
	Workers   int // number of parallel workers (default: available CPU cores)
	Precision int // significant decimal digits (default: DefaultPrecision)
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

// WithPrecision sets the significant-digit precision carried through every
// term and partial sum. Values below one are rejected by Estimate with
// ErrBadPrecision. The precision is fixed before the first term is computed
// and never changes mid-computation.
func WithPrecision(prec int) Option {
	return func(o *Options) {
		o.Precision = prec
	}
}

// DefaultOptions returns the Options Estimate starts from before applying
// functional overrides.
//
// Defaults:
//   - Workers:   runtime.NumCPU() (detected core count).
//   - Precision: DefaultPrecision (100 significant digits).
func DefaultOptions() Options {
	return Options{
		Workers:   runtime.NumCPU(),
		Precision: DefaultPrecision,
	}
}
