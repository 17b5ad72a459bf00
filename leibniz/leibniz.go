// Package leibniz implements the parallel alternating-series accumulator.
//
// The computation is a single fan-out/fan-in reduction: partition [0,N) into
// contiguous chunks, sum each chunk independently at fixed precision, reduce
// the ordered partial sums, scale by four. Workers share nothing; each derives
// its sign locally and returns one value.
package leibniz

import (
	"context"
	"strconv"

	"github.com/ericlagergren/decimal"

	"github.com/ludolph/ludolph/numeric"
	"github.com/ludolph/ludolph/parallel"
)

// guardDigits is the fixed number of extra digits carried during
// accumulation, on top of a terms-dependent allowance (one digit per decimal
// order of N, since N rounded additions can drift by up to N ulps). The final
// value is rounded back to the requested precision exactly once.
const guardDigits = 24

// cancelStride bounds how many terms a worker sums between cancellation
// checks. Must be a power of two.
const cancelStride = 256

// Estimate approximates π as 4·Σ_{k=0}^{terms-1} (-1)^k/(2k+1) at the
// configured significant-digit precision.
//
// The term range is split via parallel.Partition into min(workers, terms)
// contiguous chunks; each chunk's partial sum is computed by an independent
// worker and the ordered partial sums are reduced under a single precision
// context. All workers either complete or the whole call fails: the first
// worker error (or a cancellation of ctx) aborts the computation with no
// partial result.
//
// Accuracy: |result − π| ≤ 4/(2·terms+1).
//
// Preconditions and validation (in order):
//  1. terms ≥ 1                (ErrBadTerms).
//  2. Options.Workers ≥ 1      (ErrBadWorkers).
//  3. Options.Precision ≥ 1    (ErrBadPrecision).
//
// Complexity: O(terms) decimal divisions and additions at precision
// Options.Precision plus guard digits.
func Estimate(ctx context.Context, terms int, opts ...Option) (*decimal.Big, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if terms < 1 {
		return nil, ErrBadTerms
	}
	if cfg.Workers < 1 {
		return nil, ErrBadWorkers
	}
	if cfg.Precision < 1 {
		return nil, ErrBadPrecision
	}

	// 2) Fix the arithmetic contexts for the whole run: the base context
	//    defines the public contract, the widened one absorbs accumulation
	//    drift across up to `terms` rounded additions.
	base := numeric.MustNew(cfg.Precision)
	work := base.WithGuard(guardDigits + len(strconv.Itoa(terms)))

	// 3) Partition [0,terms) into one chunk per effective worker.
	ranges, err := parallel.Partition(terms, cfg.Workers)
	if err != nil {
		return nil, err
	}

	// 4) Fan out: each chunk is summed independently under the shared
	//    read-only working context.
	partials, err := parallel.MapRanges(ctx, ranges,
		func(cctx context.Context, r parallel.Range) (*decimal.Big, error) {
			return chunkSum(cctx, work, r)
		})
	if err != nil {
		return nil, err
	}

	// 5) Fan in: reduce partial sums in chunk order. Order does not affect
	//    the value; it is fixed for reproducibility.
	total := new(decimal.Big)
	for _, p := range partials {
		work.Add(total, total, p)
	}

	// 6) Scale by four and round down to the requested precision.
	work.Mul(total, total, work.Int(4))

	return base.Round(total), nil
}

// Term returns the k-th series term (-1)^k/(2k+1) under c.
// Exposed for verification; the chunk loop computes terms incrementally
// rather than calling this per index.
func Term(c numeric.Context, k int64) *decimal.Big {
	t := new(decimal.Big)
	c.Quo(t, c.Int(1), c.Int(2*k+1))
	if k%2 == 1 {
		c.Neg(t, t)
	}

	return t
}

// chunkSum computes Σ_{k=start}^{end-1} (-1)^k/(2k+1) for one chunk.
//
// The sign is seeded from (-1)^start and flips once per step; the denominator
// advances by two per step. No state outside the chunk is read or written.
func chunkSum(ctx context.Context, c numeric.Context, r parallel.Range) (*decimal.Big, error) {
	var (
		sum  = new(decimal.Big)            // chunk partial sum
		term = new(decimal.Big)            // scratch for 1/(2k+1)
		one  = c.Int(1)                    // constant numerator
		two  = c.Int(2)                    // denominator stride
		den  = c.Int(2*int64(r.Start) + 1) // 2k+1 for k = start
		neg  = r.Start%2 == 1              // (-1)^start
	)

	for k := r.Start; k < r.End; k++ {
		// Cancellation is polled on a stride to keep the hot loop tight.
		if k&(cancelStride-1) == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		// term = 1/(2k+1); fold the sign into the accumulation direction.
		c.Quo(term, one, den)
		if neg {
			c.Sub(sum, sum, term)
		} else {
			c.Add(sum, sum, term)
		}

		neg = !neg
		c.Add(den, den, two)
	}

	return sum, nil
}
