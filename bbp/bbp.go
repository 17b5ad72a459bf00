// Package bbp implements the parallel BBP accumulator. The structure mirrors
// leibniz: partition the term range, sum chunks independently, reduce in
// chunk order, round once.
package bbp

import (
	"context"
	"math"

	"github.com/ericlagergren/decimal"

	"github.com/ludolph/ludolph/numeric"
	"github.com/ludolph/ludolph/parallel"
)

const (
	// guardDigits is the accumulation headroom on top of the requested
	// digit count; the final value is rounded back exactly once.
	guardDigits = 10

	// log2of10 converts requested decimal digits into binary digits when
	// sizing the term count.
	log2of10 = 3.321928094887362

	// bitsPerTerm is the (conservative) number of binary digits each BBP
	// term contributes.
	bitsPerTerm = 4

	// extraTerms is fixed slack on top of the derived term count.
	extraTerms = 10

	// cancelStride bounds how many terms a worker sums between
	// cancellation checks. Must be a power of two.
	cancelStride = 64
)

// Estimate approximates π to the requested number of significant decimal
// digits using the BBP series.
//
// The term count is derived from digits (≈ digits·log₂10 / 4 terms, plus
// fixed slack); the term range is partitioned into min(workers, terms)
// chunks summed independently. Failure of any worker, or cancellation of
// ctx, fails the whole call with no partial result.
//
// Preconditions and validation (in order):
//  1. digits ≥ 1             (ErrBadDigits).
//  2. Options.Workers ≥ 1    (ErrBadWorkers).
//
// Complexity: O(digits) decimal operations at precision digits + guard.
func Estimate(ctx context.Context, digits int, opts ...Option) (*decimal.Big, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if digits < 1 {
		return nil, ErrBadDigits
	}
	if cfg.Workers < 1 {
		return nil, ErrBadWorkers
	}

	// 2) Fix contexts: public precision plus accumulation guard.
	base := numeric.MustNew(digits)
	work := base.WithGuard(guardDigits)

	// 3) Size the series: enough terms that the truncation error falls
	//    below the guard digits.
	bits := int(math.Ceil(float64(digits) * log2of10))
	terms := bits/bitsPerTerm + extraTerms

	// 4) Partition and fan out.
	ranges, err := parallel.Partition(terms, cfg.Workers)
	if err != nil {
		return nil, err
	}
	partials, err := parallel.MapRanges(ctx, ranges,
		func(cctx context.Context, r parallel.Range) (*decimal.Big, error) {
			return chunkSum(cctx, work, r)
		})
	if err != nil {
		return nil, err
	}

	// 5) Fan in and round down to the requested digits.
	total := new(decimal.Big)
	for _, p := range partials {
		work.Add(total, total, p)
	}

	return base.Round(total), nil
}

// chunkSum computes Σ_{k=start}^{end-1} 16^(-k)·(4/(8k+1) − 2/(8k+4) −
// 1/(8k+5) − 1/(8k+6)) for one chunk.
//
// The 16^(-start) seed is computed locally; afterwards the scale advances by
// one division per step. Nothing outside the chunk is read or written.
func chunkSum(ctx context.Context, c numeric.Context, r parallel.Range) (*decimal.Big, error) {
	var (
		sum     = new(decimal.Big) // chunk partial sum
		term    = new(decimal.Big) // scratch for the bracketed inner sum
		frac    = new(decimal.Big) // scratch for each 1/(8k+j) fraction
		scale   = new(decimal.Big) // 16^(-k), advanced per step
		one     = c.Int(1)
		two     = c.Int(2)
		four    = c.Int(4)
		sixteen = c.Int(16)
	)

	// scale = 1 / 16^start. Pow then Quo keeps the seed derivation local to
	// the chunk; no worker depends on another's running scale.
	c.Pow(scale, sixteen, c.Int(int64(r.Start)))
	c.Quo(scale, one, scale)

	for k := r.Start; k < r.End; k++ {
		if k&(cancelStride-1) == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		eightK := int64(8 * k)

		// term = 4/(8k+1) − 2/(8k+4) − 1/(8k+5) − 1/(8k+6)
		c.Quo(term, four, c.Int(eightK+1))
		c.Quo(frac, two, c.Int(eightK+4))
		c.Sub(term, term, frac)
		c.Quo(frac, one, c.Int(eightK+5))
		c.Sub(term, term, frac)
		c.Quo(frac, one, c.Int(eightK+6))
		c.Sub(term, term, frac)

		// sum += term · 16^(-k); then advance the scale.
		c.Mul(term, term, scale)
		c.Add(sum, sum, term)
		c.Quo(scale, scale, sixteen)
	}

	return sum, nil
}
