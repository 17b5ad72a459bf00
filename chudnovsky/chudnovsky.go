// Package chudnovsky implements the binary-splitting evaluator. The splitting
// recursion is pure math/big integer arithmetic; chunk triples are merged
// exactly, and a single decimal division finishes the job.
package chudnovsky

import (
	"context"
	"math"
	"math/big"

	"github.com/ericlagergren/decimal"

	"github.com/ludolph/ludolph/numeric"
	"github.com/ludolph/ludolph/parallel"
)

// Series constants: A + B·k is the linear numerator factor, c3Over24 is
// 640320³/24, the per-term denominator growth.
const (
	seriesA = 13591409
	seriesB = 545140134
	seriesC = 640320
)

const (
	// digitsPerTerm is the decimal yield of one Chudnovsky term,
	// log10(C³/(24·72)) ≈ 14.1816.
	digitsPerTerm = 14.181647462725477

	// guardDigits is the headroom carried through the final square root and
	// division before the single rounding back to the requested digits.
	guardDigits = 10
)

// Estimate approximates π to the requested number of significant decimal
// digits using binary splitting over the Chudnovsky series.
//
// The term count is ⌈digits/14.18⌉+1. Chunks of the term range are evaluated
// by independent workers; because the splitting arithmetic is exact integer
// work, the result is bit-identical for every worker count. Failure of any
// worker, or cancellation of ctx, fails the whole call with no partial
// result.
//
// Preconditions and validation (in order):
//  1. digits ≥ 1             (ErrBadDigits).
//  2. Options.Workers ≥ 1    (ErrBadWorkers).
//
// Complexity: dominated by large-integer multiplication; O(M(d)·log n) for
// d-digit operands over n terms.
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

	// 2) Size the series and partition the term range.
	terms := int(math.Ceil(float64(digits)/digitsPerTerm)) + 1
	ranges, err := parallel.Partition(terms, cfg.Workers)
	if err != nil {
		return nil, err
	}

	// 3) Fan out: each worker binary-splits its own chunk into an exact
	//    (P,Q,T) triple.
	partials, err := parallel.MapRanges(ctx, ranges,
		func(cctx context.Context, r parallel.Range) (pqt, error) {
			return split(cctx, int64(r.Start), int64(r.End))
		})
	if err != nil {
		return nil, err
	}

	// 4) Fan in: merge adjacent triples left to right. The merge is exact,
	//    so this reduction equals the single-range recursion bit for bit.
	acc := partials[0]
	for _, p := range partials[1:] {
		acc = merge(acc, p)
	}

	// 5) Final assembly: π = 426880·√10005·Q / T at decimal precision.
	return assemble(acc, digits), nil
}

// pqt is the binary-splitting state for a term range [a,b):
// P and Q accumulate the term products, T carries the signed linear sums,
// with Σ_{k=a}^{b-1} term_k proportional to T/Q.
type pqt struct {
	p, q, t *big.Int
}

// merge combines the triples of two adjacent ranges [a,m) and [m,b).
func merge(x, y pqt) pqt {
	// P = P₁P₂, Q = Q₁Q₂, T = T₁Q₂ + P₁T₂ — all exact.
	p := new(big.Int).Mul(x.p, y.p)
	q := new(big.Int).Mul(x.q, y.q)

	t := new(big.Int).Mul(x.t, y.q)
	t.Add(t, new(big.Int).Mul(x.p, y.t))

	return pqt{p: p, q: q, t: t}
}

// split evaluates the binary-splitting recursion over [a,b).
//
// Base case, one term k = a:
//
//	P = (6a−5)(2a−1)(6a−1)      (P = Q = 1 for a = 0)
//	Q = a³ · 640320³/24
//	T = P · (A + B·a), negated for odd a
//
// Recursive case: split at the midpoint and merge.
func split(ctx context.Context, a, b int64) (pqt, error) {
	// Cancellation is polled per node; the recursion depth is logarithmic
	// and each node does heavy integer work, so the check is cheap.
	if err := ctx.Err(); err != nil {
		return pqt{}, err
	}

	if b-a == 1 {
		return splitTerm(a), nil
	}

	m := (a + b) / 2
	left, err := split(ctx, a, m)
	if err != nil {
		return pqt{}, err
	}
	right, err := split(ctx, m, b)
	if err != nil {
		return pqt{}, err
	}

	return merge(left, right), nil
}

// splitTerm builds the base-case triple for the single term k = a.
func splitTerm(a int64) pqt {
	p := big.NewInt(1)
	q := big.NewInt(1)
	if a > 0 {
		// P = (6a−5)(2a−1)(6a−1)
		p.SetInt64(6*a - 5)
		p.Mul(p, big.NewInt(2*a-1))
		p.Mul(p, big.NewInt(6*a-1))

		// Q = a³ · C³/24
		q.SetInt64(a)
		q.Mul(q, q)
		q.Mul(q, big.NewInt(a))
		q.Mul(q, c3Over24())
	}

	// T = P·(A + B·a), sign (-1)^a.
	t := new(big.Int).Mul(p, new(big.Int).Add(
		big.NewInt(seriesA),
		new(big.Int).Mul(big.NewInt(seriesB), big.NewInt(a)),
	))
	if a&1 == 1 {
		t.Neg(t)
	}

	return pqt{p: p, q: q, t: t}
}

// c3Over24 returns 640320³/24 (exact; 640320³ is divisible by 24).
func c3Over24() *big.Int {
	c := big.NewInt(seriesC)
	c.Mul(c, c)
	c.Mul(c, big.NewInt(seriesC))

	return c.Quo(c, big.NewInt(24))
}

// assemble computes π = 426880·√10005·Q / T at the requested precision.
//
// √10005 is taken as the integer square root of 10005·10^(2m) with
// m = digits + guard, giving ⌊√10005·10^m⌋ — exact to the guard digits.
// The decimal division is the only inexact step and happens once.
func assemble(acc pqt, digits int) *decimal.Big {
	base := numeric.MustNew(digits)
	work := base.WithGuard(guardDigits)
	m := digits + guardDigits

	// root = ⌊√(10005·10^(2m))⌋, i.e. √10005 scaled by 10^m.
	rad := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(2*m)), nil)
	rad.Mul(rad, big.NewInt(10005))
	root := new(big.Int).Sqrt(rad)

	// num = 426880·root·Q, still scaled by 10^m.
	num := new(big.Int).Mul(big.NewInt(426880), root)
	num.Mul(num, acc.q)

	// Undo the scale by placing the decimal point m digits in, then divide.
	pi := new(decimal.Big)
	work.Quo(pi,
		new(decimal.Big).SetBigMantScale(num, m),
		new(decimal.Big).SetBigMantScale(acc.t, 0),
	)

	return base.Round(pi)
}
