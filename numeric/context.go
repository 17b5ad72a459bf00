// Package numeric: the explicit precision context.
//
// Context is deliberately a small value type: copying it is free, mutating it
// is impossible, and passing it down a call chain is the only way precision
// travels. The constructor validates once; afterwards every method is total.
package numeric

import (
	"errors"

	"github.com/ericlagergren/decimal"
)

// ErrBadPrecision indicates that a precision below one digit was requested.
var ErrBadPrecision = errors.New("numeric: precision must be at least 1")

// Context fixes the significant-digit precision and rounding mode for a
// computation. The zero value is not usable; construct via New or MustNew.
type Context struct {
	prec int             // significant decimal digits carried by every operation
	dctx decimal.Context // underlying decimal context (precision + rounding mode)
}

// New returns a Context carrying prec significant decimal digits.
// Rounding mode is fixed to round-half-even so that all contexts produced by
// this package round identically.
//
// Returns ErrBadPrecision when prec < 1.
func New(prec int) (Context, error) {
	if prec < 1 {
		return Context{}, ErrBadPrecision
	}

	return Context{
		prec: prec,
		dctx: decimal.Context{
			Precision:    prec,
			RoundingMode: decimal.ToNearestEven,
		},
	}, nil
}

// MustNew is New for callers that have already validated prec.
// Panics on invalid precision; reserved for programmer error.
func MustNew(prec int) Context {
	c, err := New(prec)
	if err != nil {
		panic(err)
	}

	return c
}

// Precision reports the number of significant decimal digits carried.
func (c Context) Precision() int { return c.prec }

// WithGuard returns a derived Context widened by extra guard digits.
// The receiver is unchanged; extra < 0 is clamped to 0.
func (c Context) WithGuard(extra int) Context {
	if extra < 0 {
		extra = 0
	}

	return MustNew(c.prec + extra)
}

// Int returns a new exact decimal holding v. Construction is exact regardless
// of the context precision; rounding applies only once v enters an operation.
func (c Context) Int(v int64) *decimal.Big { return decimal.New(v, 0) }

// Add computes z = x + y, rounded to the context precision, and returns z.
func (c Context) Add(z, x, y *decimal.Big) *decimal.Big { return c.dctx.Add(z, x, y) }

// Sub computes z = x - y, rounded to the context precision, and returns z.
func (c Context) Sub(z, x, y *decimal.Big) *decimal.Big { return c.dctx.Sub(z, x, y) }

// Mul computes z = x * y, rounded to the context precision, and returns z.
func (c Context) Mul(z, x, y *decimal.Big) *decimal.Big { return c.dctx.Mul(z, x, y) }

// Quo computes z = x / y, rounded to the context precision, and returns z.
func (c Context) Quo(z, x, y *decimal.Big) *decimal.Big { return c.dctx.Quo(z, x, y) }

// Neg computes z = -x and returns z.
func (c Context) Neg(z, x *decimal.Big) *decimal.Big { return c.dctx.Neg(z, x) }

// Pow computes z = x ** y, rounded to the context precision, and returns z.
func (c Context) Pow(z, x, y *decimal.Big) *decimal.Big { return c.dctx.Pow(z, x, y) }

// Round rounds z in place to the context precision and returns z.
// Estimators call this exactly once, on the final value, after accumulating
// on a guard-widened context.
func (c Context) Round(z *decimal.Big) *decimal.Big { return c.dctx.Round(z) }
