// Package numeric_test validates Context construction, immutability of the
// derived-guard path, and the precision behavior of the wrapped operations.
package numeric_test

import (
	"errors"
	"testing"

	"github.com/ericlagergren/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludolph/ludolph/numeric"
)

func TestNew_RejectsBadPrecision(t *testing.T) {
	// Zero and negative precision must fail with the sentinel.
	for _, prec := range []int{0, -1, -100} {
		_, err := numeric.New(prec)
		assert.ErrorIs(t, err, numeric.ErrBadPrecision, "prec=%d", prec)
	}
}

func TestNew_AcceptsMinimalPrecision(t *testing.T) {
	c, err := numeric.New(1)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Precision())
}

func TestMustNew_PanicsOnBadPrecision(t *testing.T) {
	assert.Panics(t, func() { numeric.MustNew(0) })
}

func TestWithGuard_WidensWithoutMutating(t *testing.T) {
	base := numeric.MustNew(50)
	wide := base.WithGuard(20)

	// The derived context is wider; the base context is untouched.
	assert.Equal(t, 70, wide.Precision())
	assert.Equal(t, 50, base.Precision())

	// Negative guard is clamped, never narrowing.
	assert.Equal(t, 50, base.WithGuard(-5).Precision())
}

func TestQuo_RoundsToContextPrecision(t *testing.T) {
	// 1/3 at 5 significant digits is 0.33333.
	c := numeric.MustNew(5)
	z := new(decimal.Big)
	c.Quo(z, c.Int(1), c.Int(3))
	assert.Equal(t, "0.33333", z.String())
}

func TestRound_TrimsGuardDigits(t *testing.T) {
	// Accumulate 2/3 on a wide context, then round down to 4 digits.
	base := numeric.MustNew(4)
	wide := base.WithGuard(30)

	z := new(decimal.Big)
	wide.Quo(z, wide.Int(2), wide.Int(3))
	base.Round(z)
	assert.Equal(t, "0.6667", z.String())
}

func TestInt_IsExact(t *testing.T) {
	// Integer construction ignores the context precision entirely.
	c := numeric.MustNew(2)
	assert.Equal(t, "123456789", c.Int(123456789).String())
}

func TestOperations_SharedContextAgree(t *testing.T) {
	// (1 - 1/3) * 4 = 8/3 at 10 digits, assembled op by op.
	c := numeric.MustNew(10)

	third := new(decimal.Big)
	c.Quo(third, c.Int(1), c.Int(3))

	z := new(decimal.Big)
	c.Sub(z, c.Int(1), third)
	c.Mul(z, z, c.Int(4))

	assert.Equal(t, "2.666666667", z.String())
}

func TestNeg_FlipsSign(t *testing.T) {
	c := numeric.MustNew(10)
	z := new(decimal.Big)
	c.Neg(z, c.Int(7))
	require.Equal(t, "-7", z.String())
	assert.True(t, z.Signbit())
}

func TestErrBadPrecision_Wrapping(t *testing.T) {
	// The sentinel must survive fmt wrapping at call boundaries.
	_, err := numeric.New(-3)
	wrapped := errors.Join(err)
	assert.ErrorIs(t, wrapped, numeric.ErrBadPrecision)
}
