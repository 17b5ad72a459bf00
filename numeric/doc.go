// Package numeric provides the shared arbitrary-precision arithmetic
// primitives used by every π estimator in ludolph.
//
// The central type is Context: an immutable value that fixes the number of
// significant decimal digits (and the rounding mode) for a whole computation.
// Every arithmetic operation in this module flows through an explicit Context
// value — there is no process-wide precision setting anywhere, so two
// estimates at different precisions can run concurrently from independent
// goroutines without interfering.
//
// Internally, Context wraps a github.com/ericlagergren/decimal Context and
// exposes the small operation set the estimators need (Add, Sub, Mul, Quo,
// Neg, Pow, Round). Values are plain *decimal.Big; a Context never stores
// state between operations.
//
// Guard digits:
//
//	Accumulating many rounded terms drifts in the low-order digits. Estimators
//	therefore derive a widened working context via WithGuard, sum on it, and
//	round the final value back down with the base context's Round. The public
//	precision contract is always stated in base-context digits.
package numeric
