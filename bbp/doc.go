// Package bbp approximates π with the Bailey–Borwein–Plouffe series
//
//	π = Σ_{k=0}^{∞} 16^(-k) · ( 4/(8k+1) − 2/(8k+4) − 1/(8k+5) − 1/(8k+6) )
//
// at arbitrary decimal precision, fanning the term range out across parallel
// workers the same way the leibniz package does.
//
// Unlike the Leibniz series, BBP converges geometrically: every term adds
// roughly four binary digits, so the number of terms is derived from the
// requested digit count rather than supplied by the caller. Each worker seeds
// its own 16^(-start) scale locally and divides it by sixteen per step, so
// chunks stay fully independent.
//
// Complexity:
//
//	– Time:  O(digits) terms of O(1) decimal operations at
//	         precision digits + guard.
//	– Space: O(workers) partial sums.
//
// Errors (sentinel):
//
//	– ErrBadDigits  if digits < 1.
//	– ErrBadWorkers if the configured worker count < 1.
package bbp
