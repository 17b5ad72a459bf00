// Package chudnovsky approximates π with the Chudnovsky series evaluated by
// binary splitting, the method of choice when thousands of digits are wanted.
//
// The series
//
//	1/π = 12 · Σ_{k=0}^{∞} (-1)^k (6k)! (13591409 + 545140134k)
//	      / ( (3k)! (k!)³ 640320^(3k+3/2) )
//
// contributes roughly 14.18 decimal digits per term. Binary splitting turns
// the partial sum over [a,b) into three integers (P, Q, T) with
//
//	Σ_{k=a}^{b-1} term_k = T / (Q · constant part)
//
// combined by the exact merge P = P₁P₂, Q = Q₁Q₂, T = T₁Q₂ + P₁T₂. All of
// that is integer arithmetic on math/big values — exact, so any chunking of
// the range produces bit-identical results. Only the final step
//
//	π = 426880 · √10005 · Q / T
//
// touches decimal arithmetic, with the square root taken exactly enough on a
// scaled integer radicand.
//
// Chunks of the term range are split across workers via the parallel package
// and their (P,Q,T) triples are merged left to right; the merge over adjacent
// ranges is associative, so the fan-in order is fixed only for clarity.
//
// Errors (sentinel):
//
//	– ErrBadDigits  if digits < 1.
//	– ErrBadWorkers if the configured worker count < 1.
package chudnovsky
