// Package leibniz approximates π with the Leibniz/Taylor alternating series
//
//	π/4 = Σ_{k=0}^{∞} (-1)^k / (2k+1)
//
// at arbitrary decimal precision, fanning the term range out across a fixed
// set of parallel workers.
//
// Estimate sums the first N terms — k = 0..N-1, no trailing correction term —
// and multiplies by 4. The index range is partitioned into contiguous chunks,
// one per worker; each chunk's partial sum is computed independently with the
// sign derived locally from (-1)^start, and the ordered partial sums are
// reduced under one fixed-precision context. The result is therefore
// partition-invariant: any worker count from 1 to N produces the identical
// decimal string.
//
// Accuracy follows the alternating-series remainder bound: after scaling by
// four, the estimate differs from π by at most 4/(2N+1), shrinking as O(1/N).
// The series converges far too slowly for serious digit hunting — see the
// bbp and chudnovsky packages for that — but its simplicity makes it the
// reference accumulator of this module.
//
// Complexity:
//
//	– Time:  O(N/P) per worker, O(N) total term operations at precision prec.
//	– Space: O(P) partial sums of O(prec) digits each.
//
// Errors (sentinel):
//
//	– ErrBadTerms     if terms < 1.
//	– ErrBadWorkers   if the configured worker count < 1.
//	– ErrBadPrecision if the configured precision < 1.
//
// Example usage:
//
//	pi, err := leibniz.Estimate(ctx, 1_000_000,
//	    leibniz.WithWorkers(8),
//	    leibniz.WithPrecision(50),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(pi)
package leibniz
