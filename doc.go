// Package ludolph is a small playground for computing π to arbitrary decimal
// precision, in parallel — named after Ludolph van Ceulen, who spent most of
// a lifetime pushing π to 35 digits by hand.
//
// 🚀 What is ludolph?
//
//	A collection of π estimators sharing one fan-out/fan-in skeleton:
//		• leibniz    — the alternating series π/4 = Σ (-1)^k/(2k+1); slow,
//		               simple, the reference parallel accumulator
//		• bbp        — Bailey–Borwein–Plouffe; ~4 binary digits per term
//		• chudnovsky — binary splitting; ~14 decimal digits per term, the
//		               serious-digit workhorse
//
// ✨ Why choose ludolph?
//
//   - Explicit precision – an immutable numeric.Context travels through every
//     operation; no process-global arithmetic settings anywhere
//   - Partition-invariant – any worker count produces the same decimal string
//   - All-or-nothing – a worker failure or cancellation fails the whole
//     estimate; no silent partial results
//
// Under the hood, everything is organized under these subpackages:
//
//	numeric/    — the immutable arbitrary-precision decimal context
//	parallel/   — exact range partitioning + synchronous ordered parallel map
//	leibniz/    — the parallel alternating-series accumulator
//	bbp/        — the Bailey–Borwein–Plouffe estimator
//	chudnovsky/ — the binary-splitting Chudnovsky estimator
//	cmd/ludolph — a thin CLI over the three estimators
//
// Quick taste:
//
//	pi, err := leibniz.Estimate(ctx, 1_000_000, leibniz.WithPrecision(50))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(pi)
//
//	go get github.com/ludolph/ludolph
package ludolph
