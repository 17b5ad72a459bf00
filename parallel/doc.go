// Package parallel provides the fan-out/fan-in primitives shared by the
// π estimators: an exact index-range partitioner and a synchronous,
// order-preserving parallel map.
//
// The model is deliberately minimal — a one-shot batch, not a service:
//
//   - Partition splits [0,total) into contiguous, near-equal, non-overlapping
//     chunks whose union covers every index exactly once. The remainder of an
//     uneven split is absorbed by the last chunk, and the number of chunks is
//     clamped to total so no empty chunk is ever produced.
//
//   - MapRanges runs one task per chunk, blocks until every task has
//     returned, and yields results in submission order regardless of
//     completion order. The first task error (or a context cancellation)
//     cancels the remaining tasks and fails the whole call; no partial
//     results are ever returned.
//
// There is no retry, no streaming, and no communication between tasks during
// computation. Tasks must be pure with respect to shared state: they receive
// a chunk, return a value, and touch nothing else.
//
// Errors (sentinel):
//
//	– ErrBadTotal indicates Partition received total < 1.
//	– ErrBadParts indicates Partition received parts < 1.
//	– ErrNilTask  indicates MapRanges received a nil task function.
package parallel
