// SPDX-License-Identifier: MIT
package parallel

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Task computes one chunk's result. A Task must not touch state shared with
// other tasks; it receives a context for cancellation and returns a value or
// an error.
type Task[T any] func(ctx context.Context, r Range) (T, error)

// MapRanges executes fn once per chunk, in parallel, and blocks until every
// chunk has completed. Results are returned in submission order — result i
// belongs to ranges[i] — regardless of completion order.
//
// Failure semantics are all-or-nothing: the first task error cancels the
// context passed to the remaining tasks and MapRanges returns that error with
// no results. Cancelling ctx has the same effect. A chunk is never retried.
//
// The chunk list is expected to come from Partition, so its length already
// bounds the degree of parallelism; one goroutine is started per chunk.
//
// Errors: ErrNilTask when fn is nil; otherwise the first task error, wrapped
// with the failing chunk's bounds.
//
// Complexity: O(len(ranges)) goroutines; result slice of len(ranges).
func MapRanges[T any](ctx context.Context, ranges []Range, fn Task[T]) ([]T, error) {
	// 1) Validate the task before spawning anything.
	if fn == nil {
		return nil, ErrNilTask
	}

	// 2) Nothing to do: an empty chunk list yields an empty result set.
	if len(ranges) == 0 {
		return []T{}, nil
	}

	// 3) Fan out one goroutine per chunk. Each writes only its own slot of
	//    out, so the slice needs no locking.
	out := make([]T, len(ranges))
	g, gctx := errgroup.WithContext(ctx)
	for i, r := range ranges {
		i, r := i, r
		g.Go(func() error {
			v, err := fn(gctx, r)
			if err != nil {
				return fmt.Errorf("parallel: chunk [%d,%d): %w", r.Start, r.End, err)
			}
			out[i] = v

			return nil
		})
	}

	// 4) Synchronous barrier: wait for every task. On any failure the whole
	//    batch fails and no partial result escapes.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
