// Package parallel_test provides runnable examples for the partitioner and
// the synchronous parallel map.
package parallel_test

import (
	"context"
	"fmt"

	"github.com/ludolph/ludolph/parallel"
)

// ExamplePartition shows how an uneven range is carved into chunks: the
// remainder is absorbed by the last chunk so coverage stays exact.
func ExamplePartition() {
	chunks, err := parallel.Partition(10, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, r := range chunks {
		fmt.Printf("[%d,%d) ", r.Start, r.End)
	}
	fmt.Println()
	// Output: [0,3) [3,6) [6,10)
}

// ExampleMapRanges demonstrates a complete fan-out/fan-in: partition an index
// range, sum each chunk in parallel, and reduce the ordered partial sums.
func ExampleMapRanges() {
	// 1) Partition [0,100) into 4 chunks.
	chunks, err := parallel.Partition(100, 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Each task sums its own chunk; no state is shared between tasks.
	partials, err := parallel.MapRanges(context.Background(), chunks,
		func(_ context.Context, r parallel.Range) (int, error) {
			s := 0
			for k := r.Start; k < r.End; k++ {
				s += k
			}

			return s, nil
		})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Reduce in submission order. Addition is commutative, so the order
	//    does not change the total; it is fixed here for reproducibility.
	total := 0
	for _, p := range partials {
		total += p
	}
	fmt.Println(total)
	// Output: 4950
}
