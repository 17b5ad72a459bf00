// Package parallel_test contains unit tests for the chunk partitioner.
// The tests enforce the exact-cover invariant: every index in [0,total)
// belongs to exactly one chunk, chunks are contiguous and in order, and no
// chunk is ever empty.
package parallel_test

import (
	"errors"
	"testing"

	"github.com/ludolph/ludolph/parallel"
)

// ------------------------------------------------------------------------
// 1. Validation: degenerate inputs must fail with sentinels, not partition.
// ------------------------------------------------------------------------

func TestPartition_BadTotal(t *testing.T) {
	for _, total := range []int{0, -1, -1000} {
		_, err := parallel.Partition(total, 4)
		if !errors.Is(err, parallel.ErrBadTotal) {
			t.Fatalf("Partition(%d, 4): expected ErrBadTotal, got %v", total, err)
		}
	}
}

func TestPartition_BadParts(t *testing.T) {
	for _, parts := range []int{0, -1, -16} {
		_, err := parallel.Partition(10, parts)
		if !errors.Is(err, parallel.ErrBadParts) {
			t.Fatalf("Partition(10, %d): expected ErrBadParts, got %v", parts, err)
		}
	}
}

// ------------------------------------------------------------------------
// 2. Shape: uneven splits, clamping, single-chunk and single-index cases.
// ------------------------------------------------------------------------

func TestPartition_RemainderGoesToLastChunk(t *testing.T) {
	// 10 indices over 3 parts: 3+3+4.
	got, err := parallel.Partition(10, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := []parallel.Range{{0, 3}, {3, 6}, {6, 10}}
	if len(got) != len(want) {
		t.Fatalf("chunk count = %d; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("chunk[%d] = %+v; want %+v", i, got[i], want[i])
		}
	}
}

func TestPartition_EvenSplit(t *testing.T) {
	got, err := parallel.Partition(12, 4)
	if err != nil {
		t.Fatal(err)
	}
	for i, r := range got {
		if r.Len() != 3 {
			t.Errorf("chunk[%d] = %+v; want length 3", i, r)
		}
	}
}

func TestPartition_ClampsPartsToTotal(t *testing.T) {
	// More parts than indices: effective chunk count shrinks to total,
	// so no empty chunk is ever scheduled.
	got, err := parallel.Partition(3, 16)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("chunk count = %d; want 3", len(got))
	}
	for i, r := range got {
		if r.Len() != 1 {
			t.Errorf("chunk[%d] = %+v; want single index", i, r)
		}
	}
}

func TestPartition_SingleIndex(t *testing.T) {
	got, err := parallel.Partition(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != (parallel.Range{Start: 0, End: 1}) {
		t.Fatalf("Partition(1,1) = %+v; want [{0 1}]", got)
	}
}

// ------------------------------------------------------------------------
// 3. Exact-cover invariant across a sweep of shapes.
// ------------------------------------------------------------------------

func TestPartition_ExactCover(t *testing.T) {
	// For each (total, parts) pair, chunks must tile [0,total) exactly.
	for total := 1; total <= 64; total++ {
		for parts := 1; parts <= 9; parts++ {
			chunks, err := parallel.Partition(total, parts)
			if err != nil {
				t.Fatalf("Partition(%d,%d): %v", total, parts, err)
			}

			next := 0
			for _, r := range chunks {
				if r.Start != next {
					t.Fatalf("Partition(%d,%d): chunk %+v starts at %d, want %d",
						total, parts, r, r.Start, next)
				}
				if r.Len() < 1 {
					t.Fatalf("Partition(%d,%d): empty chunk %+v", total, parts, r)
				}
				next = r.End
			}
			if next != total {
				t.Fatalf("Partition(%d,%d): coverage ends at %d, want %d",
					total, parts, next, total)
			}
		}
	}
}
