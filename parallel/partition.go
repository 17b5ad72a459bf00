// SPDX-License-Identifier: MIT
package parallel

// Partition splits the index range [0,total) into at most parts contiguous,
// near-equal chunks.
//
// Contracts:
//   - Every index in [0,total) belongs to exactly one returned chunk
//     (no gaps, no overlaps), in increasing order.
//   - Chunk sizes differ only in the last chunk, which absorbs the
//     remainder total mod parts.
//   - When parts > total the effective chunk count is clamped to total,
//     so no chunk is ever empty.
//
// Errors: ErrBadTotal when total < 1, ErrBadParts when parts < 1.
//
// Complexity: O(parts) time, O(parts) space.
func Partition(total, parts int) ([]Range, error) {
	// 1) Validate before allocating anything.
	if total < 1 {
		return nil, ErrBadTotal
	}
	if parts < 1 {
		return nil, ErrBadParts
	}

	// 2) Clamp: scheduling more chunks than indices would produce empty
	//    chunks, which must never reach a worker.
	if parts > total {
		parts = total
	}

	// 3) Carve [0,total) left to right; the last chunk runs to total so
	//    the remainder is never dropped.
	size := total / parts
	out := make([]Range, parts)
	start := 0
	for i := 0; i < parts; i++ {
		end := start + size
		if i == parts-1 {
			end = total
		}
		out[i] = Range{Start: start, End: end}
		start = end
	}

	return out, nil
}
