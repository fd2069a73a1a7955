package sparse

import (
	"sort"
)

// Overlaps reports whether a and b share a value or touch at an edge.
// [1,5) and [5,6) overlap; [1,5) and [6,7) do not. Empty ranges never
// overlap anything.
func Overlaps(a, b Range) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	return a.start <= b.End() && b.start <= a.End()
}

// Split partitions src into the pieces before, inside and after by.
//
// All three pieces are nil when src and by do not overlap. Otherwise overlap
// is non-nil (it is empty when the ranges only touch), before is set when by
// starts after src, and after is set when src ends after by. The pieces are
// returned left to right and together cover src exactly.
func Split(src, by Range) (before, overlap, after *Range) {
	if !Overlaps(src, by) {
		return nil, nil, nil
	}

	lo := max(src.start, by.start)
	hi := min(src.End(), by.End())
	overlap = &Range{start: lo, length: hi - lo}

	if by.start > src.start {
		before = &Range{start: src.start, length: by.start - src.start}
	}
	if src.End() > by.End() {
		after = &Range{start: by.End(), length: src.End() - by.End()}
	}
	return before, overlap, after
}

// Merge coalesces overlapping or touching ranges into the smallest set of
// disjoint ranges covering the same values. The result is sorted by start.
func Merge(ranges ...Range) []Range {
	sorted := make([]Range, 0, len(ranges))
	for _, r := range ranges {
		if !r.Empty() {
			sorted = append(sorted, r)
		}
	}
	// Longer ranges first on equal starts so they absorb the shorter ones.
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].start != sorted[j].start {
			return sorted[i].start < sorted[j].start
		}
		return sorted[i].length > sorted[j].length
	})

	merged := make([]Range, 0, len(sorted))
	for _, r := range sorted {
		n := len(merged)
		if n > 0 && Overlaps(merged[n-1], r) {
			last := merged[n-1]
			end := max(last.End(), r.End())
			merged[n-1] = Range{start: last.start, length: end - last.start}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

// Min returns the smallest start among ranges, ignoring empty ones.
// ok is false when there is no non-empty range.
func Min(ranges []Range) (lowest int64, ok bool) {
	for _, r := range ranges {
		if r.Empty() {
			continue
		}
		if !ok || r.start < lowest {
			lowest = r.start
			ok = true
		}
	}
	return lowest, ok
}
