package sorting

import "github.com/katalvlaran/sortviz/step"

// Selection scans the unsorted suffix for its minimum and swaps it into
// position i, then marks i sorted.
//
// The minimum is tracked with a strict <, so among equal values the
// earliest one wins. The long-distance swap still makes the algorithm
// unstable. Exactly n(n-1)/2 comparisons, at most n-1 swaps.
func Selection(input []step.Element, opts ...Option) step.Trace {
	return record(input, selection, opts...)
}

func selection(r *recorder) {
	n := len(r.arr)
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			r.compare(minIdx, j)
			if r.less(j, minIdx) {
				minIdx = j
			}
		}
		if minIdx != i {
			r.swap(i, minIdx)
		}
		r.mark(i)
	}
}
