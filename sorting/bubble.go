package sorting

import "github.com/katalvlaran/sortviz/step"

// Bubble repeatedly sweeps adjacent pairs, exchanging those out of order.
//
// After pass i the largest remaining value has bubbled to n-1-i, which is
// then marked sorted. A pass with no exchange proves the rest is ordered
// and ends the run early.
//
// Stable. Comparisons ≤ n(n-1)/2; best case n-1 on sorted input.
func Bubble(input []step.Element, opts ...Option) step.Trace {
	return record(input, bubble, opts...)
}

func bubble(r *recorder) {
	n := len(r.arr)
	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-1-i; j++ {
			r.compare(j, j+1)
			if r.less(j+1, j) {
				r.swap(j, j+1)
				swapped = true
			}
		}
		r.mark(n - 1 - i)
		if !swapped {
			break
		}
	}
}
