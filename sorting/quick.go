package sorting

import "github.com/katalvlaran/sortviz/step"

// Quick is quicksort with the Lomuto partition scheme.
//
// The pivot is always the last element of the current range. Every other
// element is compared against it; elements strictly smaller are exchanged
// into the low side (an exchange of an index with itself is skipped). The
// pivot is then swapped into its final index, which is marked sorted before
// recursing left and right.
//
// Unstable. Worst case n(n-1)/2 comparisons on already ordered input.
func Quick(input []step.Element, opts ...Option) step.Trace {
	return record(input, func(r *recorder) {
		quickSort(r, 0, len(r.arr)-1)
	}, opts...)
}

func quickSort(r *recorder, lo, hi int) {
	if lo >= hi {
		return
	}
	p := partition(r, lo, hi)
	r.mark(p)
	quickSort(r, lo, p-1)
	quickSort(r, p+1, hi)
}

func partition(r *recorder, lo, hi int) int {
	i := lo - 1
	for j := lo; j < hi; j++ {
		r.compare(j, hi)
		if r.less(j, hi) {
			i++
			if i != j {
				r.swap(i, j)
			}
		}
	}
	r.swap(i+1, hi)

	return i + 1
}
