package sorting

import "github.com/katalvlaran/sortviz/step"

// Merge is top-down merge sort over [lo, hi] with mid = lo + (hi-lo)/2.
//
// Merging is done in place: when the right run wins, its head is rotated
// into the output slot k and the rest of the left run shifts one place
// right. Each snapshot is therefore a permutation of the input, showing
// the merged prefix followed by what remains of both runs.
//
// Ties (left <= right) take the left element, which keeps the sort stable.
// Nothing is marked sorted until the whole array is merged.
// Comparisons ≤ n⌈log₂n⌉ - 2^⌈log₂n⌉ + 1.
func Merge(input []step.Element, opts ...Option) step.Trace {
	return record(input, func(r *recorder) {
		mergeSort(r, 0, len(r.arr)-1)
	}, opts...)
}

func mergeSort(r *recorder, lo, hi int) {
	if lo >= hi {
		return
	}
	mid := lo + (hi-lo)/2
	mergeSort(r, lo, mid)
	mergeSort(r, mid+1, hi)
	merge(r, lo, mid, hi)
}

// merge combines the sorted runs [lo..mid] and [mid+1..hi].
// Invariant: [lo..i) is merged output, [i..mid] the left run, [j..hi] the right run.
func merge(r *recorder, lo, mid, hi int) {
	i, j := lo, mid+1
	for i <= mid && j <= hi {
		r.compare(i, j)
		if !r.less(j, i) {
			r.place(i)
			i++
			continue
		}
		r.rotate(i, j)
		r.place(i)
		i++
		mid++
		j++
	}
	for ; i <= mid; i++ {
		r.place(i)
	}
	for ; j <= hi; j++ {
		r.place(j)
	}
}
