package sorting

import "github.com/katalvlaran/sortviz/step"

// Insertion grows a sorted prefix one element at a time.
//
// The key at i walks left by adjacent exchange while its left neighbour is
// strictly greater; each check is a comparison step and each move a swap
// step. Landing in place needs no extra step because the key is already
// there. After each pass the prefix [0..i] is marked.
//
// Stable. Comparisons ≤ n(n-1)/2; n-1 on sorted input.
func Insertion(input []step.Element, opts ...Option) step.Trace {
	return record(input, insertion, opts...)
}

func insertion(r *recorder) {
	n := len(r.arr)
	for i := 1; i < n; i++ {
		for j := i - 1; j >= 0; j-- {
			r.compare(j, j+1)
			if !r.less(j+1, j) {
				break
			}
			r.swap(j, j+1)
		}
		r.mark(step.Range(i + 1)...)
	}
}
