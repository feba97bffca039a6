package sorting

import "github.com/katalvlaran/sortviz/step"

// Heap builds a max-heap bottom-up, then repeatedly swaps the root (the
// maximum) to the end of the heap, marks that index sorted and sifts the
// new root down.
//
// Sift-down is recursive: compare left child, then right child, against
// the current largest; if a child wins, swap and recurse into it.
//
// Unstable. O(n log n) comparisons in every case.
func Heap(input []step.Element, opts ...Option) step.Trace {
	return record(input, heapSort, opts...)
}

func heapSort(r *recorder) {
	n := len(r.arr)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(r, n, i)
	}
	for end := n - 1; end > 0; end-- {
		r.swap(0, end)
		r.mark(end)
		siftDown(r, end, 0)
	}
}

// siftDown restores the heap property below i within arr[0:size].
func siftDown(r *recorder, size, i int) {
	largest := i
	left, right := 2*i+1, 2*i+2
	if left < size {
		r.compare(left, largest)
		if r.less(largest, left) {
			largest = left
		}
	}
	if right < size {
		r.compare(right, largest)
		if r.less(largest, right) {
			largest = right
		}
	}
	if largest != i {
		r.swap(i, largest)
		siftDown(r, size, largest)
	}
}
