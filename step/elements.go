package step

import (
	"github.com/samber/lo"
)

// Clone returns a deep copy of elems. OriginalValue pointers are duplicated,
// so the copy shares no memory with the source.
// Complexity: O(n).
func Clone(elems []Element) []Element {
	out := make([]Element, len(elems))
	for i, e := range elems {
		out[i] = e
		if e.OriginalValue != nil {
			v := *e.OriginalValue
			out[i].OriginalValue = &v
		}
	}
	return out
}

// Range returns the index range [0..n). A non-positive n yields an empty,
// non-nil slice so "all sorted" on an empty array is still a set.
func Range(n int) []int {
	if n <= 0 {
		return []int{}
	}
	return lo.Range(n)
}

// IDs returns the element IDs in order.
func IDs(elems []Element) []string {
	return lo.Map(elems, func(e Element, _ int) string { return e.ID })
}

// Values returns the element values in order.
func Values(elems []Element) []float64 {
	return lo.Map(elems, func(e Element, _ int) float64 { return e.Value })
}

// IsSortedByValue reports whether elems is non-decreasing by Value.
func IsSortedByValue(elems []Element) bool {
	for i := 1; i < len(elems); i++ {
		if elems[i].Value < elems[i-1].Value {
			return false
		}
	}
	return true
}

// Snapshot builds a Step over a fresh copy of arr. Index slices are copied
// too; callers may reuse their buffers.
func Snapshot(arr []Element, comparing, swapping, sorted []int) Step {
	return Step{
		Array:     Clone(arr),
		Comparing: copyIndices(comparing),
		Swapping:  copyIndices(swapping),
		Sorted:    copyIndices(sorted),
	}
}

func copyIndices(idx []int) []int {
	if idx == nil {
		return nil
	}
	out := make([]int, len(idx))
	copy(out, idx)
	return out
}
