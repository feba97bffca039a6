// Package narrate turns trace steps into one-line explanations for the
// step-by-step panel of the visualizer.
//
// Values are shown as the user typed them (Element.Display), so normalized
// bar heights never leak into the text.
package narrate

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/sortviz/sorting"
	"github.com/katalvlaran/sortviz/step"
)

// Describe explains a single step of algorithm a. A step carrying several
// roles yields their sentences joined by "; ".
func Describe(a sorting.Algorithm, s step.Step) string {
	var parts []string
	if len(s.Comparing) == 2 {
		parts = append(parts, comparing(a, s))
	}
	switch len(s.Swapping) {
	case 1:
		parts = append(parts, placing(a, s))
	case 2:
		parts = append(parts, swapping(a, s))
	}
	if len(s.Sorted) > 0 {
		parts = append(parts, sorted(a, s))
	}
	if len(parts) == 0 {
		return "Array is sorted"
	}
	return strings.Join(parts, "; ")
}

// Lines describes every step of trace, prefixed with its 1-based number.
func Lines(a sorting.Algorithm, trace step.Trace) []string {
	out := make([]string, len(trace))
	for i, s := range trace {
		out[i] = fmt.Sprintf("Step %d: %s", i+1, Describe(a, s))
	}
	return out
}

// at renders "v (index i)".
func at(s step.Step, i int) string {
	return fmt.Sprintf("%g (index %d)", s.Array[i].Display(), i)
}

func comparing(a sorting.Algorithm, s step.Step) string {
	i, j := s.Comparing[0], s.Comparing[1]
	switch a {
	case sorting.SelectionSort:
		return fmt.Sprintf("Comparing current minimum %s with %s", at(s, i), at(s, j))
	case sorting.QuickSort:
		return fmt.Sprintf("Comparing %s with pivot %s", at(s, i), at(s, j))
	case sorting.HeapSort:
		return fmt.Sprintf("Comparing child %s with %s", at(s, i), at(s, j))
	case sorting.MergeSort:
		return fmt.Sprintf("Comparing left run %s with right run %s", at(s, i), at(s, j))
	default:
		return fmt.Sprintf("Comparing %s with %s", at(s, i), at(s, j))
	}
}

func swapping(a sorting.Algorithm, s step.Step) string {
	i, j := s.Swapping[0], s.Swapping[1]
	switch a {
	case sorting.InsertionSort:
		return fmt.Sprintf("Shifting %g right to index %d", s.Array[j].Display(), j)
	case sorting.HeapSort:
		if i == 0 && isExtraction(s, j) {
			return fmt.Sprintf("Moving maximum %g to index %d", s.Array[j].Display(), j)
		}
	}
	return fmt.Sprintf("Swapping: %s and %s", at(s, i), at(s, j))
}

// isExtraction reports whether the root swap landed the heap maximum at j.
// A sift-down swap from the root leaves a larger child at index 0.
func isExtraction(s step.Step, j int) bool {
	for _, e := range s.Array[:j] {
		if e.Value > s.Array[j].Value {
			return false
		}
	}
	return true
}

func placing(a sorting.Algorithm, s step.Step) string {
	k := s.Swapping[0]
	if a == sorting.QuickSort {
		return fmt.Sprintf("Pivot %s is already in place", at(s, k))
	}
	return fmt.Sprintf("Placing %g at index %d", s.Array[k].Display(), k)
}

func sorted(a sorting.Algorithm, s step.Step) string {
	n := len(s.Array)
	switch {
	case len(s.Sorted) == n:
		return "Array is sorted"
	case a == sorting.InsertionSort:
		return fmt.Sprintf("Indices 0-%d form a sorted prefix", s.Sorted[len(s.Sorted)-1])
	case len(s.Sorted) == 1 && a == sorting.QuickSort:
		return fmt.Sprintf("Pivot %s is in its final position", at(s, s.Sorted[0]))
	case len(s.Sorted) == 1:
		return fmt.Sprintf("%s is in its final position", at(s, s.Sorted[0]))
	default:
		return fmt.Sprintf("Indices %v are in their final position", s.Sorted)
	}
}
