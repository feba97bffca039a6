package step

import (
	"fmt"

	"github.com/samber/lo"
)

// Validate audits a trace produced from initial.
//
// Checks, in order, for every step k:
//  1. len(Array) == len(initial)                    → ErrLengthMismatch
//  2. all highlight indices lie in [0, n)           → ErrIndexOutOfRange
//  3. the ID multiset equals the initial multiset   → ErrIdentityDrift
//
// and for the final step:
//  4. Array is ascending by Value                   → ErrNotSorted
//  5. Sorted equals [0..n) as a set                 → ErrIncompleteSorted
//
// Complexity: O(steps · n).
func Validate(initial []Element, trace Trace) error {
	if len(trace) == 0 {
		return ErrEmptyTrace
	}
	n := len(initial)
	want := lo.CountValues(IDs(initial))

	for k, s := range trace {
		if len(s.Array) != n {
			return fmt.Errorf("step %d: got %d elements, want %d: %w", k, len(s.Array), n, ErrLengthMismatch)
		}
		for _, set := range [][]int{s.Comparing, s.Swapping, s.Sorted} {
			for _, i := range set {
				if i < 0 || i >= n {
					return fmt.Errorf("step %d: index %d not in [0,%d): %w", k, i, n, ErrIndexOutOfRange)
				}
			}
		}
		got := lo.CountValues(IDs(s.Array))
		if len(got) != len(want) {
			return fmt.Errorf("step %d: %w", k, ErrIdentityDrift)
		}
		for id, c := range want {
			if got[id] != c {
				return fmt.Errorf("step %d: id %q seen %d times, want %d: %w", k, id, got[id], c, ErrIdentityDrift)
			}
		}
	}

	last := trace[len(trace)-1]
	if !IsSortedByValue(last.Array) {
		return fmt.Errorf("step %d: %w", len(trace)-1, ErrNotSorted)
	}
	marked := lo.Uniq(last.Sorted)
	if len(marked) != n {
		return fmt.Errorf("step %d: %d of %d indices marked: %w", len(trace)-1, len(marked), n, ErrIncompleteSorted)
	}

	return nil
}
