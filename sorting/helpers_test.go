package sorting_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/sortviz/step"
)

// elemsOf builds elements with IDs "element-<i>".
func elemsOf(vals ...float64) []step.Element {
	out := make([]step.Element, len(vals))
	for i, v := range vals {
		out[i] = step.Element{Value: v, ID: fmt.Sprintf("element-%d", i)}
	}
	return out
}

// counts returns the number of comparison and swap steps.
func counts(tr step.Trace) (cmps, swaps int) {
	for _, s := range tr {
		if s.IsComparison() {
			cmps++
		}
		if s.IsSwap() {
			swaps++
		}
	}
	return cmps, swaps
}

// permutations returns every ordering of vals.
func permutations(vals []float64) [][]float64 {
	if len(vals) <= 1 {
		return [][]float64{append([]float64(nil), vals...)}
	}
	var out [][]float64
	for i := range vals {
		rest := make([]float64, 0, len(vals)-1)
		rest = append(rest, vals[:i]...)
		rest = append(rest, vals[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]float64{vals[i]}, p...))
		}
	}
	return out
}

// replay re-applies each announced operation to the previous snapshot and
// requires the result to equal the recorded snapshot:
//   - comparison / sorted-only steps leave the array unchanged;
//   - a two-index swap exchanges those positions;
//   - a one-index swap is a placement at k: either nothing moved, or the
//     element now at k was rotated there from a later index.
func replay(t *testing.T, input []step.Element, tr step.Trace) {
	t.Helper()
	prev := input
	for n, s := range tr {
		want := step.Clone(prev)
		switch len(s.Swapping) {
		case 0:
		case 2:
			i, j := s.Swapping[0], s.Swapping[1]
			want[i], want[j] = want[j], want[i]
		case 1:
			k := s.Swapping[0]
			if want[k].ID != s.Array[k].ID {
				m := k + 1
				for m < len(want) && want[m].ID != s.Array[k].ID {
					m++
				}
				if m == len(want) {
					t.Fatalf("step %d: element %s placed at %d did not come from the right", n, s.Array[k].ID, k)
				}
				e := want[m]
				copy(want[k+1:m+1], want[k:m])
				want[k] = e
			}
		default:
			t.Fatalf("step %d: unexpected swapping set %v", n, s.Swapping)
		}
		if len(s.Comparing) > 0 && (len(s.Comparing) != 2 || s.Comparing[0] == s.Comparing[1]) {
			t.Fatalf("step %d: comparing set %v must name two distinct indices", n, s.Comparing)
		}
		if diff := cmp.Diff(want, s.Array); diff != "" {
			t.Fatalf("step %d %+v does not follow from step %d (-want +got):\n%s", n, s, n-1, diff)
		}
		prev = s.Array
	}
}
