package step

import "fmt"

// Element is one value being sorted.
//
// Fields:
//   - Value         — the magnitude used for ordering (and bar height).
//   - ID            — stable identity assigned at input time; never changes.
//   - OriginalValue — the pre-normalization input, nil when Value was not rescaled.
type Element struct {
	Value         float64  `json:"value"`
	ID            string   `json:"id"`
	OriginalValue *float64 `json:"originalValue,omitempty"`
}

// Display returns the value a human should see: OriginalValue when present,
// otherwise Value.
func (e Element) Display() float64 {
	if e.OriginalValue != nil {
		return *e.OriginalValue
	}
	return e.Value
}

// String renders the element as "id=value".
func (e Element) String() string {
	return fmt.Sprintf("%s=%g", e.ID, e.Display())
}

// Step is one snapshot of an engine run.
// Several roles may be set at once (e.g. a sorted marker next to a swap).
type Step struct {
	// Array is the full sequence at this point, deep-copied.
	Array []Element `json:"array"`

	// Comparing holds the 0–2 indices currently being compared.
	Comparing []int `json:"comparing,omitempty"`

	// Swapping holds the indices currently being exchanged or placed.
	Swapping []int `json:"swapping,omitempty"`

	// Sorted holds indices now in their final position.
	Sorted []int `json:"sorted,omitempty"`
}

// IsComparison reports whether the step carries a non-empty Comparing set.
func (s Step) IsComparison() bool { return len(s.Comparing) > 0 }

// IsSwap reports whether the step carries a non-empty Swapping set.
func (s Step) IsSwap() bool { return len(s.Swapping) > 0 }

// Trace is the ordered list of steps produced by one run.
type Trace []Step

// Len returns the number of steps.
func (t Trace) Len() int { return len(t) }

// Final returns the last step, or false when the trace is empty.
func (t Trace) Final() (Step, bool) {
	if len(t) == 0 {
		return Step{}, false
	}
	return t[len(t)-1], true
}
