package step

import "errors"

// Sentinel errors reported by Validate. Each is wrapped with the offending
// step number, so callers branch with errors.Is.
var (
	// ErrEmptyTrace indicates a trace without any step.
	ErrEmptyTrace = errors.New("step: trace is empty")

	// ErrIndexOutOfRange indicates a Comparing/Swapping/Sorted index outside [0, n).
	ErrIndexOutOfRange = errors.New("step: index out of range")

	// ErrLengthMismatch indicates a snapshot whose length differs from the input.
	ErrLengthMismatch = errors.New("step: snapshot length mismatch")

	// ErrIdentityDrift indicates the multiset of element IDs changed during a run.
	ErrIdentityDrift = errors.New("step: element identity changed")

	// ErrNotSorted indicates the final snapshot is not ascending by Value.
	ErrNotSorted = errors.New("step: final array is not sorted")

	// ErrIncompleteSorted indicates the final Sorted set is not the full index range.
	ErrIncompleteSorted = errors.New("step: final sorted set is incomplete")
)
