// Package step defines the shared data contract of the sorting engines:
// the Element being sorted, the Step snapshot emitted by an engine, and the
// Trace that collects a run.
//
// 🚀 What is a Step?
//
//	A Step is one immutable, fully materialized snapshot of algorithm
//	progress. It carries the complete array at that point plus the indices
//	a consumer should highlight:
//	  • Comparing — the 0–2 indices being compared
//	  • Swapping  — the indices being exchanged or placed
//	  • Sorted    — the indices now guaranteed to be in final position
//
// ✨ Guarantees:
//   - Array is a deep copy; later mutation never alters an emitted step.
//   - Element.ID is assigned once at input time and travels with the
//     element through every step, so a UI can animate by identity.
//   - Validate checks a whole trace: index bounds, ID multiset, final
//     sortedness and a complete final Sorted set.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/sortviz/step"
//
//	snap := step.Clone(arr)                 // independent copy
//	s := step.Step{Array: snap, Comparing: []int{0, 1}}
//	full := step.Range(len(arr))            // [0..n)
//	err := step.Validate(initial, trace)    // audit a run
//
// The JSON shape (array/comparing/swapping/sorted, value/id/originalValue)
// is the one consumed by the browser playback layer.
package step
