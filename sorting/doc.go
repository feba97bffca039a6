// Package sorting implements six classic comparison sorts as step
// generators: instead of just sorting, each engine returns the complete,
// replayable trace of its execution as a step.Trace.
//
// 🚀 Engines and their trace contract:
//
//	Bubble    — compare [j,j+1] before each adjacent check, swap [j,j+1] on exchange,
//	            mark n-1-i after each pass, stop after a pass without swaps.
//	Selection — compare [min,j] for every scan, one swap [i,min] per pass when min≠i,
//	            mark i after each pass; strict < keeps the earliest minimum.
//	Insertion — compare [j,j+1] for each key check, one swap [j,j+1] per shift,
//	            mark [0..i] after each pass.
//	Merge     — compare [i,j] left vs right, one placement step [k] per element,
//	            everything marked only at the end; ties go left (stable).
//	Quick     — Lomuto, pivot = last element; compare [j,hi], swap [i,j] for each
//	            exchange plus the pivot placement, mark the pivot after partitioning.
//	Heap      — max-heap with recursive sift-down; compare [child,largest],
//	            swap [i,largest]; extraction swap [0,i] followed by mark i.
//
// Every trace ends with a step whose Sorted set is the full index range.
// Inputs of length 0 or 1 yield exactly that single step.
//
// ✨ Guarantees:
//   - Pure: the input slice is copied, never mutated.
//   - Deterministic: same input ⇒ identical trace.
//   - Identity-preserving: elements move, they are never duplicated or
//     dropped, so the ID multiset is the same in every snapshot.
//   - Safe for concurrent use on different (or the same) inputs.
//
// ⚙️ Usage:
//
//	trace := sorting.Bubble(elems)
//
//	// or by name, with an observation hook:
//	alg, _ := sorting.Parse("merge")
//	trace, err := sorting.Run(alg, elems, sorting.WithOnStep(counter.OnStep))
//
// Complexity of trace generation is O(T · n) where T is the number of steps,
// because every step owns a full copy of the array.
package sorting
