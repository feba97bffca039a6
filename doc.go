// Package sortviz is the step-generation engine behind a browser sorting
// visualizer: six classic comparison sorts that return a complete,
// replayable trace instead of just a sorted slice.
//
// 🚀 What is in the box?
//
//	• Array provider: random arrays and comma-separated user input, rescaled for display
//	• Step model: immutable snapshots with comparing / swapping / sorted highlights
//	• Engines: Bubble, Selection, Insertion, Merge, Quick, Heap
//	• Statistics: comparison and swap counters, batch or live
//	• Catalog & narration: complexity tables and one-line step explanations
//	• Playback: a cursor plus paced, cancellable replay
//
// ✨ Why a trace?
//
//   - Pure & deterministic – same input, same steps; safe to run concurrently
//   - Identity-preserving – element IDs follow elements, so bars animate by identity
//   - Auditable – step.Validate and replay tests prove every snapshot follows from the last
//   - Pacing is not the engine's business – timing lives in playback only
//
// Packages:
//
//	step/     — Element, Step, Trace, validation
//	arrays/   — GenerateRandom, ParseInput
//	sorting/  — the six engines and the name registry
//	stats/    — Accumulate, Counter, Efficiency
//	catalog/  — algorithm metadata (embedded YAML)
//	narrate/  — human-readable step descriptions
//	playback/ — Player with Next/Prev/Seek/Play
//	cmd/sortviz — terminal demo
//
// Quick ASCII example (bubble sort, first pass on [3 1 2]):
//
//	<3> <1>  2      compare 0,1
//	{1} {3}  2      swap 0,1
//	 1  <3> <2>     compare 1,2
//	 1  {2} {3}     swap 1,2
//	 1   2  [3]     index 2 sorted
//
//	go get github.com/katalvlaran/sortviz
package sortviz
