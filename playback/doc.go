// Package playback paces an already-computed trace for display.
//
// Step generation and timing are fully separate: a Player owns only a
// cursor into an immutable step.Trace. Play advances the cursor once per
// interval and hands each step to a callback; cancelling the context
// pauses, calling Play again resumes from the cursor, and Reset rewinds.
//
//	p := playback.New(trace)
//	ctx, cancel := context.WithCancel(context.Background())
//	err := p.Play(ctx, 200*time.Millisecond, func(i int, s step.Step) error {
//		render(s)
//		return nil
//	})
//
// Stats() reports the counters up to and including the cursor, equal to
// stats.Accumulate over the played prefix.
//
// A Player is not safe for concurrent use.
package playback
