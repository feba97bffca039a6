// Package stats derives running counters from a step trace.
//
// A comparison is any step with a non-empty Comparing set; a swap is any
// step with a non-empty Swapping set (merge placements included). The batch
// form Accumulate and the incremental Counter.OnStep always agree.
//
//	s := stats.Accumulate(trace)
//
//	var c stats.Counter
//	trace, _ := sorting.Run(alg, elems, sorting.WithOnStep(c.OnStep))
//	// c.Stats() == stats.Accumulate(trace)
//
// Efficiency reproduces the dashboard's score against an n² baseline.
package stats
