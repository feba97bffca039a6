package stats

import (
	"math"
	"time"

	"github.com/katalvlaran/sortviz/step"
)

// Stats holds the counters shown next to the visualization.
type Stats struct {
	Comparisons int
	Swaps       int
	// Elapsed is wall-clock playback time; zero for batch accumulation.
	Elapsed time.Duration
}

// Operations returns Comparisons + Swaps.
func (s Stats) Operations() int { return s.Comparisons + s.Swaps }

// Accumulate counts the comparison and swap steps of trace.
// Complexity: O(len(trace)).
func Accumulate(trace step.Trace) Stats {
	var c Counter
	for _, s := range trace {
		c.OnStep(s)
	}
	return c.Stats()
}

// Counter accumulates Stats one step at a time. The zero value is ready to
// use. Not safe for concurrent use.
type Counter struct {
	st Stats
}

// OnStep folds one step into the counters. Its signature matches
// sorting.WithOnStep.
func (c *Counter) OnStep(s step.Step) {
	if s.IsComparison() {
		c.st.Comparisons++
	}
	if s.IsSwap() {
		c.st.Swaps++
	}
}

// Stats returns the totals so far.
func (c *Counter) Stats() Stats { return c.st }

// Reset zeroes the counters.
func (c *Counter) Reset() { c.st = Stats{} }

// Efficiency scores a run against the quadratic baseline n²:
//
//	max(0, 100 - (comparisons + swaps) / n² · 100)
//
// Higher is better. Returns 0 when n == 0.
func Efficiency(s Stats, n int) float64 {
	if n <= 0 {
		return 0
	}
	baseline := float64(n) * float64(n)
	return math.Max(0, 100-float64(s.Operations())/baseline*100)
}
