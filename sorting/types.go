package sorting

import "github.com/katalvlaran/sortviz/step"

// Func is the common signature of every engine.
type Func func(input []step.Element, opts ...Option) step.Trace

// Option configures a run via functional arguments.
type Option func(*runConfig)

type runConfig struct {
	// onStep observes each step as soon as it is recorded.
	onStep func(step.Step)
}

func newRunConfig(opts ...Option) runConfig {
	cfg := runConfig{onStep: func(step.Step) {}}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithOnStep registers a hook invoked once per emitted step, in trace order.
// The hook must not modify the step. Panics on nil.
func WithOnStep(fn func(step.Step)) Option {
	if fn == nil {
		panic("sorting: WithOnStep(nil)")
	}
	return func(c *runConfig) {
		c.onStep = fn
	}
}
