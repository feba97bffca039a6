package playback

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/sortviz/stats"
	"github.com/katalvlaran/sortviz/step"
)

// Option configures a Player.
type Option func(*Player)

// WithClock replaces time.Now for elapsed-time accounting. Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("playback: WithClock(nil)")
	}
	return func(p *Player) {
		p.now = now
	}
}

// Player is a cursor over a trace. The cursor starts before the first step
// (Index() == -1).
type Player struct {
	trace   step.Trace
	pos     int
	counter stats.Counter
	now     func() time.Time
	elapsed time.Duration
}

// New returns a Player positioned before the first step of trace.
func New(trace step.Trace, opts ...Option) *Player {
	p := &Player{trace: trace, pos: -1, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Len returns the number of steps.
func (p *Player) Len() int { return len(p.trace) }

// Index returns the cursor position, -1 before the first step.
func (p *Player) Index() int { return p.pos }

// Done reports whether the cursor is on the last step.
func (p *Player) Done() bool { return p.pos == len(p.trace)-1 }

// Current returns the step under the cursor, or false before the first step.
func (p *Player) Current() (step.Step, bool) {
	if p.pos < 0 {
		return step.Step{}, false
	}
	return p.trace[p.pos], true
}

// Next advances one step. It returns false, leaving the cursor alone, at the end.
func (p *Player) Next() (step.Step, bool) {
	if p.Done() {
		return step.Step{}, false
	}
	p.pos++
	s := p.trace[p.pos]
	p.counter.OnStep(s)
	return s, true
}

// Prev moves back one step and returns the new current step; false once the
// cursor is before the first step. Elapsed play time is kept.
func (p *Player) Prev() (step.Step, bool) {
	if p.pos < 0 {
		return step.Step{}, false
	}
	if p.pos == 0 {
		p.pos = -1
		p.counter.Reset()
		return step.Step{}, false
	}
	_ = p.Seek(p.pos - 1)
	return p.Current()
}

// Seek moves the cursor to i and recomputes the counters for trace[0..i].
func (p *Player) Seek(i int) error {
	if i < 0 || i >= len(p.trace) {
		return fmt.Errorf("Seek(%d) with %d steps: %w", i, len(p.trace), ErrOutOfRange)
	}
	p.counter.Reset()
	for _, s := range p.trace[:i+1] {
		p.counter.OnStep(s)
	}
	p.pos = i
	return nil
}

// Reset rewinds before the first step and clears counters and elapsed time.
func (p *Player) Reset() {
	p.pos = -1
	p.counter.Reset()
	p.elapsed = 0
}

// Stats returns the counters for the steps shown so far plus elapsed Play time.
func (p *Player) Stats() stats.Stats {
	st := p.counter.Stats()
	st.Elapsed = p.elapsed
	return st
}

// Play shows the next step immediately and then one step per interval
// until the trace ends, ctx is cancelled, or fn returns an error.
// fn receives the step index and the step. Reaching the end returns nil;
// cancellation returns ctx.Err() with the cursor left on the last shown step.
func (p *Player) Play(ctx context.Context, interval time.Duration, fn func(i int, s step.Step) error) error {
	if interval <= 0 {
		return fmt.Errorf("Play(%v): %w", interval, ErrBadInterval)
	}
	if len(p.trace) == 0 {
		return ErrEmptyTrace
	}

	start := p.now()
	base := p.elapsed
	defer func() { p.elapsed = base + p.now().Sub(start) }()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for !p.Done() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		s, _ := p.Next()
		if err := fn(p.pos, s); err != nil {
			return fmt.Errorf("playback: step %d: %w", p.pos, err)
		}
		if p.Done() {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}

	return nil
}
