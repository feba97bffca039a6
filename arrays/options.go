package arrays

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Deterministic defaults (named, no magic numbers).
const (
	// MaxSize is the largest array GenerateRandom accepts.
	MaxSize = 100

	// MinParsed is the smallest element count ParseInput accepts.
	MinParsed = 2

	// DefaultMaxLen is the largest element count ParseInput accepts by default.
	DefaultMaxLen = 100

	// DefaultDisplayMin and DefaultDisplayMax bound rescaled parsed values.
	DefaultDisplayMin = 20.0
	DefaultDisplayMax = 400.0

	// DefaultEqualValue is the display value of every element when all
	// parsed numbers are equal and the display range is the default one.
	DefaultEqualValue = 200.0
)

// Option customizes generation or parsing by mutating a config before use.
type Option func(*config)

type config struct {
	// rng drives GenerateRandom; nil means "seed from the clock".
	rng *rand.Rand
	// idFn maps an input position to the element ID.
	idFn func(int) string
	// integers draws whole numbers in [ceil(min), floor(max)].
	integers bool
	// maxLen caps ParseInput.
	maxLen int
	// display range for ParseInput normalization.
	displayMin, displayMax float64
	// equalValue replaces every value of an all-equal input.
	equalValue float64
}

func newConfig(opts ...Option) config {
	cfg := config{
		idFn:       ElementID,
		maxLen:     DefaultMaxLen,
		displayMin: DefaultDisplayMin,
		displayMax: DefaultDisplayMax,
		equalValue: DefaultEqualValue,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return cfg
}

// ElementID is the default ID scheme: "element-<index>".
func ElementID(i int) string {
	return fmt.Sprintf("element-%d", i)
}

// WithSeed seeds a private RNG so GenerateRandom is reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the RNG used by GenerateRandom. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("arrays: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithIDScheme overrides the element ID generator. Panics on nil.
func WithIDScheme(fn func(int) string) Option {
	if fn == nil {
		panic("arrays: WithIDScheme(nil)")
	}
	return func(c *config) {
		c.idFn = fn
	}
}

// WithIntegers makes GenerateRandom draw whole numbers only.
func WithIntegers() Option {
	return func(c *config) {
		c.integers = true
	}
}

// WithMaxLen raises or lowers the ParseInput ceiling. Panics when n < MinParsed.
func WithMaxLen(n int) Option {
	if n < MinParsed {
		panic(fmt.Sprintf("arrays: WithMaxLen(%d) below minimum %d", n, MinParsed))
	}
	return func(c *config) {
		c.maxLen = n
	}
}

// WithDisplayRange sets the range parsed values are rescaled into.
// All-equal input then maps to the floored midpoint of [lo, hi].
// Panics unless lo < hi.
func WithDisplayRange(lo, hi float64) Option {
	if !(lo < hi) {
		panic(fmt.Sprintf("arrays: WithDisplayRange(%g, %g) needs lo < hi", lo, hi))
	}
	return func(c *config) {
		c.displayMin, c.displayMax = lo, hi
		c.equalValue = math.Floor(lo + (hi-lo)/2)
	}
}
