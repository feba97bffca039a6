package arrays

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sortviz/step"
)

// GenerateRandom returns size elements with values drawn uniformly from
// [min, max] and IDs from the configured scheme ("element-<i>" by default).
//
// With WithIntegers the draw is over the whole numbers in
// [ceil(min), floor(max)], both ends inclusive. Otherwise values are
// continuous; min == max yields a constant array.
//
// Errors: ErrInvalidSize (size outside [1, MaxSize]); ErrInvalidRange for
// non-finite bounds, min > max, or an integer span too wide to draw from.
// Complexity: O(size).
func GenerateRandom(size int, min, max float64, opts ...Option) ([]step.Element, error) {
	if size < 1 || size > MaxSize {
		return nil, fmt.Errorf("GenerateRandom: size %d not in [1,%d]: %w", size, MaxSize, ErrInvalidSize)
	}
	if !finite(min) || !finite(max) || min > max {
		return nil, fmt.Errorf("GenerateRandom: bad range [%g,%g]: %w", min, max, ErrInvalidRange)
	}
	cfg := newConfig(opts...)

	lo, hi := min, max
	if cfg.integers {
		lo, hi = math.Ceil(min), math.Floor(max)
		if lo > hi {
			return nil, fmt.Errorf("GenerateRandom: no integer in [%g,%g]: %w", min, max, ErrInvalidRange)
		}
		// Int63n needs the inclusive count to fit in int64.
		if hi-lo >= math.MaxInt64 {
			return nil, fmt.Errorf("GenerateRandom: integer span [%g,%g] too wide: %w", min, max, ErrInvalidRange)
		}
	}

	out := make([]step.Element, size)
	for i := range out {
		var v float64
		if cfg.integers {
			v = lo + float64(cfg.rng.Int63n(int64(hi-lo)+1))
		} else {
			v = lo + cfg.rng.Float64()*(hi-lo)
		}
		out[i] = step.Element{Value: v, ID: cfg.idFn(i)}
	}

	return out, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
