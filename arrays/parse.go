package arrays

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/katalvlaran/sortviz/step"
)

// ParseInput reads comma-separated numbers, e.g. "64, 34, 25".
//
// Steps:
//  1. Blank text → ErrEmptyInput.
//  2. Split on ',' and trim each token; the first token that is empty or
//     not a finite float64 → *ParseError (matches ErrParse).
//  3. Count outside [MinParsed, maxLen] → ErrInvalidSize.
//  4. Rescale linearly into the display range and floor the result;
//     if every value is equal, use DefaultEqualValue (or the floored
//     midpoint of a WithDisplayRange range).
//
// Every element keeps the parsed number in OriginalValue.
// Complexity: O(n).
func ParseInput(text string, opts ...Option) ([]step.Element, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}
	cfg := newConfig(opts...)

	tokens := strings.Split(strings.TrimSpace(text), ",")
	nums := make([]float64, len(tokens))
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &ParseError{Token: tok, Pos: i}
		}
		nums[i] = v
	}

	if len(nums) < MinParsed || len(nums) > cfg.maxLen {
		return nil, fmt.Errorf("ParseInput: %d values, want %d..%d: %w", len(nums), MinParsed, cfg.maxLen, ErrInvalidSize)
	}

	return normalize(nums, cfg), nil
}

// normalize maps nums into [displayMin, displayMax].
func normalize(nums []float64, cfg config) []step.Element {
	minV, maxV := lo.Min(nums), lo.Max(nums)
	span := maxV - minV
	width := cfg.displayMax - cfg.displayMin

	out := make([]step.Element, len(nums))
	for i, v := range nums {
		var scaled float64
		if span == 0 {
			scaled = cfg.equalValue
		} else {
			scaled = math.Floor((v-minV)/span*width + cfg.displayMin)
		}
		orig := v
		out[i] = step.Element{Value: scaled, ID: cfg.idFn(i), OriginalValue: &orig}
	}
	return out
}

// Originals returns the user-facing values of elems: OriginalValue when set,
// Value otherwise.
func Originals(elems []step.Element) []float64 {
	return lo.Map(elems, func(e step.Element, _ int) float64 { return e.Display() })
}
