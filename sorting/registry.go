package sorting

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/sortviz/step"
)

// Algorithm identifies one of the six engines. Its string form is the
// identifier used by the UI ("bubble", "selection", ...).
type Algorithm string

// The six engines, in display order.
const (
	BubbleSort    Algorithm = "bubble"
	SelectionSort Algorithm = "selection"
	InsertionSort Algorithm = "insertion"
	MergeSort     Algorithm = "merge"
	QuickSort     Algorithm = "quick"
	HeapSort      Algorithm = "heap"
)

var engines = map[Algorithm]Func{
	BubbleSort:    Bubble,
	SelectionSort: Selection,
	InsertionSort: Insertion,
	MergeSort:     Merge,
	QuickSort:     Quick,
	HeapSort:      Heap,
}

// All returns every algorithm in display order.
func All() []Algorithm {
	return []Algorithm{BubbleSort, SelectionSort, InsertionSort, MergeSort, QuickSort, HeapSort}
}

// String implements fmt.Stringer.
func (a Algorithm) String() string { return string(a) }

// Valid reports whether a names a known engine.
func (a Algorithm) Valid() bool {
	_, ok := engines[a]
	return ok
}

// Parse resolves a user-supplied name. Matching ignores case, surrounding
// space and an optional " sort" suffix, so "Quick Sort" and "quick" agree.
func Parse(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimSpace(strings.TrimSuffix(key, "sort"))
	a := Algorithm(key)
	if !a.Valid() {
		return "", fmt.Errorf("Parse(%q): %w", name, ErrUnknownAlgorithm)
	}
	return a, nil
}

// Lookup returns the engine for a.
func Lookup(a Algorithm) (Func, error) {
	fn, ok := engines[a]
	if !ok {
		return nil, fmt.Errorf("Lookup(%q): %w", string(a), ErrUnknownAlgorithm)
	}
	return fn, nil
}

// Run executes the engine for a over input.
func Run(a Algorithm, input []step.Element, opts ...Option) (step.Trace, error) {
	fn, err := Lookup(a)
	if err != nil {
		return nil, err
	}
	return fn(input, opts...), nil
}
