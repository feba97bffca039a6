package sorting_test

import (
	"testing"

	"github.com/katalvlaran/sortviz/arrays"
	"github.com/katalvlaran/sortviz/sorting"
)

// benchmarkEngine runs one engine over a fixed random array of size n.
func benchmarkEngine(b *testing.B, alg sorting.Algorithm, n int) {
	in, err := arrays.GenerateRandom(n, 20, 400, arrays.WithSeed(1))
	if err != nil {
		b.Fatalf("GenerateRandom: %v", err)
	}
	fn, err := sorting.Lookup(alg)
	if err != nil {
		b.Fatalf("Lookup: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = fn(in)
	}
}

func BenchmarkBubble_100(b *testing.B)    { benchmarkEngine(b, sorting.BubbleSort, 100) }
func BenchmarkSelection_100(b *testing.B) { benchmarkEngine(b, sorting.SelectionSort, 100) }
func BenchmarkInsertion_100(b *testing.B) { benchmarkEngine(b, sorting.InsertionSort, 100) }
func BenchmarkMerge_100(b *testing.B)     { benchmarkEngine(b, sorting.MergeSort, 100) }
func BenchmarkQuick_100(b *testing.B)     { benchmarkEngine(b, sorting.QuickSort, 100) }
func BenchmarkHeap_100(b *testing.B)      { benchmarkEngine(b, sorting.HeapSort, 100) }
