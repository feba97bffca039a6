package sorting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sortviz/sorting"
)

func TestParse(t *testing.T) {
	cases := map[string]sorting.Algorithm{
		"bubble":         sorting.BubbleSort,
		"  Selection  ":  sorting.SelectionSort,
		"Insertion Sort": sorting.InsertionSort,
		"mergesort":      sorting.MergeSort,
		"QUICK":          sorting.QuickSort,
		"heap sort":      sorting.HeapSort,
	}
	for in, want := range cases {
		got, err := sorting.Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "sort", "shell", "bogo sort"} {
		_, err := sorting.Parse(bad)
		assert.ErrorIs(t, err, sorting.ErrUnknownAlgorithm, bad)
	}
}

func TestLookupAndRun(t *testing.T) {
	assert.Len(t, sorting.All(), 6)
	for _, a := range sorting.All() {
		assert.True(t, a.Valid())
		fn, err := sorting.Lookup(a)
		require.NoError(t, err)
		assert.NotNil(t, fn)
	}

	_, err := sorting.Lookup("shell")
	assert.ErrorIs(t, err, sorting.ErrUnknownAlgorithm)

	tr, err := sorting.Run("shell", elemsOf(2, 1))
	assert.ErrorIs(t, err, sorting.ErrUnknownAlgorithm)
	assert.Nil(t, tr)
}
