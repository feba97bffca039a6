package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sortviz/catalog"
	"github.com/katalvlaran/sortviz/sorting"
	"github.com/katalvlaran/sortviz/step"
)

// TestCatalog_CoversRegistry keeps the YAML table in sync with the engines.
func TestCatalog_CoversRegistry(t *testing.T) {
	all, err := catalog.All()
	require.NoError(t, err)
	require.Len(t, all, len(sorting.All()))

	for i, alg := range sorting.All() {
		assert.Equal(t, alg, all[i].Key, "display order")
		info, err := catalog.Get(alg)
		require.NoError(t, err)
		assert.NotEmpty(t, info.Name)
		assert.NotEmpty(t, info.Description)
		assert.NotEmpty(t, info.Time.Worst)
		assert.NotEmpty(t, info.Space)
		assert.NotEmpty(t, info.Pros)
		assert.NotEmpty(t, info.Cons)
	}
}

// TestCatalog_StabilityMatchesEngines checks each Stable flag against a run
// on duplicated values whose input order differs from the sorted order.
func TestCatalog_StabilityMatchesEngines(t *testing.T) {
	in := []step.Element{
		{Value: 2, ID: "a"}, {Value: 2, ID: "b"}, {Value: 1, ID: "c"}, {Value: 2, ID: "d"},
	}
	for _, alg := range sorting.All() {
		info, err := catalog.Get(alg)
		require.NoError(t, err)
		if !info.Stable {
			continue
		}
		tr, err := sorting.Run(alg, in)
		require.NoError(t, err)
		last, _ := tr.Final()
		assert.Equal(t, []string{"c", "a", "b", "d"}, step.IDs(last.Array), alg.String())
	}
}

func TestCatalog_Unknown(t *testing.T) {
	_, err := catalog.Get("shell")
	assert.ErrorIs(t, err, catalog.ErrUnknownAlgorithm)
	assert.Equal(t, "shell", catalog.Name("shell"))
	assert.Equal(t, "Quick Sort", catalog.Name(sorting.QuickSort))
}

// TestCatalog_AllIsCopy ensures callers cannot corrupt the table.
func TestCatalog_AllIsCopy(t *testing.T) {
	a, err := catalog.All()
	require.NoError(t, err)
	a[0].Name = "changed"
	b, _ := catalog.All()
	assert.Equal(t, "Bubble Sort", b[0].Name)
}
