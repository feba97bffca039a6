package step_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/katalvlaran/sortviz/step"
)

func elems(vals ...float64) []step.Element {
	out := make([]step.Element, len(vals))
	for i, v := range vals {
		out[i] = step.Element{Value: v, ID: "e" + string(rune('a'+i))}
	}
	return out
}

// TestClone_Independent verifies that mutating a clone never leaks back.
func TestClone_Independent(t *testing.T) {
	orig := 7.5
	src := []step.Element{{Value: 1, ID: "a", OriginalValue: &orig}, {Value: 2, ID: "b"}}
	cp := step.Clone(src)

	cp[0].Value = 99
	*cp[0].OriginalValue = 42
	cp[1].ID = "z"

	assert.Equal(t, 1.0, src[0].Value)
	assert.Equal(t, 7.5, *src[0].OriginalValue)
	assert.Equal(t, "b", src[1].ID)
}

// TestSnapshot_CopiesIndexBuffers ensures reused index buffers do not alias.
func TestSnapshot_CopiesIndexBuffers(t *testing.T) {
	arr := elems(3, 1)
	buf := []int{0, 1}
	s := step.Snapshot(arr, buf, nil, nil)
	buf[0] = 5
	arr[0].Value = 100

	assert.Equal(t, []int{0, 1}, s.Comparing)
	assert.Nil(t, s.Swapping)
	assert.Equal(t, 3.0, s.Array[0].Value)
}

func TestRange(t *testing.T) {
	assert.Equal(t, []int{}, step.Range(0))
	assert.Equal(t, []int{}, step.Range(-3))
	assert.Equal(t, []int{0, 1, 2}, step.Range(3))
}

func TestElement_Display(t *testing.T) {
	o := -4.0
	assert.Equal(t, -4.0, step.Element{Value: 20, OriginalValue: &o}.Display())
	assert.Equal(t, 20.0, step.Element{Value: 20}.Display())
	assert.Equal(t, "x=-4", step.Element{Value: 20, ID: "x", OriginalValue: &o}.String())
}

// TestValidate_Errors walks each sentinel Validate can report.
func TestValidate_Errors(t *testing.T) {
	start := elems(2, 1)
	sorted := []step.Element{start[1], start[0]}

	cases := []struct {
		name  string
		trace step.Trace
		want  error
	}{
		{"empty", nil, step.ErrEmptyTrace},
		{"length", step.Trace{{Array: start[:1]}}, step.ErrLengthMismatch},
		{"index", step.Trace{{Array: start, Comparing: []int{0, 2}}}, step.ErrIndexOutOfRange},
		{"negative", step.Trace{{Array: start, Sorted: []int{-1}}}, step.ErrIndexOutOfRange},
		{"identity", step.Trace{{Array: []step.Element{start[0], start[0]}}}, step.ErrIdentityDrift},
		{"unsorted", step.Trace{{Array: start, Sorted: []int{0, 1}}}, step.ErrNotSorted},
		{"incomplete", step.Trace{{Array: sorted, Sorted: []int{1, 1}}}, step.ErrIncompleteSorted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, step.Validate(start, tc.trace), tc.want)
		})
	}

	ok := step.Trace{
		{Array: start, Comparing: []int{0, 1}},
		{Array: sorted, Swapping: []int{0, 1}},
		{Array: sorted, Sorted: []int{0, 1}},
	}
	assert.NoError(t, step.Validate(start, ok))
}

// TestValidate_EmptyArray accepts the single all-sorted step of an empty run.
func TestValidate_EmptyArray(t *testing.T) {
	tr := step.Trace{{Array: []step.Element{}, Sorted: step.Range(0)}}
	assert.NoError(t, step.Validate(nil, tr))
}

func TestTrace_Final(t *testing.T) {
	_, ok := step.Trace{}.Final()
	assert.False(t, ok)

	tr := step.Trace{{Comparing: []int{0}}, {Sorted: []int{0}}}
	last, ok := tr.Final()
	require.True(t, ok)
	assert.Equal(t, []int{0}, last.Sorted)
	assert.Equal(t, 2, tr.Len())
	assert.True(t, tr[0].IsComparison())
	assert.False(t, tr[0].IsSwap())
}

// TestStep_JSONShape checks the field names the browser layer reads.
func TestStep_JSONShape(t *testing.T) {
	orig := 64.0
	s := step.Step{
		Array:     []step.Element{{Value: 400, ID: "element-0", OriginalValue: &orig}, {Value: 20, ID: "element-1"}},
		Comparing: []int{0, 1},
	}
	raw, err := json.Marshal(s)
	require.NoError(t, err)

	doc := gjson.ParseBytes(raw)
	assert.Equal(t, "element-0", doc.Get("array.0.id").String())
	assert.Equal(t, 64.0, doc.Get("array.0.originalValue").Float())
	assert.False(t, doc.Get("array.1.originalValue").Exists())
	assert.Equal(t, int64(1), doc.Get("comparing.1").Int())
	assert.False(t, doc.Get("swapping").Exists())
	assert.False(t, doc.Get("sorted").Exists())
}
