package sorting

import "github.com/katalvlaran/sortviz/step"

// recorder owns the working copy of one run and appends snapshots of it.
type recorder struct {
	arr    []step.Element
	trace  step.Trace
	onStep func(step.Step)
}

// record runs body over a private copy of input and returns the trace.
// Inputs shorter than two elements skip body; every run ends with the
// all-sorted step.
func record(input []step.Element, body func(r *recorder), opts ...Option) step.Trace {
	cfg := newRunConfig(opts...)
	r := &recorder{
		arr:    step.Clone(input),
		onStep: cfg.onStep,
	}
	if len(r.arr) > 1 {
		body(r)
	}
	r.emit(nil, nil, step.Range(len(r.arr)))

	return r.trace
}

func (r *recorder) emit(comparing, swapping, sorted []int) {
	s := step.Snapshot(r.arr, comparing, swapping, sorted)
	r.trace = append(r.trace, s)
	r.onStep(s)
}

// less reports arr[i] < arr[j] by Value.
func (r *recorder) less(i, j int) bool { return r.arr[i].Value < r.arr[j].Value }

// compare emits a comparison step for i and j.
func (r *recorder) compare(i, j int) {
	r.emit([]int{i, j}, nil, nil)
}

// swap exchanges i and j and emits the result. Exchanging an index with
// itself is still reported, with a single index.
func (r *recorder) swap(i, j int) {
	r.arr[i], r.arr[j] = r.arr[j], r.arr[i]
	if i == j {
		r.emit(nil, []int{i}, nil)
		return
	}
	r.emit(nil, []int{i, j}, nil)
}

// place emits a placement step for k; the move itself was done by the caller.
func (r *recorder) place(k int) {
	r.emit(nil, []int{k}, nil)
}

// mark emits a step declaring idx final.
func (r *recorder) mark(idx ...int) {
	r.emit(nil, nil, idx)
}

// rotate moves arr[j] to position i, shifting arr[i..j-1] one slot right.
// The relative order of the shifted elements is unchanged.
func (r *recorder) rotate(i, j int) {
	e := r.arr[j]
	copy(r.arr[i+1:j+1], r.arr[i:j])
	r.arr[i] = e
}
