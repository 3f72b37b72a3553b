package vec

import "iter"

// LeafRun describes a contiguous run of elements as stored in a single leaf
// (or buffer) of a vector. Runs are the fast path for linear scans: walking
// runs touches every element exactly once without a per-element descent
// through the trie.
type LeafRun[T any] struct {
	At    int // logical index of the first element of the run
	Elems []T // view into leaf storage; callers must not modify it
}

// Runs returns a lazy sequence of the vector's leaf runs in index order:
// the front buffer, the interior leaves, the back buffer. The sequence is
// finite and restartable.
func (v Vector[T]) Runs() iter.Seq[LeafRun[T]] {
	return func(yield func(LeafRun[T]) bool) {
		v.props = v.props.init()
		pos := 0
		if len(v.front) > 0 {
			if !yield(LeafRun[T]{At: 0, Elems: v.front}) {
				return
			}
			pos = len(v.front)
		}
		end := v.offset + v.ilen()
		for at := v.offset; at < end; at += v.degree {
			leaf := v.leafFor(at)
			if !yield(LeafRun[T]{At: pos, Elems: leaf.leafs}) {
				return
			}
			pos += v.degree
		}
		if len(v.back) > 0 {
			yield(LeafRun[T]{At: pos, Elems: v.back})
		}
	}
}

// Range returns a lazy sequence of the vector's elements in index order.
// Every call produces a fresh, restartable sequence. Use it like this:
//
//	for x := range v.Range() {
//	    …
//	}
func (v Vector[T]) Range() iter.Seq[T] {
	return func(yield func(T) bool) {
		for run := range v.Runs() {
			for _, x := range run.Elems {
				if !yield(x) {
					return
				}
			}
		}
	}
}

// ToSlice collects all elements of the vector into a fresh Go slice.
func (v Vector[T]) ToSlice() []T {
	if v.size == 0 {
		return nil
	}
	out := make([]T, 0, v.size)
	for run := range v.Runs() {
		out = append(out, run.Elems...)
	}
	return out
}

// --- Iterator --------------------------------------------------------------

// Iterator is a sequential cursor over the elements of a vector, in index
// order. It holds on to the current leaf run and walks it directly, fetching
// the next run from the trie only at run boundaries.
//
// An iterator is a one-shot object: exhaust it and create a fresh one for
// another pass.
type Iterator[T any] struct {
	vec Vector[T]
	pos int // logical index of the next element
	at  int // logical index of run[0]
	run []T // current leaf run
}

// Iterator creates a cursor positioned before the first element.
func (v Vector[T]) Iterator() *Iterator[T] {
	v.props = v.props.init()
	return &Iterator[T]{vec: v}
}

// HasNext returns true if the cursor has not reached the end of the vector.
func (it *Iterator[T]) HasNext() bool {
	return it.pos < it.vec.size
}

// Next returns the element under the cursor and advances it. Calling Next
// on an exhausted iterator is a programming error.
func (it *Iterator[T]) Next() T {
	assertThat(it.pos < it.vec.size, "iterator already exhausted")
	if it.run == nil || it.pos >= it.at+len(it.run) {
		it.run, it.at = it.vec.runFor(it.pos)
	}
	x := it.run[it.pos-it.at]
	it.pos++
	return x
}

// runFor locates the leaf run containing logical index i and returns it
// together with the logical index of its first element.
func (v Vector[T]) runFor(i int) ([]T, int) {
	f := len(v.front)
	if i < f {
		return v.front, 0
	}
	j := i - f
	il := v.ilen()
	if j >= il {
		return v.back, f + il
	}
	at := v.offset + j
	leaf := v.leafFor(at)
	start := at &^ v.mask
	return leaf.leafs, f + (start - v.offset)
}
