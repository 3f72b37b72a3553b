package vec

// Tail returns the vector without its first element. For an empty vector,
// ErrEmptyVector is returned. Tail is amortized O(1): usually only the
// front buffer shrinks; when the buffer drains, the leftmost interior leaf
// is pulled out of the trie and becomes the new buffer.
func (v Vector[T]) Tail() (Vector[T], error) {
	if v.size == 0 {
		return v, ErrEmptyVector
	}
	v.props = v.props.init()
	return v.dropLeft(1), nil
}

// Init returns the vector without its final element, mirroring Tail.
// For an empty vector, ErrEmptyVector is returned.
func (v Vector[T]) Init() (Vector[T], error) {
	if v.size == 0 {
		return v, ErrEmptyVector
	}
	v.props = v.props.init()
	return v.dropRight(1), nil
}

// Slice returns the sub-vector with the elements of the half-open index
// range [from, to). Boundaries are checked against 0 ≤ from ≤ to ≤ Len();
// violations are flagged with ErrIllegalArguments.
//
// All interior leaves fully contained in the range stay shared with the
// receiver; only the two boundary leaves are copied (trimmed) into the
// buffers of the result. The trie height shrinks if the range fits into
// fewer levels.
func (v Vector[T]) Slice(from, to int) (Vector[T], error) {
	if from < 0 || to < from || to > v.size {
		return v, ErrIllegalArguments
	}
	v.props = v.props.init()
	w := v.dropRight(v.size - to)
	w = w.dropLeft(from)
	return w, nil
}

// Insert returns a new vector with value inserted before index i, shifting
// all subsequent elements one position up. i may equal Len(), which appends.
// Out-of-range indices are flagged with ErrIndexOutOfBounds.
//
// Insertion splits the vector at i, appends the value to the left part and
// concatenates the right part back on.
func (v Vector[T]) Insert(i int, value T) (Vector[T], error) {
	if i < 0 || i > v.size {
		return v, ErrIndexOutOfBounds
	}
	v.props = v.props.init()
	left := v.dropRight(v.size - i)
	right := v.dropLeft(i)
	return left.Append(value).Concat(right), nil
}

// Concat returns the concatenation of v and other. Whenever the seam is
// aligned to the branch factor, i.e. v's back buffer is empty and other
// starts with a full leaf, the leaves of other are hung into the result
// unchanged and stay shared with both operands. Otherwise the elements of
// other are re-batched into fresh leaves.
func (v Vector[T]) Concat(other Vector[T]) Vector[T] {
	v.props = v.props.init()
	other.props = other.props.init()
	if other.size == 0 {
		return v
	}
	if v.size == 0 {
		return other
	}
	if v.bits == other.bits && len(v.back) == 0 && len(other.front) == 0 {
		tracer().Debugf("aligned concat, sharing %d interior elements", other.ilen())
		w := v
		end := other.offset + other.ilen()
		for at := other.offset; at < end; at += other.degree {
			w = w.withAppendedLeaf(other.leafFor(at)) // leaf node is shared
			w.size += w.degree
		}
		if len(other.back) > 0 {
			w.back = cloneBuf(other.back, len(other.back))
			w.size += len(other.back)
		}
		return w
	}
	// boundary does not fall on a full leaf ⇒ re-batch other's runs
	w := v
	for run := range other.Runs() {
		w = w.AppendAll(run.Elems)
	}
	return w
}

// AppendAll returns a new vector with all values appended after the final
// element. Incoming elements are batched into full leaves directly, instead
// of paying the single-element buffer copy per element; only the remainder
// that does not fill a leaf ends up in the back buffer.
func (v Vector[T]) AppendAll(values []T) Vector[T] {
	v.props = v.props.init()
	if len(values) == 0 {
		return v
	}
	w := v
	rest := values
	if len(w.back) > 0 || len(rest) < w.degree {
		// top up the back buffer first
		k := min(w.degree-len(w.back), len(rest))
		newBack := make([]T, len(w.back)+k)
		copy(newBack, w.back)
		copy(newBack[len(w.back):], rest[:k])
		w.back = newBack
		w.size += k
		rest = rest[k:]
		if len(rest) == 0 {
			return w
		}
		// buffer ran full and elements are left over ⇒ flush
		w = w.withAppendedLeaf(newLeaf(w.back))
		w.back = nil
	}
	for len(rest) >= w.degree {
		w = w.withAppendedLeaf(newLeaf(rest[:w.degree]))
		w.size += w.degree
		rest = rest[w.degree:]
	}
	if len(rest) > 0 {
		w.back = cloneBuf(rest, len(rest))
		w.size += len(rest)
	}
	return w
}

// PrependAll returns a new vector with all values inserted before the first
// element, preserving their order. Like AppendAll it batches full leaves
// directly, consuming the input from its tail end towards the front.
func (v Vector[T]) PrependAll(values []T) Vector[T] {
	v.props = v.props.init()
	if len(values) == 0 {
		return v
	}
	w := v
	rest := values
	if len(w.front) > 0 || len(rest) < w.degree {
		k := min(w.degree-len(w.front), len(rest))
		newFront := make([]T, k+len(w.front))
		copy(newFront, rest[len(rest)-k:])
		copy(newFront[k:], w.front)
		w.front = newFront
		w.size += k
		rest = rest[:len(rest)-k]
		if len(rest) == 0 {
			return w
		}
		w = w.withPrependedLeaf(newLeaf(w.front))
		w.front = nil
	}
	for len(rest) >= w.degree {
		w = w.withPrependedLeaf(newLeaf(rest[len(rest)-w.degree:]))
		w.size += w.degree
		rest = rest[:len(rest)-w.degree]
	}
	if len(rest) > 0 {
		w.front = cloneBuf(rest, len(rest))
		w.size += len(rest)
	}
	return w
}

// --- Trimming --------------------------------------------------------------

// dropLeft removes the first n elements. n has to be within [0, size].
func (v Vector[T]) dropLeft(n int) Vector[T] {
	if n == 0 {
		return v
	}
	if n >= v.size {
		assertThat(n == v.size, "attempt to drop more elements than the vector holds")
		return Vector[T]{props: v.props.withShift(0)}
	}
	f := len(v.front)
	if n < f { // drop stays within the front buffer
		w := v
		w.front = cloneBuf(v.front[n:], f-n)
		w.size = v.size - n
		return w
	}
	m := n - f
	il := v.ilen()
	if m >= il { // interior is dropped completely, remainder cuts the back buffer
		w := Vector[T]{props: v.props.withShift(0)}
		w.back = cloneBuf(v.back[m-il:], len(v.back)-(m-il))
		w.size = v.size - n
		return w
	}
	end := v.offset + il
	r := v.offset + m // virtual index of the new first element
	leafStart := r &^ v.mask
	w := v
	w.size = v.size - n
	if r == leafStart {
		// boundary falls on a full leaf ⇒ keep it inside the trie
		w.front = nil
		w.offset = r
		w.root = w.pruneLeft(r)
	} else {
		// trim the boundary leaf into the front buffer
		leaf := v.leafFor(r)
		w.front = cloneBuf(leaf.leafs[r-leafStart:], leafStart+v.degree-r)
		newOffset := leafStart + v.degree
		if newOffset >= end { // nothing left in the interior
			w.root = nil
			w.offset = 0
			w.props = w.props.withShift(0)
			return w
		}
		w.offset = newOffset
		w.root = w.pruneLeft(newOffset)
	}
	return w.normalize()
}

// dropRight removes the final n elements, mirroring dropLeft.
func (v Vector[T]) dropRight(n int) Vector[T] {
	if n == 0 {
		return v
	}
	if n >= v.size {
		assertThat(n == v.size, "attempt to drop more elements than the vector holds")
		return Vector[T]{props: v.props.withShift(0)}
	}
	b := len(v.back)
	if n < b {
		w := v
		w.back = cloneBuf(v.back, b-n)
		w.size = v.size - n
		return w
	}
	m := n - b
	il := v.ilen()
	if m >= il {
		w := Vector[T]{props: v.props.withShift(0)}
		keep := len(v.front) - (m - il)
		w.front = cloneBuf(v.front, keep)
		w.size = v.size - n
		return w
	}
	r := v.offset + il - m - 1 // virtual index of the new final element
	leafStart := r &^ v.mask
	w := v
	w.size = v.size - n
	if r == leafStart+v.degree-1 {
		w.back = nil
		w.root = w.pruneRight(r)
	} else {
		leaf := v.leafFor(r)
		w.back = cloneBuf(leaf.leafs, r-leafStart+1)
		if leafStart <= v.offset { // nothing left in the interior
			w.root = nil
			w.offset = 0
			w.props = w.props.withShift(0)
			return w
		}
		w.root = w.pruneRight(leafStart - 1)
	}
	return w.normalize()
}
