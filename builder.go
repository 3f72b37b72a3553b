package vec

// Builder constructs a vector from a stream of elements without creating
// intermediate vector incarnations. Elements collect in a mutable scratch
// buffer; every full buffer moves into the trie as a whole leaf. A builder
// therefore performs the same batching as AppendAll, but across any number
// of calls.
//
// A builder is single-use: after Vector() has been called, further appends
// are a programming error.
type Builder[T any] struct {
	vec  Vector[T]
	buf  []T
	done bool
}

// NewBuilder creates an empty builder, with vector options if you need any.
func NewBuilder[T any](opts ...Option) *Builder[T] {
	v := Immutable[T](opts...)
	v.props = v.props.init()
	return &Builder[T]{vec: v, buf: make([]T, 0, v.degree)}
}

// newBuilder creates a builder inheriting the trie parameters of an
// existing vector.
func newBuilder[T any](p props) *Builder[T] {
	p = p.init()
	p.shift = 0
	return &Builder[T]{vec: Vector[T]{props: p}, buf: make([]T, 0, p.degree)}
}

// Append adds a single element at the end of the vector under construction.
// It returns the builder to allow for chaining.
func (b *Builder[T]) Append(value T) *Builder[T] {
	assertThat(!b.done, "builder has already completed a vector")
	b.buf = append(b.buf, value)
	if len(b.buf) == b.vec.degree {
		b.flush()
	}
	return b
}

// AppendAll adds all values at the end of the vector under construction.
func (b *Builder[T]) AppendAll(values []T) *Builder[T] {
	for _, value := range values {
		b.Append(value)
	}
	return b
}

// Len returns the number of elements collected so far.
func (b *Builder[T]) Len() int {
	return b.vec.size + len(b.buf)
}

// Vector completes the construction and returns the built vector. The
// builder may not be used afterwards.
func (b *Builder[T]) Vector() Vector[T] {
	assertThat(!b.done, "builder has already completed a vector")
	b.done = true
	if len(b.buf) > 0 {
		b.vec.back = cloneBuf(b.buf, len(b.buf))
		b.vec.size += len(b.buf)
	}
	return b.vec
}

func (b *Builder[T]) flush() {
	b.vec = b.vec.withAppendedLeaf(newLeaf(b.buf))
	b.vec.size += b.vec.degree
	b.buf = b.buf[:0]
}
