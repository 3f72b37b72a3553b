package vec

// Map produces a new vector of the same length, holding f(e) for every
// element e of v, in order. The result's element kind follows S: mapping a
// narrow-kinded vector through a function producing interface values yields
// a Generic vector.
func Map[T, S any](v Vector[T], f func(T) S) Vector[S] {
	b := newBuilder[S](v.props)
	for run := range v.Runs() {
		for _, x := range run.Elems {
			b.Append(f(x))
		}
	}
	return b.Vector()
}

// Map produces a new vector holding f(e) for every element e of v, in
// order. For mappings that change the element type, use the package-level
// Map function.
func (v Vector[T]) Map(f func(T) T) Vector[T] {
	return Map(v, f)
}

// Filter produces a new vector holding all elements of v satisfying
// predicate p, preserving their relative order.
func (v Vector[T]) Filter(p func(T) bool) Vector[T] {
	b := newBuilder[T](v.props)
	for run := range v.Runs() {
		for _, x := range run.Elems {
			if p(x) {
				b.Append(x)
			}
		}
	}
	return b.Vector()
}

// GroupBy partitions the elements of v by the given key function. Every
// group preserves the relative order of its elements in v.
func GroupBy[K comparable, T any](v Vector[T], key func(T) K) map[K]Vector[T] {
	groups := make(map[K]Vector[T])
	for x := range v.Range() {
		k := key(x)
		g, ok := groups[k]
		if !ok {
			g = Vector[T]{props: v.props.init().withShift(0)}
		}
		groups[k] = g.Append(x)
	}
	return groups
}

// Fold reduces the vector to a single value by applying f to an accumulator
// and every element, in index order, starting from zero. Fold walks leaf
// runs directly and carries no per-element trie overhead.
func Fold[T, A any](v Vector[T], zero A, f func(A, T) A) A {
	acc := zero
	for run := range v.Runs() {
		for _, x := range run.Elems {
			acc = f(acc, x)
		}
	}
	return acc
}

// Widen converts a vector with a narrow element kind into a Generic vector
// holding the same logical sequence. Leaf storage is rebuilt as boxed
// arrays; the input vector is untouched. This is the promotion applied
// whenever an operation has to accept or produce values outside a vector's
// narrow kind.
func Widen[T any](v Vector[T]) Vector[any] {
	return Map(v, func(x T) any { return x })
}

// Equal reports whether two vectors hold the same logical sequence of
// elements. Equality is representation-independent: a Generic vector and a
// narrow-kinded vector holding the same values compare equal, whatever the
// shape of their tries.
func Equal[T, S comparable](v Vector[T], w Vector[S]) bool {
	if v.Len() != w.Len() {
		return false
	}
	it := w.Iterator()
	for x := range v.Range() {
		if any(x) != any(it.Next()) {
			return false
		}
	}
	return true
}
