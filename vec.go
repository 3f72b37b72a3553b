package vec

import (
	"fmt"
	"strings"

	"github.com/npillmayer/fp/maybe"
)

// Vector is an immutable persistent sequence of elements of type T.
//
// The zero value is a valid empty vector:
//
//	v := vec.Vector[int]{}.Append(42)
//
// Every operation with modifying character returns a new vector and leaves
// its receiver untouched. Unmodified parts of the underlying trie are shared
// between incarnations.
type Vector[T any] struct {
	props
	size   int      // total number of elements, including both buffers
	offset int      // virtual trie index of the first interior element
	front  []T      // ≤ degree elements in front of the balanced interior
	back   []T      // ≤ degree elements behind the balanced interior
	root   *vnode[T]
}

// Immutable creates an empty vector, with options if you need any.
func Immutable[T any](opts ...Option) Vector[T] {
	v := Vector[T]{}
	for _, option := range opts {
		v.props = option.config(v.props)
	}
	return v
}

// Of creates a vector holding the given values, in order.
func Of[T any](values ...T) Vector[T] {
	return From(values)
}

// From creates a vector from a slice of values, preserving their order.
// The input slice is copied; the vector will not alias it. Construction is
// done in bulk: full leaves are assembled directly instead of appending
// element by element.
func From[T any](values []T, opts ...Option) Vector[T] {
	b := NewBuilder[T](opts...)
	b.AppendAll(values)
	return b.Vector()
}

// FromInts creates a vector directly from a primitive integer array.
// The resulting vector has element kind Int (see Kind) and keeps its leaf
// storage unboxed.
func FromInts(values []int, opts ...Option) Vector[int] {
	return From(values, opts...)
}

// FromBytes creates a vector directly from a byte array. The resulting
// vector has element kind Byte and keeps its leaf storage unboxed.
func FromBytes(values []byte, opts ...Option) Vector[byte] {
	return From(values, opts...)
}

// Option is a type to help initializing vectors at creation time.
type Option struct {
	config func(props) props
}

// DegreeExponent is an option to indirectly set the degree of the underlying
// trie for a vector. The degree of the trie will be 2^exp. Accepted exponents
// are [1…5]; default is 5, i.e. a degree of 32.
//
// Use it like this:
//
//	vec := vec.Immutable[int](vec.DegreeExponent(2))
//
// Small degrees produce deep tries and are mainly useful for testing.
func DegreeExponent(n int) Option {
	conf := func(p props) props {
		if n <= 0 {
			n = defaultBits
		} else if n > 5 {
			n = 5
		}
		p = props{bits: n}
		p.degree = 1 << p.bits
		p.mask = p.degree - 1
		return p
	}
	return Option{config: conf}
}

// --- Queries ---------------------------------------------------------------

// Len returns the number of elements in the vector.
func (v Vector[T]) Len() int {
	return v.size
}

// IsEmpty returns true if the vector holds no elements.
func (v Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Get returns the element at index i. If i is negative or not less than
// the vector's length, ErrIndexOutOfBounds is returned.
func (v Vector[T]) Get(i int) (T, error) {
	if i < 0 || i >= v.size {
		var none T
		return none, ErrIndexOutOfBounds
	}
	v.props = v.props.init()
	return v.at(i), nil
}

// Head returns the first element of the vector. For an empty vector,
// ErrEmptyVector is returned.
func (v Vector[T]) Head() (T, error) {
	if v.size == 0 {
		var none T
		return none, ErrEmptyVector
	}
	v.props = v.props.init()
	return v.at(0), nil
}

// Last returns the final element of the vector. For an empty vector,
// ErrEmptyVector is returned.
func (v Vector[T]) Last() (T, error) {
	if v.size == 0 {
		var none T
		return none, ErrEmptyVector
	}
	v.props = v.props.init()
	return v.at(v.size - 1), nil
}

// HeadOption returns the first element of the vector, or Nothing for an
// empty vector.
func (v Vector[T]) HeadOption() maybe.Maybe[T] {
	if v.size == 0 {
		return maybe.Nothing[T]()
	}
	v.props = v.props.init()
	return maybe.Just(v.at(0))
}

// LastOption returns the final element of the vector, or Nothing for an
// empty vector.
func (v Vector[T]) LastOption() maybe.Maybe[T] {
	if v.size == 0 {
		return maybe.Nothing[T]()
	}
	v.props = v.props.init()
	return maybe.Just(v.at(v.size - 1))
}

// at returns the element with logical index i. i has to be valid.
func (v Vector[T]) at(i int) T {
	f := len(v.front)
	if i < f {
		return v.front[i]
	}
	j := i - f
	il := v.ilen()
	if j >= il {
		return v.back[j-il]
	}
	at := v.offset + j
	leaf := v.leafFor(at)
	return leaf.leafs[at&v.mask]
}

// --- Point edits -----------------------------------------------------------

// Update returns a new vector with the element at index i replaced by value.
// The receiver is left untouched. If i is negative or not less than the
// vector's length, ErrIndexOutOfBounds is returned.
//
// Only the nodes along the root-to-leaf path of i are copied; all sibling
// subtrees are shared with the receiver.
func (v Vector[T]) Update(i int, value T) (Vector[T], error) {
	if i < 0 || i >= v.size {
		return v, ErrIndexOutOfBounds
	}
	v.props = v.props.init()
	f := len(v.front)
	if i < f {
		newFront := cloneBuf(v.front, f)
		newFront[i] = value
		v.front = newFront
		return v, nil
	}
	j := i - f
	il := v.ilen()
	if j >= il {
		newBack := cloneBuf(v.back, len(v.back))
		newBack[j-il] = value
		v.back = newBack
		return v, nil
	}
	at := v.offset + j
	newRoot := v.root.clone()
	node := newRoot
	for level := v.shift; level > 0; level -= v.bits {
		sub := (at >> level) & v.mask
		child := node.children[sub].clone()
		node.children[sub] = child
		node = child
	}
	node.leafs[at&v.mask] = value
	v.root = newRoot
	return v, nil
}

// Append returns a new vector with value added after the final element.
// Appending is amortized O(1): elements collect in a small buffer, which is
// flushed as a whole leaf into the balanced trie whenever it runs full.
func (v Vector[T]) Append(value T) Vector[T] {
	v.props = v.props.init()
	if len(v.back) < v.degree {
		newBack := cloneBuf(v.back, len(v.back)+1)
		newBack[len(v.back)] = value
		v.back = newBack
		v.size++
		return v
	}
	// back buffer is full ⇒ flush it into the trie as a new rightmost leaf
	tracer().Debugf("back buffer full, flushing %d elements into trie", len(v.back))
	w := v.withAppendedLeaf(newLeaf(v.back))
	w.back = []T{value}
	w.size = v.size + 1
	return w
}

// Prepend returns a new vector with value added before the first element.
// Prepending mirrors Append against the front buffer and the left edge of
// the trie and is amortized O(1) as well.
func (v Vector[T]) Prepend(value T) Vector[T] {
	v.props = v.props.init()
	if len(v.front) < v.degree {
		newFront := make([]T, len(v.front)+1)
		newFront[0] = value
		copy(newFront[1:], v.front)
		v.front = newFront
		v.size++
		return v
	}
	tracer().Debugf("front buffer full, flushing %d elements into trie", len(v.front))
	w := v.withPrependedLeaf(newLeaf(v.front))
	w.front = []T{value}
	w.size = v.size + 1
	return w
}

// --- Stringer --------------------------------------------------------------

func (v Vector[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	first := true
	for x := range v.Range() {
		if !first {
			b.WriteByte(',')
		}
		b.WriteString(fmt.Sprintf("%v", x))
		first = false
	}
	b.WriteByte(']')
	return b.String()
}
