package vec

import (
	"fmt"
	"strings"
)

const defaultBits = 5 // will produce nodes with degree 2 ^ 5 = 32

// props collects the addressing parameters of a vector's trie.
type props struct {
	bits   int // number of bits to use per level
	degree int // degree is always 2 ^ bits
	mask   int // mask is degree - 1, i.e. a bit pattern with trailing 1s of length 'bits'
	shift  int // we do not store the trie height h, but rather bits * h
}

func (p props) init() props {
	if p.bits == 0 {
		p.bits = defaultBits
		p.degree = 1 << p.bits
		p.mask = p.degree - 1
	}
	return p
}

func (p props) withShift(shift int) props {
	p.shift = shift
	return p
}

// vnode represents a node in the trie a vector is made of. A vnode is either
// a branch, holding up to `degree` children, or a leaf, holding exactly
// `degree` elements. Nodes are never modified once they are referenced by a
// published vector.
type vnode[T any] struct {
	children []*vnode[T]
	leafs    []T
}

func emptyNode[T any](k int) *vnode[T] {
	return &vnode[T]{
		children: make([]*vnode[T], k),
	}
}

// newLeaf creates a leaf node holding a copy of the given elements.
func newLeaf[T any](elements []T) *vnode[T] {
	l := make([]T, len(elements))
	copy(l, elements)
	return &vnode[T]{leafs: l}
}

func (node *vnode[T]) isLeaf() bool {
	return node.leafs != nil
}

func (node *vnode[T]) clone() *vnode[T] {
	n := &vnode[T]{}
	if node.leafs != nil {
		n.leafs = make([]T, len(node.leafs))
		copy(n.leafs, node.leafs)
	}
	if node.children != nil {
		n.children = make([]*vnode[T], len(node.children))
		copy(n.children, node.children)
	}
	return n
}

func cloneBuf[T any](buf []T, l int) []T {
	newBuf := make([]T, l)
	copy(newBuf, buf[:min(l, len(buf))])
	return newBuf
}

func (node *vnode[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	if node.leafs != nil {
		for i, l := range node.leafs {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(fmt.Sprintf("%v", l))
		}
	} else {
		for i, c := range node.children {
			if i > 0 {
				b.WriteByte(',')
			}
			if c == nil {
				b.WriteByte('_')
			} else {
				b.WriteString("▪︎")
			}
		}
	}
	b.WriteByte(']')
	return b.String()
}

// --- Trie addressing -------------------------------------------------------

// ilen returns the number of elements stored in the balanced interior, i.e.
// outside of the two buffers. The interior occupies the virtual index range
// [offset, offset+ilen).
func (v Vector[T]) ilen() int {
	return v.size - len(v.front) - len(v.back)
}

// leafFor descends from the root to the leaf holding virtual index `at`.
func (v Vector[T]) leafFor(at int) *vnode[T] {
	node := v.root
	for level := v.shift; level > 0; level -= v.bits {
		node = node.children[(at>>level)&v.mask]
	}
	return node
}

// withAppendedLeaf hangs leaf into the trie as the new rightmost leaf,
// growing the trie by a level if the root has no more space. Only root,
// shift and offset are updated; the caller is responsible for adjusting
// size and buffers.
func (v Vector[T]) withAppendedLeaf(leaf *vnode[T]) Vector[T] {
	if v.root == nil {
		assertThat(v.offset == 0, "inconsistency: offset of empty trie expected to be 0, is %d", v.offset)
		v.root = leaf
		v.props = v.props.withShift(0)
		return v
	}
	end := v.offset + v.ilen() // virtual index where the new leaf starts
	if end >= v.degree<<v.shift { // root is full ⇒ increment shift
		newRoot := emptyNode[T](v.degree)
		newRoot.children[0] = v.root
		v.root = newRoot
		v.props = v.props.withShift(v.shift + v.bits)
		tracer().Debugf("trie grown to shift %d by append", v.shift)
	}
	v.root = v.insertLeaf(end, leaf)
	return v
}

// withPrependedLeaf hangs leaf into the trie as the new leftmost leaf. If
// there is no room at the left edge, the trie grows a level, with the old
// root moving to the last child slot of the new root and offset shifting
// by the freshly created headroom.
func (v Vector[T]) withPrependedLeaf(leaf *vnode[T]) Vector[T] {
	if v.root == nil {
		v.root = leaf
		v.props = v.props.withShift(0)
		v.offset = 0
		return v
	}
	if v.offset == 0 { // no room at the left edge ⇒ increment shift
		newRoot := emptyNode[T](v.degree)
		newRoot.children[v.mask] = v.root
		v.root = newRoot
		v.props = v.props.withShift(v.shift + v.bits)
		v.offset = v.mask << v.shift
		tracer().Debugf("trie grown to shift %d by prepend, offset now %d", v.shift, v.offset)
	}
	at := v.offset - v.degree
	v.root = v.insertLeaf(at, leaf)
	v.offset = at
	return v
}

// insertLeaf clones the path from the root towards virtual index `at` and
// hangs leaf in at the final slot. Nodes missing along the path are created;
// everything beside the path is shared with the original trie.
func (v Vector[T]) insertLeaf(at int, leaf *vnode[T]) *vnode[T] {
	assertThat(v.shift > 0, "attempt to insert a leaf beside a leaf-root")
	cow := v.root.clone()
	node := cow
	for level := v.shift; level > v.bits; level -= v.bits {
		sub := (at >> level) & v.mask
		child := node.children[sub]
		if child == nil {
			node.children[sub] = v.newPath(level-v.bits, at, leaf)
			return cow
		}
		child = child.clone()
		node.children[sub] = child
		node = child
	}
	node.children[(at>>v.bits)&v.mask] = leaf
	return cow
}

// newPath creates a chain of branch nodes from the given level down to leaf,
// following the child-selectors of virtual index `at`.
func (v Vector[T]) newPath(level int, at int, leaf *vnode[T]) *vnode[T] {
	node := leaf
	for l := v.bits; l <= level; l += v.bits {
		parent := emptyNode[T](v.degree)
		parent.children[(at>>l)&v.mask] = node
		node = parent
	}
	return node
}

// pruneLeft clones the path towards virtual index `to` and cuts off all
// children left of the path, making the leaf containing `to` the leftmost
// leaf of the trie. The boundary leaf itself and all subtrees right of the
// path stay shared.
func (v Vector[T]) pruneLeft(to int) *vnode[T] {
	if v.shift == 0 {
		return v.root
	}
	cow := v.root.clone()
	node := cow
	for level := v.shift; level > 0; level -= v.bits {
		sub := (to >> level) & v.mask
		for i := 0; i < sub; i++ {
			node.children[i] = nil
		}
		if level == v.bits {
			break
		}
		child := node.children[sub].clone()
		node.children[sub] = child
		node = child
	}
	return cow
}

// pruneRight is the mirror of pruneLeft: it cuts off all children right of
// the path towards virtual index `keep`, making the leaf containing `keep`
// the rightmost leaf of the trie.
func (v Vector[T]) pruneRight(keep int) *vnode[T] {
	if v.shift == 0 {
		return v.root
	}
	cow := v.root.clone()
	node := cow
	for level := v.shift; level > 0; level -= v.bits {
		sub := (keep >> level) & v.mask
		for i := sub + 1; i < v.degree; i++ {
			node.children[i] = nil
		}
		if level == v.bits {
			break
		}
		child := node.children[sub].clone()
		node.children[sub] = child
		node = child
	}
	return cow
}

// normalize re-establishes the trie invariants after a trimming operation:
// an empty interior drops the root altogether, and while the remaining
// interior fits into a single child of the root, the trie height shrinks.
func (v Vector[T]) normalize() Vector[T] {
	il := v.ilen()
	if il == 0 {
		v.root = nil
		v.offset = 0
		v.props = v.props.withShift(0)
		return v
	}
	for v.shift > 0 {
		first := v.offset >> v.shift
		last := (v.offset + il - 1) >> v.shift
		if first != last {
			break
		}
		v.root = v.root.children[first]
		v.offset -= first << v.shift
		v.props = v.props.withShift(v.shift - v.bits)
		tracer().Debugf("trie lowered to shift %d", v.shift)
	}
	return v
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("vec: "+msg, msgargs...)
		panic(msg)
	}
}
