package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
)

// Node is the base type our tree is built of. Each node carries an
// identifier (not necessarily unique), a payload of type parameter T, and
// an ordered list of children.
//
// In contrast to the persistent vector of the parent module, tree nodes are
// mutable and intended for single-goroutine use.
type Node[T any] struct {
	id       string
	value    T
	parent   *Node[T]
	children []*Node[T]
}

// New creates a new tree node with a given identifier and payload.
func New[T any](id string, value T) *Node[T] {
	assertThat(id != "", "node identifier may not be empty")
	return &Node[T]{id: id, value: value}
}

// ID returns the node's identifier.
func (node *Node[T]) ID() string {
	return node.id
}

// Value returns the node's payload.
func (node *Node[T]) Value() T {
	return node.value
}

// Parent returns the node's parent, or nil for a root node.
func (node *Node[T]) Parent() *Node[T] {
	return node.parent
}

// Children returns the node's children in order. The returned slice is a
// copy; modifying it does not affect the tree.
func (node *Node[T]) Children() []*Node[T] {
	if len(node.children) == 0 {
		return nil
	}
	ch := make([]*Node[T], len(node.children))
	copy(ch, node.children)
	return ch
}

// ChildCount returns the number of children of this node.
func (node *Node[T]) ChildCount() int {
	return len(node.children)
}

// IsLeaf returns true if the node has no children.
func (node *Node[T]) IsLeaf() bool {
	return len(node.children) == 0
}

// IsRoot returns true if the node has no parent.
func (node *Node[T]) IsRoot() bool {
	return node.parent == nil
}

// Root walks up the parent chain and returns the root of the tree this
// node belongs to.
func (node *Node[T]) Root() *Node[T] {
	n := node
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// Attach connects child to this node, appending it after the existing
// children. If child is currently attached elsewhere, it is detached from
// there first. Returns false if child already is a child of this node.
func (node *Node[T]) Attach(child *Node[T]) bool {
	assertThat(child != nil, "attempt to attach nil child")
	assertThat(child != node, "attempt to attach a node to itself")
	for _, ch := range node.children {
		if ch == child {
			return false
		}
	}
	if child.parent != nil {
		child.parent.Detach(child)
	}
	tracer().Debugf("attaching node %s to %s", child.id, node.id)
	child.parent = node
	node.children = append(node.children, child)
	return true
}

// Detach disconnects child from this node, making child the root of its
// own subtree. Returns false if child is not a child of this node.
func (node *Node[T]) Detach(child *Node[T]) bool {
	for i, ch := range node.children {
		if ch == child {
			tracer().Debugf("detaching node %s from %s", child.id, node.id)
			node.children = append(node.children[:i], node.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Traverse walks the tree top down, testing the given predicate against
// each node. If the predicate holds, traversal descends into the node's
// children; otherwise the subtree is skipped and traversal continues with
// the node's siblings.
func (node *Node[T]) Traverse(predicate func(*Node[T]) bool) {
	if predicate(node) {
		for _, ch := range node.children {
			ch.Traverse(predicate)
		}
	}
}

// Collect walks the tree top down, applying the given predicate to each
// node. Nodes for which the predicate holds become part of the result, in
// traversal order. Unlike Traverse, Collect always descends.
func (node *Node[T]) Collect(predicate func(*Node[T]) bool) []*Node[T] {
	var result []*Node[T]
	node.collect(predicate, &result)
	return result
}

func (node *Node[T]) collect(predicate func(*Node[T]) bool, result *[]*Node[T]) {
	if predicate(node) {
		*result = append(*result, node)
	}
	for _, ch := range node.children {
		ch.collect(predicate, result)
	}
}

// --- Stringer --------------------------------------------------------------

func (node *Node[T]) String() string {
	b := strings.Builder{}
	node.write(&b, 0)
	return b.String()
}

func (node *Node[T]) write(b *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	b.WriteString(indent)
	b.WriteString(node.id)
	b.WriteByte('(')
	b.WriteString(strings.TrimSpace(fmt.Sprintf("%v", node.value)))
	if len(node.children) > 0 {
		for i, ch := range node.children {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
			ch.write(b, depth+1)
		}
		b.WriteByte('\n')
		b.WriteString(indent)
	}
	b.WriteByte(')')
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("tree: "+msg, msgargs...)
		panic(msg)
	}
}
