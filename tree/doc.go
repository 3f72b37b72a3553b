/*
Package tree implements a small all-purpose rooted tree.

Nodes carry an identifier and a payload, maintain an ordered list of
children, and may be attached to and detached from parents freely.
Predicate-driven traversal and collection operate top down:

	root.Traverse(func(n *tree.Node[string]) bool {
	    return n.Value() != "skip me and my subtree"
	})
	hits := root.Collect(isInteresting)

This package has no structural sharing and no performance-critical paths;
it complements the persistent vector of the parent module for clients that
need a plain hierarchical structure next to their sequences.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'vec.tree'.
func tracer() tracing.Trace {
	return tracing.Select("vec.tree")
}
