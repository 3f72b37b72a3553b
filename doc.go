/*
Package vec implements an immutable persistent vector, designed for use-cases
similar to Go slices.

An immutable persistent vector has copy-on-write behaviour: Each “modification”
of the vector (insertion, replacement or deletion) creates a copy, leaving the
original unmodified. Under the hood, copy-on-write retains most of the memory
held by the original, and creates a new incarnation of parts of the structure
only. Thus, most of the structure/memory is shared between original and copy,
transparently to clients.

Vectors organize their elements in a radix-balanced trie with a fixed branch
factor (32 by default). Elements at both ends live in small buffers outside
of the balanced trie, which makes appending and prepending single elements
amortized O(1), while random access stays at O(log n) with a very small
constant.

Due to their internal structure vectors have performance characteristics
differing from Go slices or arrays.

	Operation     |   Vector        |  Slice
	--------------+-----------------+--------
	Index         |   O(log n)      |   O(1)
	Append        |   O(1) am.      |   O(1) am., destructive
	Prepend       |   O(1) am.      |   O(n)
	Update        |   O(log n)      |   O(1), destructive
	Slice         |   O(log n)      |   O(1), aliasing
	Concatenate   |   O(n/B)        |   O(n)
	Iterate       |   O(n)          |   O(n)

Immutable vectors are inherently concurrency-safe: no operation ever mutates
a published vector or trie node, so any number of goroutines may read
overlapping vectors without locking.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package vec

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'vec'.
func tracer() tracing.Trace {
	return tracing.Select("vec")
}

// VecError is an error type for the vec module.
type VecError string

func (e VecError) Error() string {
	return string(e)
}

// ErrEmptyVector signals access to an element of an empty vector, e.g.
// calling Head or Tail on a vector of length zero.
const ErrEmptyVector = VecError("access to element of empty vector")

// ErrIndexOutOfBounds is flagged whenever a vector position is negative or
// not less than the length of the vector.
const ErrIndexOutOfBounds = VecError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid,
// e.g. negative or reversed slice boundaries.
const ErrIllegalArguments = VecError("illegal arguments")
