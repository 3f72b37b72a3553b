package vec

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a hash of the vector's logical sequence of elements. The
// hash is consistent with Equal: vectors comparing equal hash identically,
// independent of element kind, trie shape or buffer fill.
func (v Vector[T]) Hash() uint64 {
	d := xxhash.New()
	sep := []byte{0x1f}
	for run := range v.Runs() {
		for _, x := range run.Elems {
			_, _ = fmt.Fprintf(d, "%v", x)
			_, _ = d.Write(sep)
		}
	}
	return d.Sum64()
}
