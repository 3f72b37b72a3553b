package vec

// Kind describes the element representation of a vector's leaf storage.
// Vectors over a primitive numeric element type keep their elements in
// unboxed arrays of that type; everything else (interface element types in
// particular) is Generic.
//
// The kind is decided once, at the trie level, from the vector's element
// type; it is never inspected per element. Kinds are an optimization only:
// two vectors holding the same logical sequence of values compare equal and
// iterate identically regardless of their kinds.
type Kind uint8

const (
	Generic Kind = iota // boxed element storage
	Int                 // unboxed integer storage
	Byte                // unboxed byte storage
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "Int"
	case Byte:
		return "Byte"
	}
	return "Generic"
}

// Kind returns the element kind of the vector's leaf storage.
//
// Kinds only ever widen: an operation producing values outside a vector's
// narrow kind, like a heterogeneous Map or Widen, yields a Generic result.
// Narrowing is never retrofitted onto existing vectors.
func (v Vector[T]) Kind() Kind {
	return kindFor[T]()
}

func kindFor[T any]() Kind {
	var probe T
	switch any(probe).(type) {
	case byte:
		return Byte
	case int, int8, int16, int32, int64, uint, uint16, uint32, uint64:
		return Int
	}
	return Generic
}
