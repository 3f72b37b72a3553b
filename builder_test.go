package vec

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vec")
	defer teardown()
	//
	b := NewBuilder[int](DegreeExponent(2))
	for i := 0; i < 23; i++ {
		b.Append(i)
	}
	if b.Len() != 23 {
		t.Fatalf("builder reports length %d, expected 23", b.Len())
	}
	v := b.Vector()
	if v.Len() != 23 {
		t.Fatalf("built vector has length %d", v.Len())
	}
	for i := 0; i < 23; i++ {
		if x, err := v.Get(i); err != nil || x != i {
			t.Errorf("built vector element %d = %d, err = %v", i, x, err)
		}
	}
	checkAddressing(t, v)
}

func TestBuilderAppendAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vec")
	defer teardown()
	//
	b := NewBuilder[string]()
	b.Append("a")
	b.AppendAll([]string{"b", "c", "d"})
	v := b.Vector()
	if v.String() != "[a,b,c,d]" {
		t.Errorf("built vector is %s", v)
	}
}

func TestBuilderDone(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vec")
	defer teardown()
	//
	b := NewBuilder[int]()
	b.Append(1)
	v := b.Vector()
	defer func() {
		if recover() == nil {
			t.Error("append to a completed builder did not panic")
		}
	}()
	b.Append(2)
	_ = v
}

func TestBuilderEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vec")
	defer teardown()
	//
	v := NewBuilder[float64]().Vector()
	if !v.IsEmpty() {
		t.Errorf("builder without elements produced vector of length %d", v.Len())
	}
}
