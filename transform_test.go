package vec

import (
	"strconv"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vec")
	defer teardown()
	//
	v := From([]int{1, 2, 3, 4, 5}, DegreeExponent(1))
	doubled := v.Map(func(x int) int { return x * 2 })
	require.True(t, Equal(doubled, Of(2, 4, 6, 8, 10)), "expected mapped vector to be [2,4,6,8,10]")
	require.True(t, Equal(v, Of(1, 2, 3, 4, 5)), "original vector modified by map")
	//
	strs := Map(v, strconv.Itoa)
	require.Equal(t, 5, strs.Len())
	s, err := strs.Get(2)
	require.NoError(t, err)
	require.Equal(t, "3", s)
}

func TestFilterLarge(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vec")
	defer teardown()
	//
	var values []int
	for i := 0; i < 300; i++ {
		values = append(values, i)
	}
	v := From(values, DegreeExponent(2))
	even := v.Filter(func(x int) bool { return x%2 == 0 })
	require.Equal(t, 150, even.Len())
	for i := 0; i < 150; i++ {
		x, err := even.Get(i)
		require.NoError(t, err)
		require.Equal(t, 2*i, x, "relative order not preserved at %d", i)
	}
}

func TestGroupByPreservesOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vec")
	defer teardown()
	//
	v := Of("ant", "bee", "cow", "ape", "bat", "cat")
	groups := GroupBy(v, func(s string) byte { return s[0] })
	require.Len(t, groups, 3)
	require.True(t, Equal(groups['a'], Of("ant", "ape")))
	require.True(t, Equal(groups['b'], Of("bee", "bat")))
	require.True(t, Equal(groups['c'], Of("cow", "cat")))
}

func TestFold(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vec")
	defer teardown()
	//
	v := From([]int{3, 1, 4, 1, 5}, DegreeExponent(1))
	sum := Fold(v, 0, func(acc, x int) int { return acc + x })
	require.Equal(t, 14, sum)
	concat := Fold(v, "", func(acc string, x int) string { return acc + strconv.Itoa(x) })
	require.Equal(t, "31415", concat)
}

func TestEqualAcrossRepresentations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vec")
	defer teardown()
	//
	shallow := Of(1, 2, 3, 4, 5, 6, 7, 8)
	deep := From([]int{1, 2, 3, 4, 5, 6, 7, 8}, DegreeExponent(1))
	require.True(t, Equal(shallow, deep), "trie shape must not influence equality")
	require.True(t, Equal(deep, Widen(shallow)), "element kind must not influence equality")
	require.False(t, Equal(shallow, Of(1, 2, 3)))
	require.False(t, Equal(shallow, Of(1, 2, 3, 4, 5, 6, 7, 9)))
}

func TestHashConsistentWithEqual(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vec")
	defer teardown()
	//
	shallow := Of(1, 2, 3, 4, 5, 6, 7, 8)
	deep := From([]int{1, 2, 3, 4, 5, 6, 7, 8}, DegreeExponent(1))
	require.Equal(t, shallow.Hash(), deep.Hash(), "equal vectors must hash identically")
	require.Equal(t, shallow.Hash(), Widen(deep).Hash(), "hash must be kind-independent")
	require.NotEqual(t, shallow.Hash(), Of(8, 7, 6, 5, 4, 3, 2, 1).Hash())
}

func TestKindSpecialization(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vec")
	defer teardown()
	//
	ints := FromInts([]int{5, 4, 3, 2, 1})
	require.Equal(t, Int, ints.Kind(), "expected construction from int source to specialize")
	bytes := FromBytes([]byte{1, 2, 3})
	require.Equal(t, Byte, bytes.Kind())
	require.Equal(t, Generic, Of("a", "b").Kind())
	// widening operations promote to Generic
	require.Equal(t, Generic, Widen(ints).Kind())
	mixed := Map(ints, func(x int) any {
		if x > 3 {
			return strconv.Itoa(x)
		}
		return x
	})
	require.Equal(t, Generic, mixed.Kind())
	// logical content is unaffected by specialization
	require.True(t, Equal(ints, Widen(ints)))
}

func TestWidenAllowsHeterogeneousInsert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vec")
	defer teardown()
	//
	ints := FromInts([]int{1, 2, 3})
	generic, err := Widen(ints).Insert(1, "in between")
	require.NoError(t, err)
	require.Equal(t, Generic, generic.Kind())
	require.Equal(t, 4, generic.Len())
	x, err := generic.Get(1)
	require.NoError(t, err)
	require.Equal(t, "in between", x)
	require.True(t, Equal(ints, FromInts([]int{1, 2, 3})), "narrow source vector untouched")
}
