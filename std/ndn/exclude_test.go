package ndn_test

import (
	"testing"

	enc "github.com/named-data/ndnb/std/encoding"
	"github.com/named-data/ndnb/std/ndn"
	tu "github.com/named-data/ndnb/std/utils/testutils"
	"github.com/stretchr/testify/require"
)

func comp(s string) enc.Component {
	return enc.NewStringComponent(s)
}

func TestExcludeNew(t *testing.T) {
	tu.SetT(t)

	ex := tu.NoErr(ndn.NewExclude(
		ndn.ExcludeEntry{Comp: comp("a")},
		ndn.ExcludeEntry{Comp: comp("b"), Any: true},
		ndn.ExcludeEntry{Comp: comp("aa")},
	))
	require.Equal(t, 3, ex.Len())
	require.Equal(t, "a,b,*,aa", ex.String())

	_, err := ndn.NewExclude(ndn.ExcludeEntry{Comp: comp("b")}, ndn.ExcludeEntry{Comp: comp("a")})
	require.ErrorAs(t, err, &ndn.ErrInvalidValue{})

	_, err = ndn.NewExclude(ndn.ExcludeEntry{Comp: comp("a")}, ndn.ExcludeEntry{Comp: comp("a")})
	require.Error(t, err)

	// canonical order puts shorter components first
	_, err = ndn.NewExclude(ndn.ExcludeEntry{Comp: comp("aa")}, ndn.ExcludeEntry{Comp: comp("b")})
	require.Error(t, err)

	require.True(t, ndn.Exclude{}.IsEmpty())
	require.Equal(t, "", ndn.Exclude{}.String())
}

func TestExcludeIsExcluded(t *testing.T) {
	tu.SetT(t)

	ex := tu.NoErr(ndn.NewExclude(
		ndn.ExcludeEntry{Comp: comp("b"), Any: true},
		ndn.ExcludeEntry{Comp: comp("d")},
		ndn.ExcludeEntry{Comp: comp("f")},
	))
	for s, excluded := range map[string]bool{
		"a": false,
		"b": true,
		"c": true,
		"d": true,
		"e": false,
		"f": true,
		"g": false,
		"":  false,
	} {
		require.Equal(t, excluded, ex.IsExcluded(comp(s)), s)
	}
}

func TestExcludeOne(t *testing.T) {
	tu.SetT(t)

	ex := ndn.Exclude{}
	ex.ExcludeOne(comp("c"))
	ex.ExcludeOne(comp("a"))
	ex.ExcludeOne(comp("b"))
	ex.ExcludeOne(comp("b"))
	require.Equal(t, "a,b,c", ex.String())
	require.True(t, ex.IsExcluded(comp("b")))
	require.False(t, ex.IsExcluded(comp("d")))

	// already covered by a range
	ex = ndn.Exclude{}
	require.NoError(t, ex.ExcludeRange(comp("b"), comp("d")))
	ex.ExcludeOne(comp("c"))
	require.Equal(t, "b,*,d", ex.String())
}

func TestExcludeRange(t *testing.T) {
	tu.SetT(t)

	ex := ndn.Exclude{}
	require.NoError(t, ex.ExcludeRange(comp("b"), comp("d")))
	require.Equal(t, "b,*,d", ex.String())

	ex.ExcludeOne(comp("f"))
	require.NoError(t, ex.ExcludeRange(comp("c"), comp("e")))
	require.Equal(t, "b,*,e,f", ex.String())

	// fully inside an existing range
	require.NoError(t, ex.ExcludeRange(comp("c"), comp("d")))
	require.Equal(t, "b,*,e,f", ex.String())

	// swallowing an open range
	ex = tu.NoErr(ndn.NewExclude(ndn.ExcludeEntry{Comp: comp("b"), Any: true}))
	require.NoError(t, ex.ExcludeRange(comp("a"), comp("c")))
	require.Equal(t, "a,*", ex.String())

	ex = tu.NoErr(ndn.NewExclude(ndn.ExcludeEntry{Comp: comp("c")}, ndn.ExcludeEntry{Comp: comp("d")}))
	require.NoError(t, ex.ExcludeRange(comp("a"), comp("c")))
	require.Equal(t, "a,*,c,d", ex.String())

	err := ex.ExcludeRange(comp("b"), comp("b"))
	require.ErrorAs(t, err, &ndn.ErrInvalidValue{})
	require.Error(t, ex.ExcludeRange(comp("c"), comp("b")))
}

func TestExcludeBeforeAfter(t *testing.T) {
	tu.SetT(t)

	ex := ndn.Exclude{}
	require.NoError(t, ex.ExcludeBefore(comp("c")))
	require.Equal(t, "*,c", ex.String())
	require.True(t, ex.IsExcluded(comp("")))
	require.True(t, ex.IsExcluded(comp("a")))
	require.True(t, ex.IsExcluded(comp("c")))
	require.False(t, ex.IsExcluded(comp("d")))

	ex.ExcludeOne(comp("f"))
	ex.ExcludeAfter(comp("e"))
	require.Equal(t, "*,c,e,*", ex.String())
	require.False(t, ex.IsExcluded(comp("d")))
	require.True(t, ex.IsExcluded(comp("f")))
	require.True(t, ex.IsExcluded(comp("zzzz")))

	// merged into the open range below
	ex.ExcludeAfter(comp("ee"))
	require.Equal(t, "*,c,e,*", ex.String())

	ex = ndn.Exclude{}
	ex.ExcludeAfter(comp("b"))
	require.Equal(t, "b,*", ex.String())
}

func TestExcludeEqual(t *testing.T) {
	tu.SetT(t)

	a := ndn.Exclude{}
	a.ExcludeOne(comp("a"))
	a.ExcludeAfter(comp("c"))
	b := tu.NoErr(ndn.NewExclude(
		ndn.ExcludeEntry{Comp: comp("a")},
		ndn.ExcludeEntry{Comp: comp("c"), Any: true},
	))
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(ndn.Exclude{}))

	// entries are copies
	entries := b.Entries()
	entries[0].Any = true
	require.True(t, a.Equal(b))
}
