package ndn_test

import (
	"testing"
	"time"

	enc "github.com/named-data/ndnb/std/encoding"
	"github.com/named-data/ndnb/std/ndn"
	"github.com/named-data/ndnb/std/types/optional"
	tu "github.com/named-data/ndnb/std/utils/testutils"
	"github.com/stretchr/testify/require"
)

func TestInterestMatchesName(t *testing.T) {
	tu.SetT(t)

	name := func(s string) enc.Name {
		return tu.NoErr(enc.NameFromStr(s))
	}

	interest := &ndn.Interest{Name: name("/a")}
	require.True(t, interest.MatchesName(name("/a")))
	require.True(t, interest.MatchesName(name("/a/b/c")))
	require.False(t, interest.MatchesName(name("/b")))
	require.False(t, interest.MatchesName(name("/")))

	// suffix counts include the implicit digest
	interest.MinSuffixComponents = optional.Some[uint32](2)
	require.False(t, interest.MatchesName(name("/a")))
	require.True(t, interest.MatchesName(name("/a/b")))

	interest.MaxSuffixComponents = optional.Some[uint32](2)
	require.False(t, interest.MatchesName(name("/a/b/c")))

	interest.MinSuffixComponents.Unset()
	interest.MaxSuffixComponents = optional.Some[uint32](1)
	require.True(t, interest.MatchesName(name("/a")))
	require.False(t, interest.MatchesName(name("/a/b")))

	interest.MaxSuffixComponents.Unset()
	interest.Exclude.ExcludeOne(enc.NewStringComponent("b"))
	require.False(t, interest.MatchesName(name("/a/b")))
	require.False(t, interest.MatchesName(name("/a/b/c")))
	require.True(t, interest.MatchesName(name("/a/c/b")))
	require.True(t, interest.MatchesName(name("/a")))
}

func TestInterestString(t *testing.T) {
	tu.SetT(t)

	interest := &ndn.Interest{
		Name:     tu.NoErr(enc.NameFromStr("/a/b")),
		Lifetime: optional.Some(4 * time.Second),
	}
	require.Contains(t, interest.String(), "/a/b")
	require.Contains(t, interest.String(), "4s")
}
