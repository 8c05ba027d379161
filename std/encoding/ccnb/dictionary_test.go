package ccnb_test

import (
	"testing"

	"github.com/named-data/ndnb/std/encoding/ccnb"
	tu "github.com/named-data/ndnb/std/utils/testutils"
	"github.com/stretchr/testify/require"
)

func TestDictionaryCodes(t *testing.T) {
	tu.SetT(t)

	codes := map[ccnb.Dtag]uint32{
		ccnb.DtagAny: 13, ccnb.DtagName: 14, ccnb.DtagComponent: 15, ccnb.DtagCertificate: 16,
		ccnb.DtagContent: 19, ccnb.DtagSignedInfo: 20, ccnb.DtagInterest: 26, ccnb.DtagKey: 27,
		ccnb.DtagKeyLocator: 28, ccnb.DtagKeyName: 29, ccnb.DtagSignature: 37, ccnb.DtagTimestamp: 39,
		ccnb.DtagType: 40, ccnb.DtagNonce: 41, ccnb.DtagScope: 42, ccnb.DtagExclude: 43,
		ccnb.DtagAnswerOriginKind: 47, ccnb.DtagInterestLifetime: 48, ccnb.DtagWitness: 53,
		ccnb.DtagSignatureBits: 54, ccnb.DtagDigestAlgorithm: 55, ccnb.DtagFreshnessSeconds: 58,
		ccnb.DtagFinalBlockID: 59, ccnb.DtagPublisherPublicKeyDigest: 60, ccnb.DtagData: 64,
		ccnb.DtagMinSuffixComponents: 83, ccnb.DtagMaxSuffixComponents: 84, ccnb.DtagChildSelector: 85,
	}
	for _, dict := range []*ccnb.Dictionary{ccnb.NDNB, ccnb.CCNB} {
		for dtag, code := range codes {
			require.Equal(t, code, dict.Code(dtag), dtag.String())
			got, ok := dict.Lookup(code)
			require.True(t, ok)
			require.Equal(t, dtag, got)
			require.True(t, dict.Is(&ccnb.DTag{Code: code}, dtag))
		}
	}
}

func TestDictionaryNames(t *testing.T) {
	tu.SetT(t)

	require.Equal(t, "Data", ccnb.NDNB.Name(ccnb.DtagData))
	require.Equal(t, "ContentObject", ccnb.CCNB.Name(ccnb.DtagData))
	require.Equal(t, "Interest", ccnb.DtagInterest.String())
	require.Equal(t, "Data", ccnb.DtagData.String())

	name, ok := ccnb.NDNB.TagName(17702112)
	require.True(t, ok)
	require.Equal(t, "NDNProtocolDataUnit", name)
	name, ok = ccnb.CCNB.TagName(17702112)
	require.True(t, ok)
	require.Equal(t, "CCNProtocolDataUnit", name)
	_, ok = ccnb.NDNB.TagName(1)
	require.False(t, ok)

	code, ok := ccnb.CCNB.CodeOf("ContentObject")
	require.True(t, ok)
	require.Equal(t, uint32(64), code)
	_, ok = ccnb.NDNB.CodeOf("ContentObject")
	require.False(t, ok)

	// registered tags without a packet role have no Dtag
	code, ok = ccnb.NDNB.CodeOf("SyncNode")
	require.True(t, ok)
	_, ok = ccnb.NDNB.Lookup(code)
	require.False(t, ok)
}

func TestDictionaryResolve(t *testing.T) {
	tu.SetT(t)

	dtag, ok := ccnb.NDNB.Resolve(&ccnb.Tag{Name: "Interest"})
	require.True(t, ok)
	require.Equal(t, ccnb.DtagInterest, dtag)

	require.True(t, ccnb.CCNB.Is(&ccnb.Tag{Name: "ContentObject"}, ccnb.DtagData))
	require.False(t, ccnb.NDNB.Is(&ccnb.Tag{Name: "ContentObject"}, ccnb.DtagData))
	require.False(t, ccnb.NDNB.Is(&ccnb.Blob{}, ccnb.DtagData))

	_, ok = ccnb.NDNB.Resolve(&ccnb.DTag{Code: 1000})
	require.False(t, ok)
}

func TestDictionaryByName(t *testing.T) {
	tu.SetT(t)

	require.Equal(t, ccnb.NDNB, tu.NoErr(ccnb.DictionaryByName("ndnb")))
	require.Equal(t, ccnb.NDNB, tu.NoErr(ccnb.DictionaryByName("")))
	require.Equal(t, ccnb.CCNB, tu.NoErr(ccnb.DictionaryByName("CCNB")))
	_, err := ccnb.DictionaryByName("tlv")
	require.Error(t, err)
	require.Equal(t, "ccnb", ccnb.CCNB.String())
}
