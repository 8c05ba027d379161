package spec_ndnb_test

import (
	"bytes"
	"testing"
	"time"

	enc "github.com/named-data/ndnb/std/encoding"
	"github.com/named-data/ndnb/std/encoding/ccnb"
	"github.com/named-data/ndnb/std/ndn"
	spec "github.com/named-data/ndnb/std/ndn/spec_ndnb"
	"github.com/named-data/ndnb/std/types/optional"
	tu "github.com/named-data/ndnb/std/utils/testutils"
	"github.com/stretchr/testify/require"
)

func testData() *ndn.Data {
	return &ndn.Data{
		Name:         tu.NoErr(enc.NameFromStr("/ndn/test/data")),
		Content:      []byte("hello, world"),
		ContentType:  ndn.ContentTypeKey,
		Freshness:    optional.Some(10 * time.Second),
		FinalBlockID: optional.Some(enc.NewBytesComponent([]byte{0x00, 0x05})),
		Timestamp:    time.Unix(1700000000, 0),
		Signature: ndn.Signature{
			Bits:               bytes.Repeat([]byte{0xab}, 32),
			Witness:            []byte{1, 2, 3},
			PublisherKeyDigest: bytes.Repeat([]byte{0x11}, 32),
			KeyLocator: ndn.KeyLocator{
				Kind:    ndn.KeyLocatorKeyName,
				KeyName: tu.NoErr(enc.NameFromStr("/ndn/KEY/1")),
			},
		},
	}
}

func TestDataRoundTrip(t *testing.T) {
	tu.SetT(t)
	s := spec.NewSpec()

	data := testData()
	wire := tu.NoErr(s.EncodeData(data))
	decoded := tu.NoErr(s.DecodeData(enc.Wire{wire}))

	require.True(t, data.Name.Equal(decoded.Name))
	require.Equal(t, data.Content, decoded.Content)
	require.Equal(t, ndn.ContentTypeKey, decoded.ContentType)
	require.Equal(t, data.Freshness, decoded.Freshness)
	require.True(t, data.FinalBlockID.Unwrap().Equal(decoded.FinalBlockID.Unwrap()))
	require.True(t, data.Timestamp.Equal(decoded.Timestamp))

	sig := decoded.Signature
	require.Equal(t, "", sig.DigestAlgorithm)
	require.Equal(t, ndn.DefaultDigestAlgorithm, sig.Algorithm())
	require.Equal(t, data.Signature.Bits, sig.Bits)
	require.Equal(t, data.Signature.Witness, sig.Witness)
	require.Equal(t, data.Signature.PublisherKeyDigest, sig.PublisherKeyDigest)
	require.Equal(t, ndn.KeyLocatorKeyName, sig.KeyLocator.Kind)
	require.Equal(t, "/ndn/KEY/1", sig.KeyLocator.KeyName.String())

	// re-encoding gives the same bytes
	require.Equal(t, wire, tu.NoErr(s.EncodeData(decoded)))
}

func TestDataMinimal(t *testing.T) {
	tu.SetT(t)
	s := spec.NewSpec()

	data := &ndn.Data{Name: enc.Name{}}
	wire := tu.NoErr(s.EncodeData(data))
	decoded := tu.NoErr(s.DecodeData(enc.Wire{wire}))

	require.Equal(t, 0, len(decoded.Name))
	require.Equal(t, []byte{}, decoded.Content)
	require.Equal(t, ndn.ContentTypeData, decoded.ContentType)
	require.Equal(t, make([]byte, ndn.SignatureBitsMinLength), decoded.Signature.Bits)
	require.Equal(t, ndn.KeyLocatorNone, decoded.Signature.KeyLocator.Kind)
	require.False(t, decoded.Freshness.IsSet())
	require.False(t, decoded.FinalBlockID.IsSet())
	require.True(t, time.Unix(0, 0).Equal(decoded.Timestamp))
}

func TestDataKeyLocators(t *testing.T) {
	tu.SetT(t)
	s := spec.NewSpec()

	for _, loc := range []ndn.KeyLocator{
		{Kind: ndn.KeyLocatorKey, Key: []byte("public key")},
		{Kind: ndn.KeyLocatorCertificate, Certificate: []byte("certificate")},
	} {
		data := &ndn.Data{Name: enc.Name{}, Signature: ndn.Signature{KeyLocator: loc}}
		decoded := tu.NoErr(s.DecodeData(enc.Wire{tu.NoErr(s.EncodeData(data))}))
		require.Equal(t, loc, decoded.Signature.KeyLocator)
	}
}

func TestDataDigestAlgorithm(t *testing.T) {
	tu.SetT(t)
	s := spec.NewSpec()

	data := &ndn.Data{Name: enc.Name{}}
	data.Signature.DigestAlgorithm = ndn.DefaultDigestAlgorithm
	short := tu.NoErr(s.EncodeData(data))
	data.Signature.DigestAlgorithm = ""
	require.Equal(t, short, tu.NoErr(s.EncodeData(data)))

	data.Signature.DigestAlgorithm = "1.2.3.4"
	decoded := tu.NoErr(s.DecodeData(enc.Wire{tu.NoErr(s.EncodeData(data))}))
	require.Equal(t, "1.2.3.4", decoded.Signature.Algorithm())
}

func TestDataEncodeErrors(t *testing.T) {
	tu.SetT(t)
	s := spec.NewSpec()

	_, err := s.EncodeData(&ndn.Data{Name: enc.Name{}, Freshness: optional.Some(-time.Second)})
	require.ErrorAs(t, err, &ccnb.ErrNegativeLength{})

	_, err = s.EncodeData(&ndn.Data{Name: enc.Name{}, ContentType: ndn.ContentType(100)})
	require.ErrorAs(t, err, &ndn.ErrInvalidValue{})

	_, err = s.EncodeData(&ndn.Data{Name: enc.Name{}, Timestamp: time.Unix(-10, 0)})
	require.Error(t, err)

	_, err = spec.NewSpec(spec.WithMaxPacketSize(64)).EncodeData(&ndn.Data{
		Name:    enc.Name{},
		Content: make([]byte, 100),
	})
	require.ErrorAs(t, err, &spec.ErrPacketTooLarge{})
}

// dataWire builds a Data with the given body writers.
func dataWire(body ...func(e *ccnb.Encoder)) []byte {
	e := ccnb.NewEncoder(ccnb.NDNB)
	e.Open(ccnb.DtagData)
	for _, fn := range body {
		fn(e)
	}
	e.Close()
	return e.Bytes()
}

func withSignature(e *ccnb.Encoder) {
	e.Open(ccnb.DtagSignature)
	e.TaggedBlob(ccnb.DtagSignatureBits, make([]byte, 16))
	e.Close()
}

func withName(e *ccnb.Encoder) {
	e.Name(enc.Name{enc.NewStringComponent("a")})
}

func withContent(e *ccnb.Encoder) {
	e.TaggedBlob(ccnb.DtagContent, []byte("hello"))
}

func TestDecodeDataErrors(t *testing.T) {
	tu.SetT(t)
	s := spec.NewSpec()

	_, err := s.DecodeData(enc.Wire{dataWire(withName, withContent)})
	require.Equal(t, ccnb.ErrMalformedField{Field: "Signature", Count: 0}, err)

	_, err = s.DecodeData(enc.Wire{dataWire(withSignature, withContent)})
	require.Equal(t, ccnb.ErrMalformedField{Field: "Name", Count: 0}, err)

	_, err = s.DecodeData(enc.Wire{dataWire(withSignature, withName)})
	require.Equal(t, ccnb.ErrMalformedField{Field: "Content", Count: 0}, err)

	_, err = s.DecodeData(enc.Wire{dataWire(withSignature, withName, withName, withContent)})
	require.Equal(t, ccnb.ErrMalformedField{Field: "Name", Count: 2}, err)

	// empty Content
	_, err = s.DecodeData(enc.Wire{dataWire(withSignature, withName, func(e *ccnb.Encoder) {
		e.Open(ccnb.DtagContent)
		e.Close()
	})})
	require.Equal(t, ccnb.ErrMalformedField{Field: "Content", Count: 0}, err)

	// Signature without SignatureBits
	_, err = s.DecodeData(enc.Wire{dataWire(func(e *ccnb.Encoder) {
		e.Open(ccnb.DtagSignature)
		e.TaggedBlob(ccnb.DtagWitness, []byte{1})
		e.Close()
	}, withName, withContent)})
	require.Equal(t, ccnb.ErrMalformedField{Field: "SignatureBits", Count: 0}, err)

	// empty SignatureBits
	_, err = s.DecodeData(enc.Wire{dataWire(func(e *ccnb.Encoder) {
		e.Open(ccnb.DtagSignature)
		e.Open(ccnb.DtagSignatureBits)
		e.Close()
		e.Close()
	}, withName, withContent)})
	require.Equal(t, ccnb.ErrMalformedField{Field: "SignatureBits", Count: 0}, err)

	// unknown content type
	_, err = s.DecodeData(enc.Wire{dataWire(withSignature, withName, func(e *ccnb.Encoder) {
		e.Open(ccnb.DtagSignedInfo)
		e.TaggedBlob(ccnb.DtagType, []byte{1, 2, 3})
		e.Close()
	}, withContent)})
	require.Equal(t, spec.ErrUnknownContentType{Value: []byte{1, 2, 3}}, err)

	// empty KeyLocator
	_, err = s.DecodeData(enc.Wire{dataWire(withSignature, withName, func(e *ccnb.Encoder) {
		e.Open(ccnb.DtagSignedInfo)
		e.Open(ccnb.DtagKeyLocator)
		e.Close()
		e.Close()
	}, withContent)})
	require.Equal(t, ccnb.ErrMalformedField{Field: "KeyLocator", Count: 0}, err)

	// wrong root
	_, err = s.DecodeData(enc.Wire{tu.Hex(shortInterestHex)})
	require.Equal(t, ndn.ErrWrongType, err)
	_, err = s.DecodeInterest(enc.Wire{dataWire(withSignature, withName, withContent)})
	require.Equal(t, ndn.ErrWrongType, err)
}

func TestDataTruncated(t *testing.T) {
	tu.SetT(t)
	s := spec.NewSpec()

	wire := tu.NoErr(s.EncodeData(testData()))
	for i := 0; i < len(wire); i++ {
		_, err := s.DecodeData(enc.Wire{wire[:i]})
		require.Error(t, err, "length %d", i)
	}
}

func TestDataSkipsUnknown(t *testing.T) {
	tu.SetT(t)
	s := spec.NewSpec()

	wire := dataWire(withSignature, func(e *ccnb.Encoder) {
		e.OpenCode(12345)
		e.Blob([]byte{1})
		e.Close()
	}, withName, func(e *ccnb.Encoder) {
		e.Open(ccnb.DtagSignedInfo)
		e.OpenCode(9998)
		e.Blob([]byte{9})
		e.Close()
		e.TaggedUint(ccnb.DtagFreshnessSeconds, 5)
		e.Close()
	}, withContent)

	data := tu.NoErr(s.DecodeData(enc.Wire{wire}))
	require.Equal(t, "/a", data.Name.String())
	require.Equal(t, 5*time.Second, data.Freshness.Unwrap())
	require.Equal(t, []byte("hello"), data.Content)
}

func TestDataLegacyDictionary(t *testing.T) {
	tu.SetT(t)

	e := ccnb.NewEncoder(ccnb.CCNB)
	require.NoError(t, e.Tag("ContentObject"))
	withSignature(e)
	withName(e)
	withContent(e)
	e.Close()
	wire := e.Bytes()

	data := tu.NoErr(spec.NewSpec(spec.WithDictionary(ccnb.CCNB)).DecodeData(enc.Wire{wire}))
	require.Equal(t, []byte("hello"), data.Content)

	_, err := spec.NewSpec().DecodeData(enc.Wire{wire})
	require.Equal(t, ndn.ErrWrongType, err)

	// dictionary codes are shared, so DTag encodings are interchangeable
	data = testData()
	require.Equal(t,
		tu.NoErr(spec.NewSpec().EncodeData(data)),
		tu.NoErr(spec.NewSpec(spec.WithDictionary(ccnb.CCNB)).EncodeData(data)))
}

func TestContentTypeCodes(t *testing.T) {
	tu.SetT(t)

	require.Equal(t, []byte{0x0c, 0x04, 0xc0}, tu.NoErr(spec.EncodeContentType(ndn.ContentTypeData)))
	require.Equal(t, []byte{0x28, 0x46, 0x3f}, tu.NoErr(spec.EncodeContentType(ndn.ContentTypeKey)))
	for _, ct := range []ndn.ContentType{
		ndn.ContentTypeData, ndn.ContentTypeEncrypted, ndn.ContentTypeGone,
		ndn.ContentTypeKey, ndn.ContentTypeLink, ndn.ContentTypeNack,
	} {
		buf := tu.NoErr(spec.EncodeContentType(ct))
		require.Equal(t, ct, tu.NoErr(spec.DecodeContentType(buf)))
	}

	_, err := spec.DecodeContentType([]byte{0x0c, 0x04})
	require.Equal(t, spec.ErrUnknownContentType{Value: []byte{0x0c, 0x04}}, err)

	_, err = spec.ExtractContentType(&ccnb.Text{Val: "x"})
	require.Equal(t, ccnb.ErrUnexpectedBlock{Want: "BLOB", Got: ccnb.TypeUData}, err)
}
