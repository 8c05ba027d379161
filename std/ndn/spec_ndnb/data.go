package spec_ndnb

import (
	"math"
	"time"

	enc "github.com/named-data/ndnb/std/encoding"
	"github.com/named-data/ndnb/std/encoding/ccnb"
	"github.com/named-data/ndnb/std/ndn"
)

const maxFreshnessSeconds = uint64(math.MaxInt64 / int64(time.Second))

// EncodeData encodes a Data. The signature bits are written as given,
// padded with zeros to ndn.SignatureBitsMinLength.
func (s *Spec) EncodeData(data *ndn.Data) (enc.Buffer, error) {
	if data == nil {
		return nil, ndn.ErrInvalidValue{Item: "Data", Value: nil}
	}

	e := s.encoder()
	e.Open(ccnb.DtagData)

	sig := &data.Signature
	e.Open(ccnb.DtagSignature)
	if alg := sig.DigestAlgorithm; alg != "" && alg != ndn.DefaultDigestAlgorithm {
		e.TaggedUData(ccnb.DtagDigestAlgorithm, alg)
	}
	if len(sig.Witness) > 0 {
		e.TaggedBlob(ccnb.DtagWitness, sig.Witness)
	}
	bits := sig.Bits
	if len(bits) < ndn.SignatureBitsMinLength {
		bits = make([]byte, ndn.SignatureBitsMinLength)
		copy(bits, sig.Bits)
	}
	e.TaggedBlob(ccnb.DtagSignatureBits, bits)
	e.Close()

	e.Name(data.Name)

	if err := s.encodeSignedInfo(e, data); err != nil {
		return nil, err
	}

	e.TaggedBlob(ccnb.DtagContent, data.Content)
	e.Close()

	if err := s.checkSize(e.Len()); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

func (s *Spec) encodeSignedInfo(e *ccnb.Encoder, data *ndn.Data) error {
	e.Open(ccnb.DtagSignedInfo)

	if len(data.Signature.PublisherKeyDigest) > 0 {
		e.TaggedBlob(ccnb.DtagPublisherPublicKeyDigest, data.Signature.PublisherKeyDigest)
	}

	ts, err := ccnb.EncodeTime(data.Timestamp)
	if err != nil {
		return err
	}
	e.TaggedBlob(ccnb.DtagTimestamp, ts)

	typ, err := EncodeContentType(data.ContentType)
	if err != nil {
		return err
	}
	e.TaggedBlob(ccnb.DtagType, typ)

	if v, ok := data.Freshness.Get(); ok {
		if v < 0 {
			return ccnb.ErrNegativeLength{Field: "FreshnessSeconds", Value: int64(v)}
		}
		e.TaggedUint(ccnb.DtagFreshnessSeconds, uint64(v/time.Second))
	}
	if v, ok := data.FinalBlockID.Get(); ok {
		e.TaggedBlob(ccnb.DtagFinalBlockID, v.Val)
	}

	loc := &data.Signature.KeyLocator
	switch loc.Kind {
	case ndn.KeyLocatorKey:
		e.Open(ccnb.DtagKeyLocator)
		e.TaggedBlob(ccnb.DtagKey, loc.Key)
		e.Close()
	case ndn.KeyLocatorCertificate:
		e.Open(ccnb.DtagKeyLocator)
		e.TaggedBlob(ccnb.DtagCertificate, loc.Certificate)
		e.Close()
	case ndn.KeyLocatorKeyName:
		e.Open(ccnb.DtagKeyLocator)
		e.Open(ccnb.DtagKeyName)
		e.Name(loc.KeyName)
		e.Close()
		e.Close()
	}

	e.Close()
	return nil
}

// DecodeData decodes a Data. Signature is required to hold SignatureBits
// and Content exactly one block.
func (s *Spec) DecodeData(wire enc.Wire) (*ndn.Data, error) {
	b, err := s.parse(wire, ccnb.DtagData)
	if err != nil {
		return nil, err
	}

	builder := dataBuilder{spec: s}
	for _, c := range ccnb.Children(b) {
		if err = builder.add(c); err != nil {
			return nil, err
		}
	}
	return builder.build()
}

// dataBuilder fills a Data as its elements are met. Each step leaves the
// Data in a valid state; build checks that the required parts were seen.
type dataBuilder struct {
	spec *Spec
	data ndn.Data

	hasSignature bool
	hasName      bool
	hasContent   bool
}

func (b *dataBuilder) add(c ccnb.Block) error {
	dtag, ok := b.spec.dict.Resolve(c)
	if !ok {
		b.spec.skip("Data", c)
		return nil
	}

	switch dtag {
	case ccnb.DtagSignature:
		b.hasSignature = true
		return b.signature(c)
	case ccnb.DtagName:
		if b.hasName {
			return ccnb.ErrMalformedField{Field: "Name", Count: 2}
		}
		b.hasName = true
		b.data.Name = enc.Name{}
		return ccnb.AssembleName(c, b.spec.dict, &b.data.Name)
	case ccnb.DtagSignedInfo:
		return b.signedInfo(c)
	case ccnb.DtagContent:
		content, err := bytesField(c, "Content")
		if err != nil {
			return err
		}
		b.hasContent = true
		b.data.Content = content
	default:
		b.spec.skip("Data", c)
	}
	return nil
}

func (b *dataBuilder) signature(blk ccnb.Block) (err error) {
	sig := &b.data.Signature
	hasBits := false
	for _, c := range ccnb.Children(blk) {
		dtag, ok := b.spec.dict.Resolve(c)
		if !ok {
			b.spec.skip("Signature", c)
			continue
		}

		switch dtag {
		case ccnb.DtagDigestAlgorithm:
			if sig.DigestAlgorithm, err = textField(c, "DigestAlgorithm"); err != nil {
				return err
			}
		case ccnb.DtagWitness:
			if sig.Witness, err = bytesField(c, "Witness"); err != nil {
				return err
			}
		case ccnb.DtagSignatureBits:
			if sig.Bits, err = bytesField(c, "SignatureBits"); err != nil {
				return err
			}
			hasBits = true
		default:
			b.spec.skip("Signature", c)
		}
	}

	if !hasBits {
		return ccnb.ErrMalformedField{Field: "SignatureBits", Count: 0}
	}
	return nil
}

func (b *dataBuilder) signedInfo(blk ccnb.Block) (err error) {
	for _, c := range ccnb.Children(blk) {
		dtag, ok := b.spec.dict.Resolve(c)
		if !ok {
			b.spec.skip("SignedInfo", c)
			continue
		}

		switch dtag {
		case ccnb.DtagPublisherPublicKeyDigest:
			if b.data.Signature.PublisherKeyDigest, err = bytesField(c, "PublisherPublicKeyDigest"); err != nil {
				return err
			}
		case ccnb.DtagTimestamp:
			ts, err := bytesField(c, "Timestamp")
			if err != nil {
				return err
			}
			if b.data.Timestamp, err = ccnb.DecodeTime(ts); err != nil {
				return err
			}
		case ccnb.DtagType:
			inner, err := ccnb.SingleChild(c, "Type")
			if err != nil {
				return err
			}
			if b.data.ContentType, err = ExtractContentType(inner); err != nil {
				return err
			}
		case ccnb.DtagFreshnessSeconds:
			v, err := uintField(c, "FreshnessSeconds", maxFreshnessSeconds)
			if err != nil {
				return err
			}
			b.data.Freshness.Set(time.Duration(v) * time.Second)
		case ccnb.DtagFinalBlockID:
			v, err := bytesField(c, "FinalBlockID")
			if err != nil {
				return err
			}
			b.data.FinalBlockID.Set(enc.Component{Val: v})
		case ccnb.DtagKeyLocator:
			if err = b.keyLocator(c); err != nil {
				return err
			}
		default:
			b.spec.skip("SignedInfo", c)
		}
	}
	return nil
}

func (b *dataBuilder) keyLocator(blk ccnb.Block) (err error) {
	loc := &b.data.Signature.KeyLocator
	for _, c := range ccnb.Children(blk) {
		dtag, ok := b.spec.dict.Resolve(c)
		if !ok {
			b.spec.skip("KeyLocator", c)
			continue
		}

		switch dtag {
		case ccnb.DtagKey:
			if loc.Key, err = bytesField(c, "Key"); err != nil {
				return err
			}
			loc.Kind = ndn.KeyLocatorKey
		case ccnb.DtagCertificate:
			if loc.Certificate, err = bytesField(c, "Certificate"); err != nil {
				return err
			}
			loc.Kind = ndn.KeyLocatorCertificate
		case ccnb.DtagKeyName:
			loc.KeyName = enc.Name{}
			if err = ccnb.AssembleName(c, b.spec.dict, &loc.KeyName); err != nil {
				return err
			}
			loc.Kind = ndn.KeyLocatorKeyName
		default:
			b.spec.skip("KeyLocator", c)
		}
	}

	if loc.Kind == ndn.KeyLocatorNone {
		return ccnb.ErrMalformedField{Field: "KeyLocator", Count: 0}
	}
	return nil
}

func (b *dataBuilder) build() (*ndn.Data, error) {
	switch {
	case !b.hasSignature:
		return nil, ccnb.ErrMalformedField{Field: "Signature", Count: 0}
	case !b.hasName:
		return nil, ccnb.ErrMalformedField{Field: "Name", Count: 0}
	case !b.hasContent:
		return nil, ccnb.ErrMalformedField{Field: "Content", Count: 0}
	}
	ret := b.data
	return &ret, nil
}
