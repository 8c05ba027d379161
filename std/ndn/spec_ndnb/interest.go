package spec_ndnb

import (
	"math"

	enc "github.com/named-data/ndnb/std/encoding"
	"github.com/named-data/ndnb/std/encoding/ccnb"
	"github.com/named-data/ndnb/std/ndn"
	"github.com/named-data/ndnb/std/types/optional"
)

// EncodeInterest encodes an Interest. The Name is always written, even when
// empty; every other field only when set.
func (s *Spec) EncodeInterest(interest *ndn.Interest) (enc.Buffer, error) {
	if interest == nil {
		return nil, ndn.ErrInvalidValue{Item: "Interest", Value: nil}
	}

	e := s.encoder()
	e.Open(ccnb.DtagInterest)
	e.Name(interest.Name)

	if v, ok := interest.MinSuffixComponents.Get(); ok {
		e.TaggedUint(ccnb.DtagMinSuffixComponents, uint64(v))
	}
	if v, ok := interest.MaxSuffixComponents.Get(); ok {
		e.TaggedUint(ccnb.DtagMaxSuffixComponents, uint64(v))
	}
	if !interest.Exclude.IsEmpty() {
		encodeExclude(e, interest.Exclude)
	}
	if v, ok := interest.ChildSelector.Get(); ok {
		e.TaggedUint(ccnb.DtagChildSelector, uint64(v))
	}
	if v, ok := interest.AnswerOriginKind.Get(); ok {
		e.TaggedUint(ccnb.DtagAnswerOriginKind, uint64(v))
	}
	if v, ok := interest.Scope.Get(); ok {
		e.TaggedUint(ccnb.DtagScope, uint64(v))
	}
	if v, ok := interest.Lifetime.Get(); ok && v >= 0 {
		if err := e.TaggedTimestamp(ccnb.DtagInterestLifetime, v); err != nil {
			return nil, err
		}
	}
	if len(interest.Nonce) > 0 {
		e.TaggedBlob(ccnb.DtagNonce, interest.Nonce)
	}
	e.Close()

	if err := s.checkSize(e.Len()); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// encodeExclude writes the entries in ascending order. A leading open range
// from the beginning is written as a bare Any.
func encodeExclude(e *ccnb.Encoder, ex ndn.Exclude) {
	e.Open(ccnb.DtagExclude)
	for i, ent := range ex.Entries() {
		if i > 0 || !ent.Any || len(ent.Comp.Val) != 0 {
			e.Component(ent.Comp)
		}
		if ent.Any {
			e.Open(ccnb.DtagAny)
			e.Close()
		}
	}
	e.Close()
}

// DecodeInterest decodes an Interest. Elements with no Interest field are
// skipped.
func (s *Spec) DecodeInterest(wire enc.Wire) (*ndn.Interest, error) {
	b, err := s.parse(wire, ccnb.DtagInterest)
	if err != nil {
		return nil, err
	}

	ret := &ndn.Interest{Name: enc.Name{}}
	hasName := false
	for _, c := range ccnb.Children(b) {
		dtag, ok := s.dict.Resolve(c)
		if !ok {
			s.skip("Interest", c)
			continue
		}

		switch dtag {
		case ccnb.DtagName:
			if hasName {
				return nil, ccnb.ErrMalformedField{Field: "Name", Count: 2}
			}
			hasName = true
			if err = ccnb.AssembleName(c, s.dict, &ret.Name); err != nil {
				return nil, err
			}
		case ccnb.DtagMinSuffixComponents:
			v, err := optUintField(c, "MinSuffixComponents", math.MaxUint32)
			if err != nil {
				return nil, err
			}
			ret.MinSuffixComponents = optional.CastInt[uint64, uint32](v)
		case ccnb.DtagMaxSuffixComponents:
			v, err := optUintField(c, "MaxSuffixComponents", math.MaxUint32)
			if err != nil {
				return nil, err
			}
			ret.MaxSuffixComponents = optional.CastInt[uint64, uint32](v)
		case ccnb.DtagExclude:
			if ret.Exclude, err = s.decodeExclude(c); err != nil {
				return nil, err
			}
		case ccnb.DtagChildSelector:
			v, err := optUintField(c, "ChildSelector", math.MaxUint64)
			if err != nil {
				return nil, err
			}
			ret.ChildSelector = optional.CastInt[uint64, ndn.ChildSelector](v)
		case ccnb.DtagAnswerOriginKind:
			v, err := optUintField(c, "AnswerOriginKind", math.MaxUint64)
			if err != nil {
				return nil, err
			}
			ret.AnswerOriginKind = optional.CastInt[uint64, ndn.AnswerOriginKind](v)
		case ccnb.DtagScope:
			v, err := optUintField(c, "Scope", math.MaxUint64)
			if err != nil {
				return nil, err
			}
			ret.Scope = optional.CastInt[uint64, ndn.Scope](v)
		case ccnb.DtagInterestLifetime:
			v, err := timestampField(c, "InterestLifetime")
			if err != nil {
				return nil, err
			}
			ret.Lifetime.Set(v)
		case ccnb.DtagNonce:
			if ret.Nonce, err = bytesField(c, "Nonce"); err != nil {
				return nil, err
			}
		default:
			s.skip("Interest", c)
		}
	}

	if !hasName {
		return nil, ccnb.ErrMalformedField{Field: "Name", Count: 0}
	}
	return ret, nil
}

// decodeExclude reads Component and Any children in order. An Any before
// the first Component opens a range from the beginning.
func (s *Spec) decodeExclude(b ccnb.Block) (ndn.Exclude, error) {
	entries := []ndn.ExcludeEntry{}
	for _, c := range ccnb.Children(b) {
		dtag, ok := s.dict.Resolve(c)
		switch {
		case ok && dtag == ccnb.DtagComponent:
			val, err := bytesField(c, "Component")
			if err != nil {
				return ndn.Exclude{}, err
			}
			entries = append(entries, ndn.ExcludeEntry{Comp: enc.Component{Val: val}})
		case ok && dtag == ccnb.DtagAny:
			if len(entries) == 0 {
				entries = append(entries, ndn.ExcludeEntry{Comp: enc.Component{Val: []byte{}}, Any: true})
			} else {
				entries[len(entries)-1].Any = true
			}
		default:
			s.skip("Exclude", c)
		}
	}
	return ndn.NewExclude(entries...)
}
