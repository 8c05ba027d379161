package ndn

import enc "github.com/named-data/ndnb/std/encoding"

// Spec encodes and decodes packets of one wire format.
// Implementations are safe for concurrent use.
type Spec interface {
	EncodeInterest(interest *Interest) (enc.Buffer, error)
	DecodeInterest(wire enc.Wire) (*Interest, error)
	EncodeData(data *Data) (enc.Buffer, error)
	DecodeData(wire enc.Wire) (*Data, error)
	EncodeName(name enc.Name) enc.Buffer
	DecodeName(wire enc.Wire) (enc.Name, error)
}
