package spec_ndnb

import (
	"github.com/named-data/ndnb/std/encoding/ccnb"
	"github.com/named-data/ndnb/std/ndn"
)

// ContentTypeLength is the length of an encoded content type.
const ContentTypeLength = 3

var contentTypeCodes = map[ndn.ContentType]uint32{
	ndn.ContentTypeData:      0x0C04C0,
	ndn.ContentTypeEncrypted: 0x10D091,
	ndn.ContentTypeGone:      0x18E344,
	ndn.ContentTypeKey:       0x28463F,
	ndn.ContentTypeLink:      0x2C834A,
	ndn.ContentTypeNack:      0x34008A,
}

var contentTypesByCode = func() map[uint32]ndn.ContentType {
	ret := make(map[uint32]ndn.ContentType, len(contentTypeCodes))
	for t, code := range contentTypeCodes {
		ret[code] = t
	}
	return ret
}()

// EncodeContentType returns the 3-byte code of a content type.
func EncodeContentType(t ndn.ContentType) ([]byte, error) {
	code, ok := contentTypeCodes[t]
	if !ok {
		return nil, ndn.ErrInvalidValue{Item: "ContentType", Value: int(t)}
	}
	return []byte{byte(code >> 16), byte(code >> 8), byte(code)}, nil
}

// DecodeContentType maps a 3-byte code to its content type.
func DecodeContentType(buf []byte) (ndn.ContentType, error) {
	if len(buf) != ContentTypeLength {
		return 0, ErrUnknownContentType{Value: buf}
	}
	code := uint32(buf[0])<<16 | uint32(buf[1])<<8 | uint32(buf[2])
	t, ok := contentTypesByCode[code]
	if !ok {
		return 0, ErrUnknownContentType{Value: buf}
	}
	return t, nil
}

// ExtractContentType decodes the content type held by a Blob.
func ExtractContentType(b ccnb.Block) (ndn.ContentType, error) {
	blob, ok := b.(*ccnb.Blob)
	if !ok {
		return 0, ccnb.ErrUnexpectedBlock{Want: "BLOB", Got: b.Type()}
	}
	return DecodeContentType(blob.Val)
}
