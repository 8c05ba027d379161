package ccnb

import (
	enc "github.com/named-data/ndnb/std/encoding"
)

// Type is the 3-bit block type carried in the terminal header byte.
type Type uint8

const (
	TypeExt   Type = 0
	TypeTag   Type = 1
	TypeDTag  Type = 2
	TypeAttr  Type = 3
	TypeDAttr Type = 4
	TypeBlob  Type = 5
	TypeUData Type = 6
)

// Closer terminates the attributes and children of a Tag or DTag.
const Closer byte = 0x00

// MaxHeaderLength is the length of the header of the largest uint64 value.
const MaxHeaderLength = 10

const (
	typeBits  = 3
	typeMask  = 0x07
	lowBits   = 4
	lowMask   = 0x0F
	chunkBits = 7
	chunkMask = 0x7F
	finalBit  = 0x80
)

func (t Type) String() string {
	switch t {
	case TypeExt:
		return "EXT"
	case TypeTag:
		return "TAG"
	case TypeDTag:
		return "DTAG"
	case TypeAttr:
		return "ATTR"
	case TypeDAttr:
		return "DATTR"
	case TypeBlob:
		return "BLOB"
	case TypeUData:
		return "UDATA"
	default:
		return "UNKNOWN"
	}
}

// HeaderLength returns the number of bytes EncodeHeader writes for val.
func HeaderLength(val uint64) int {
	n := 1
	for v := val >> lowBits; v != 0; v >>= chunkBits {
		n++
	}
	return n
}

// EncodeHeader writes the header of (typ, val) at the start of buf and
// returns the number of bytes written. buf must hold HeaderLength(val) bytes.
//
// The value is written big-endian in 7-bit chunks, followed by a terminal
// byte that has its top bit set and carries the low 4 bits and the type.
func EncodeHeader(buf []byte, typ Type, val uint64) int {
	n := HeaderLength(val)
	buf[n-1] = finalBit | byte(val&lowMask)<<typeBits | byte(typ)&typeMask
	v := val >> lowBits
	for i := n - 2; i >= 0; i-- {
		buf[i] = byte(v & chunkMask)
		v >>= chunkBits
	}
	return n
}

// AppendHeader appends the header of (typ, val) to buf.
func AppendHeader(buf enc.Buffer, typ Type, val uint64) enc.Buffer {
	var hdr [MaxHeaderLength]byte
	n := EncodeHeader(hdr[:], typ, val)
	return append(buf, hdr[:n]...)
}

// ReadHeader reads one block header from the view.
// The type is returned as read; callers decide whether it is known.
func ReadHeader(r *enc.WireView) (Type, uint64, error) {
	val := uint64(0)
	for i := 0; i < MaxHeaderLength; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, 0, ErrUnexpectedEnd
		}
		if b&finalBit != 0 {
			if val>>(64-lowBits) != 0 {
				return 0, 0, ErrHeaderOverflow
			}
			val = val<<lowBits | uint64(b>>typeBits)&lowMask
			return Type(b & typeMask), val, nil
		}
		if val>>(64-chunkBits) != 0 {
			return 0, 0, ErrHeaderOverflow
		}
		val = val<<chunkBits | uint64(b)
	}
	return 0, 0, ErrHeaderOverflow
}
