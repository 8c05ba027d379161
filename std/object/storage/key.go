package storage

import (
	"encoding/binary"

	enc "github.com/named-data/ndnb/std/encoding"
)

// compKeyLen is the size of the length prefix of a component in a key.
const compKeyLen = 4

// NameKey encodes a name as a store key: each component is its length as
// 4 big-endian bytes followed by its value. Byte order of keys is the
// canonical order of names, and the key of a prefix is a prefix of the key.
func NameKey(name enc.Name) []byte {
	size := 0
	for _, c := range name {
		size += compKeyLen + len(c.Val)
	}
	ret := make([]byte, 0, size)
	for _, c := range name {
		ret = appendCompKey(ret, c)
	}
	return ret
}

func appendCompKey(buf []byte, c enc.Component) []byte {
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(c.Val)))
	return append(buf, c.Val...)
}

func compKey(c enc.Component) string {
	return string(appendCompKey(make([]byte, 0, compKeyLen+len(c.Val)), c))
}

// prefixEnd returns the smallest key greater than every key starting with
// key, or nil if there is none.
func prefixEnd(key []byte) []byte {
	end := make([]byte, len(key))
	copy(end, key)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}

// checkRange fails if first is after last in canonical order.
func checkRange(first, last enc.Component) error {
	if first.Compare(last) > 0 {
		return ErrInvalidRange{First: first, Last: last}
	}
	return nil
}
