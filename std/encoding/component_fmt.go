package encoding

import (
	"strings"
)

var HEX_UPPER = []rune("0123456789ABCDEF")

// uriEscape marks the bytes that must be percent-encoded in a URI component.
var uriEscape = [256]uint8{
	// 0x00 - 0x0F
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	// 0x10 - 0x1F
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	// 0x20 - 0x2F: space " # % /
	1, 0, 1, 1, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1,
	// 0x30 - 0x3F: < > ?
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 1, 1,
	// 0x40 - 0x4F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	// 0x50 - 0x5F: \ ^
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 1, 0,
	// 0x60 - 0x6F: `
	1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	// 0x70 - 0x7F: { | } DEL
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 0, 1,
	// 0x80 - 0xFF
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
}

// MustEscape reports whether b is percent-encoded in URIs.
func MustEscape(b byte) bool {
	return uriEscape[b] != 0
}

// EscapeTo writes val to sb, percent-encoding the bytes that require it.
// A value made only of periods (including the empty value) gets three extra
// periods so that it survives the round trip through a URI.
func EscapeTo(val []byte, sb *strings.Builder) int {
	if allPeriods(val) {
		sb.WriteString("...")
		sb.Write(val)
		return len(val) + 3
	}

	size := 0
	for _, b := range val {
		if !MustEscape(b) {
			sb.WriteByte(b)
			size += 1
		} else {
			sb.WriteRune('%')
			sb.WriteRune(HEX_UPPER[b>>4])
			sb.WriteRune(HEX_UPPER[b&0x0F])
			size += 3
		}
	}
	return size
}

// Unescape reverses EscapeTo.
func Unescape(s string) ([]byte, error) {
	if len(s) >= 3 && allPeriods([]byte(s)) {
		return []byte(s[3:]), nil
	}
	if strings.IndexByte(s, '%') < 0 {
		return []byte(s), nil
	}

	val := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		if s[i] != '%' {
			val = append(val, s[i])
			i++
			continue
		}
		if i+2 >= len(s) {
			return nil, ErrInvalidEscape{Input: s, Pos: i}
		}
		hi, ok1 := fromHex(s[i+1])
		lo, ok2 := fromHex(s[i+2])
		if !ok1 || !ok2 {
			return nil, ErrInvalidEscape{Input: s, Pos: i}
		}
		val = append(val, hi<<4|lo)
		i += 3
	}
	return val, nil
}

func fromHex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func allPeriods(val []byte) bool {
	for _, b := range val {
		if b != '.' {
			return false
		}
	}
	return true
}
