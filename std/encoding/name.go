package encoding

import (
	"bytes"
	"encoding/binary"
	"strings"
)

// Name is a hierarchical sequence of components. The empty name is the root.
type Name []Component

// String returns the URI form of the name.
func (n Name) String() string {
	if len(n) == 0 {
		return "/"
	}
	sb := strings.Builder{}
	for _, c := range n {
		sb.WriteRune('/')
		c.WriteTo(&sb)
	}
	return sb.String()
}

// Clone returns a deep copy of a Name
func (n Name) Clone() Name {
	ret := make(Name, len(n))
	valLen := 0
	for i := range n {
		valLen += len(n[i].Val)
	}
	buf := make([]byte, valLen)
	for i, c := range n {
		vlen := len(c.Val)
		copy(buf, c.Val)
		ret[i].Val = buf[:vlen:vlen]
		buf = buf[vlen:]
	}
	return ret
}

// Get the ith component of a Name.
// If i is out of range, a zero component is returned.
// Negative values start from the end.
func (n Name) At(i int) Component {
	if i < -len(n) || i >= len(n) {
		return Component{}
	} else if i < 0 {
		return n[len(n)+i]
	} else {
		return n[i]
	}
}

// Get a name prefix with the first i components.
// If i is zero, an empty name is returned.
// If i is negative, i components are removed from the end.
// Note that the returned name is not a deep copy.
func (n Name) Prefix(i int) Name {
	if i < 0 {
		i = len(n) + i
	}
	if i <= 0 {
		return Name{}
	}
	if i >= len(n) {
		return n
	}
	return n[:i]
}

// Sub returns the components in [start, end), clamped to the name.
// Negative indices count from the end.
func (n Name) Sub(start, end int) Name {
	if start < 0 {
		start = max(len(n)+start, 0)
	}
	if end < 0 {
		end = len(n) + end
	}
	end = min(end, len(n))
	if start >= end {
		return Name{}
	}
	return n[start:end:end]
}

// Append appends one or more components to a copy of the name.
func (n Name) Append(rest ...Component) Name {
	if len(rest) == 0 {
		return n
	}
	ret := make(Name, len(n)+len(rest), len(n)+len(rest)+8)
	copy(ret, n)
	copy(ret[len(n):], rest)
	return ret
}

// Concat returns a new name made of n followed by rhs.
func (n Name) Concat(rhs Name) Name {
	return n.Append(rhs...)
}

// Compare orders names component by component using plain byte-wise
// comparison of the component values; a proper prefix sorts first.
func (n Name) Compare(rhs Name) int {
	for i := 0; i < min(len(n), len(rhs)); i++ {
		if ret := bytes.Compare(n[i].Val, rhs[i].Val); ret != 0 {
			return ret
		}
	}
	return compareLen(len(n), len(rhs))
}

// CanonicalCompare orders names component by component using the canonical
// component order (length first).
func (n Name) CanonicalCompare(rhs Name) int {
	for i := 0; i < min(len(n), len(rhs)); i++ {
		if ret := n[i].Compare(rhs[i]); ret != 0 {
			return ret
		}
	}
	return compareLen(len(n), len(rhs))
}

func compareLen(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (n Name) Equal(rhs Name) bool {
	if len(n) != len(rhs) {
		return false
	}
	for i := range n {
		if !n[i].Equal(rhs[i]) {
			return false
		}
	}
	return true
}

// IsPrefix returns true if n is a prefix of rhs.
func (n Name) IsPrefix(rhs Name) bool {
	if len(n) > len(rhs) {
		return false
	}
	for i := 0; i < len(n); i++ {
		if !n[i].Equal(rhs[i]) {
			return false
		}
	}
	return true
}

// Hash returns the hash of the name
func (n Name) Hash() uint64 {
	xx := xxHashPoolGet()
	defer xxHashPoolPut(xx)

	for _, c := range n {
		writeHashComponent(xx, c)
	}
	return xx.hash.Sum64()
}

func writeHashComponent(xx *hashPoolObj, c Component) {
	var l [binary.MaxVarintLen64]byte
	xx.hash.Write(l[:binary.PutUvarint(l[:], uint64(len(c.Val)))])
	xx.hash.Write(c.Val)
}

// NameFromStr parses a URI string into a Name.
// An optional "ndn:" or "ccnx:" scheme is accepted, repeated slashes are
// collapsed, and the URI "/" is the empty name.
func NameFromStr(s string) (Name, error) {
	if colon := strings.IndexByte(s, ':'); colon >= 0 {
		if slash := strings.IndexByte(s, '/'); slash < 0 || colon < slash {
			scheme := strings.ToLower(s[:colon+1])
			if scheme != "ndn:" && scheme != "ccnx:" {
				return nil, ErrFormat{"unsupported URI scheme: " + s[:colon+1]}
			}
			s = s[colon+1:]
			if strings.HasPrefix(s, "//") {
				return nil, ErrFormat{"URI authority is not supported: " + s}
			}
		}
	}

	strs := strings.Split(s, "/")
	ret := make(Name, 0, len(strs))
	for _, str := range strs {
		if str == "" {
			continue
		}
		c, err := ComponentFromStr(str)
		if err != nil {
			return nil, err
		}
		ret = append(ret, c)
	}
	return ret, nil
}
