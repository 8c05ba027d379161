package encoding

import (
	"bytes"
	"strings"
)

// Component is one segment of a Name: an opaque sequence of bytes.
type Component struct {
	Val []byte
}

func NewBytesComponent(val []byte) Component {
	return Component{Val: val}
}

func NewStringComponent(val string) Component {
	return Component{Val: []byte(val)}
}

func (c Component) Clone() Component {
	return Component{
		Val: append([]byte(nil), c.Val...),
	}
}

func (c Component) Length() int {
	return len(c.Val)
}

// String returns the escaped URI form of the component.
func (c Component) String() string {
	sb := strings.Builder{}
	c.WriteTo(&sb)
	return sb.String()
}

func (c Component) WriteTo(sb *strings.Builder) int {
	return EscapeTo(c.Val, sb)
}

// Compare orders components canonically: a shorter component is less than a
// longer one, and components of equal length compare byte by byte.
func (c Component) Compare(rhs Component) int {
	if len(c.Val) != len(rhs.Val) {
		if len(c.Val) < len(rhs.Val) {
			return -1
		} else {
			return 1
		}
	}
	return bytes.Compare(c.Val, rhs.Val)
}

// LessEq is the canonical <= relation.
// It holds when both components are equal, including a component and itself.
func (c Component) LessEq(rhs Component) bool {
	if len(c.Val) != len(rhs.Val) {
		return len(c.Val) < len(rhs.Val)
	}
	for i := range c.Val {
		if c.Val[i] != rhs.Val[i] {
			return c.Val[i] < rhs.Val[i]
		}
	}
	return true
}

func (c Component) Equal(rhs Component) bool {
	return bytes.Equal(c.Val, rhs.Val)
}

// ComponentFromStr parses the escaped URI form of a component.
func ComponentFromStr(s string) (Component, error) {
	val, err := Unescape(s)
	if err != nil {
		return Component{}, err
	}
	return Component{Val: val}, nil
}
