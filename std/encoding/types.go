package encoding

import (
	"fmt"
)

// Buffer is a buffer of bytes
type Buffer []byte

// Wire is a collection of Buffer. May be allocated in non-contiguous memory.
type Wire []Buffer

// Length returns the total number of bytes in the wire.
func (w Wire) Length() uint64 {
	ret := uint64(0)
	for _, v := range w {
		ret += uint64(len(v))
	}
	return ret
}

type ErrFormat struct {
	Msg string
}

func (e ErrFormat) Error() string {
	return e.Msg
}

// ErrInvalidEscape is returned when a URI contains a '%' that is not
// followed by two hexadecimal digits.
type ErrInvalidEscape struct {
	Input string
	Pos   int
}

func (e ErrInvalidEscape) Error() string {
	return fmt.Sprintf("invalid escape sequence at position %d in %q", e.Pos, e.Input)
}

var ErrBufferOverflow = fmt.Errorf("buffer overflow when parsing. One of the lengths is wrong")
