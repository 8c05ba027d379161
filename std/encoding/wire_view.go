package encoding

import (
	"io"
)

// WireView is a parsing view of a Wire.
// It lives entirely on the stack and fits in a cache line.
type WireView struct {
	wire  Wire
	apos  int // absolute position from start of wire
	rpos  int // relative position within segment
	seg   int // segment index
	end   int // total length
}

func NewWireView(wire Wire) WireView {
	end := 0
	for _, seg := range wire {
		end += len(seg)
	}
	ret := WireView{wire: wire, end: end}
	ret.skipEmpty()
	return ret
}

func (r *WireView) IsEOF() bool {
	return r.apos >= r.end
}

// Pos returns the number of bytes read so far.
func (r *WireView) Pos() int {
	return r.apos
}

// Remaining returns the number of bytes left to read.
func (r *WireView) Remaining() int {
	return r.end - r.apos
}

func (r *WireView) ReadByte() (byte, error) {
	if r.IsEOF() {
		return 0, io.EOF
	}
	b := r.wire[r.seg][r.rpos]
	r.advance(1)
	return b, nil
}

// PeekByte returns the next byte without consuming it.
func (r *WireView) PeekByte() (byte, error) {
	if r.IsEOF() {
		return 0, io.EOF
	}
	return r.wire[r.seg][r.rpos], nil
}

// ReadBuf reads the next size bytes. The result shares memory with the
// underlying wire when the bytes are contiguous.
func (r *WireView) ReadBuf(size int) ([]byte, error) {
	if size < 0 || size > r.end-r.apos {
		return nil, ErrBufferOverflow
	}
	if size == 0 {
		return []byte{}, nil
	}

	// skip allocation if the entire buffer is in the current segment
	if size <= len(r.wire[r.seg])-r.rpos {
		ret := r.wire[r.seg][r.rpos : r.rpos+size]
		r.advance(size)
		return ret, nil
	}

	ret := make([]byte, size)
	written := 0
	for written < size {
		segleft := len(r.wire[r.seg]) - r.rpos
		n := copy(ret[written:], r.wire[r.seg][r.rpos:r.rpos+min(segleft, size-written)])
		r.advance(n)
		written += n
	}
	return ret, nil
}

func (r *WireView) advance(n int) {
	r.apos += n
	r.rpos += n
	if r.rpos == len(r.wire[r.seg]) {
		r.rpos = 0
		r.seg++
		r.skipEmpty()
	}
}

func (r *WireView) skipEmpty() {
	for r.seg < len(r.wire) && len(r.wire[r.seg]) == 0 {
		r.seg++
	}
}
