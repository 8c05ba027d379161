package ccnb

import (
	"strconv"
	"time"

	enc "github.com/named-data/ndnb/std/encoding"
)

// Encoder writes ccnb blocks to a buffer, front to back.
// Composite blocks are opened with Open or Tag and ended with Close.
type Encoder struct {
	// Dict selects the codes written by Open. Nil means NDNB.
	Dict *Dictionary
	buf  enc.Buffer
}

func NewEncoder(dict *Dictionary) *Encoder {
	return &Encoder{Dict: dict}
}

// Bytes returns the encoded bytes. The encoder keeps appending to them.
func (e *Encoder) Bytes() enc.Buffer {
	return e.buf
}

func (e *Encoder) Len() int {
	return len(e.buf)
}

// Reset discards the output, keeping the allocated memory.
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
}

func (e *Encoder) dict() *Dictionary {
	if e.Dict == nil {
		return NDNB
	}
	return e.Dict
}

// Header writes a raw block header.
func (e *Encoder) Header(typ Type, val uint64) {
	e.buf = AppendHeader(e.buf, typ, val)
}

// Open starts the DTag of t.
func (e *Encoder) Open(t Dtag) {
	e.OpenCode(e.dict().Code(t))
}

// OpenCode starts a DTag by code.
func (e *Encoder) OpenCode(code uint32) {
	e.Header(TypeDTag, uint64(code))
}

// Close writes a closer.
func (e *Encoder) Close() {
	e.buf = append(e.buf, Closer)
}

// Tag starts a Tag with a spelled-out name.
func (e *Encoder) Tag(name string) error {
	if len(name) == 0 {
		return ErrNegativeLength{Field: "Tag", Value: -1}
	}
	e.Header(TypeTag, uint64(len(name)-1))
	e.buf = append(e.buf, name...)
	return nil
}

// Attr writes a named attribute and its text value.
func (e *Encoder) Attr(name, value string) error {
	if len(name) == 0 {
		return ErrNegativeLength{Field: "Attr", Value: -1}
	}
	e.Header(TypeAttr, uint64(len(name)-1))
	e.buf = append(e.buf, name...)
	e.UData(value)
	return nil
}

// DAttr writes a dictionary attribute and its text value.
func (e *Encoder) DAttr(code uint32, value string) {
	e.Header(TypeDAttr, uint64(code))
	e.UData(value)
}

// Ext writes an extension block.
func (e *Encoder) Ext(subtype uint64) {
	e.Header(TypeExt, subtype)
}

// Blob writes a BLOB. An empty value still gets its header.
func (e *Encoder) Blob(val []byte) {
	e.Header(TypeBlob, uint64(len(val)))
	e.buf = append(e.buf, val...)
}

// UData writes a UDATA block.
func (e *Encoder) UData(val string) {
	e.Header(TypeUData, uint64(len(val)))
	e.buf = append(e.buf, val...)
}

// TaggedBlob writes a DTag holding one BLOB.
func (e *Encoder) TaggedBlob(t Dtag, val []byte) {
	e.Open(t)
	e.Blob(val)
	e.Close()
}

// TaggedUData writes a DTag holding one UDATA.
func (e *Encoder) TaggedUData(t Dtag, val string) {
	e.Open(t)
	e.UData(val)
	e.Close()
}

// TaggedUint writes a DTag holding a decimal UDATA.
func (e *Encoder) TaggedUint(t Dtag, val uint64) {
	e.TaggedUData(t, strconv.FormatUint(val, 10))
}

// TaggedTimestamp writes a DTag holding a fixed-point timestamp BLOB.
func (e *Encoder) TaggedTimestamp(t Dtag, d time.Duration) error {
	ts, err := EncodeTimestamp(d)
	if err != nil {
		return err
	}
	e.TaggedBlob(t, ts)
	return nil
}

// Component writes a name component.
func (e *Encoder) Component(c enc.Component) {
	e.TaggedBlob(DtagComponent, c.Val)
}

// Name writes a Name DTag. The empty name is an empty Name DTag.
func (e *Encoder) Name(n enc.Name) {
	e.Open(DtagName)
	for _, c := range n {
		e.Component(c)
	}
	e.Close()
}

// Block writes a parsed block and everything below it.
func (e *Encoder) Block(b Block) error {
	switch t := b.(type) {
	case *Blob:
		e.Blob(t.Val)
	case *Text:
		e.UData(t.Val)
	case *Tag:
		if err := e.Tag(t.Name); err != nil {
			return err
		}
		return e.body(t.Attrs, t.Children)
	case *DTag:
		e.OpenCode(t.Code)
		return e.body(t.Attrs, t.Children)
	case *Attr:
		return e.Attr(t.Name, textVal(t.Value))
	case *DAttr:
		e.DAttr(t.Code, textVal(t.Value))
	case *Ext:
		e.Ext(t.Subtype)
	default:
		return enc.ErrFormat{Msg: "unknown block"}
	}
	return nil
}

func (e *Encoder) body(attrs, children []Block) error {
	for _, a := range attrs {
		if err := e.Block(a); err != nil {
			return err
		}
	}
	for _, c := range children {
		if err := e.Block(c); err != nil {
			return err
		}
	}
	e.Close()
	return nil
}

// Encode returns the bytes of a block tree.
func Encode(b Block) (enc.Buffer, error) {
	e := Encoder{}
	if err := e.Block(b); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

func textVal(t *Text) string {
	if t == nil {
		return ""
	}
	return t.Val
}
