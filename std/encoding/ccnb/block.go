package ccnb

import "unicode/utf8"

// Block is one node of a parsed ccnb tree.
// It is one of *Blob, *Text, *Tag, *Attr, *DTag, *DAttr or *Ext.
type Block interface {
	Type() Type
}

// Blob holds opaque bytes.
type Blob struct {
	Val []byte
}

// Text holds a UDATA string. The bytes are kept as read, without UTF-8
// validation.
type Text struct {
	Val string
}

// Tag is a composite block identified by a spelled-out name.
type Tag struct {
	Name     string
	Attrs    []Block
	Children []Block
}

// Attr is a named attribute of a Tag or DTag.
type Attr struct {
	Name  string
	Value *Text
}

// DTag is a composite block identified by a dictionary code.
type DTag struct {
	Code     uint32
	Attrs    []Block
	Children []Block
}

// DAttr is an attribute identified by a dictionary code.
type DAttr struct {
	Code  uint32
	Value *Text
}

// Ext is an extension block. Its value is the subtype, it has no body.
type Ext struct {
	Subtype uint64
}

func (*Blob) Type() Type  { return TypeBlob }
func (*Text) Type() Type  { return TypeUData }
func (*Tag) Type() Type   { return TypeTag }
func (*Attr) Type() Type  { return TypeAttr }
func (*DTag) Type() Type  { return TypeDTag }
func (*DAttr) Type() Type { return TypeDAttr }
func (*Ext) Type() Type   { return TypeExt }

// ValidUTF8 reports whether the text is valid UTF-8.
func (t *Text) ValidUTF8() bool {
	return utf8.ValidString(t.Val)
}

// Children returns the children of a Tag or DTag, nil for other blocks.
func Children(b Block) []Block {
	switch t := b.(type) {
	case *Tag:
		return t.Children
	case *DTag:
		return t.Children
	}
	return nil
}

// Attrs returns the attributes of a Tag or DTag, nil for other blocks.
func Attrs(b Block) []Block {
	switch t := b.(type) {
	case *Tag:
		return t.Attrs
	case *DTag:
		return t.Attrs
	}
	return nil
}
