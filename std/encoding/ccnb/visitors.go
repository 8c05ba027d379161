package ccnb

import (
	"strconv"
	"time"

	enc "github.com/named-data/ndnb/std/encoding"
)

// Walk visits b and then, for a Tag or DTag, its attributes and children in
// order, depth first. If fn returns SkipChildren the block's attributes and
// children are not visited. Any other error stops the walk.
func Walk(b Block, fn func(Block) error) error {
	if err := fn(b); err != nil {
		if err == SkipChildren {
			return nil
		}
		return err
	}
	for _, a := range Attrs(b) {
		if err := Walk(a, fn); err != nil {
			return err
		}
	}
	for _, c := range Children(b) {
		if err := Walk(c, fn); err != nil {
			return err
		}
	}
	return nil
}

// ExtractText returns a Blob as a string or the value of a Text.
func ExtractText(b Block) (string, error) {
	switch t := b.(type) {
	case *Blob:
		return string(t.Val), nil
	case *Text:
		return t.Val, nil
	}
	return "", ErrUnexpectedBlock{Want: "BLOB or UDATA", Got: b.Type()}
}

// ExtractBytes returns the value of a Blob, or a Text as bytes.
func ExtractBytes(b Block) ([]byte, error) {
	switch t := b.(type) {
	case *Blob:
		return t.Val, nil
	case *Text:
		return []byte(t.Val), nil
	}
	return nil, ErrUnexpectedBlock{Want: "BLOB or UDATA", Got: b.Type()}
}

// ExtractUint parses a Text as a non-negative decimal integer.
func ExtractUint(b Block) (uint64, error) {
	t, ok := b.(*Text)
	if !ok {
		return 0, ErrUnexpectedBlock{Want: "UDATA", Got: b.Type()}
	}
	v, err := strconv.ParseUint(t.Val, 10, 64)
	if err != nil {
		return 0, enc.ErrFormat{Msg: "invalid decimal integer: " + strconv.Quote(t.Val)}
	}
	return v, nil
}

// ExtractTimestamp decodes a fixed-point timestamp Blob.
func ExtractTimestamp(b Block) (time.Duration, error) {
	t, ok := b.(*Blob)
	if !ok {
		return 0, ErrUnexpectedBlock{Want: "BLOB", Got: b.Type()}
	}
	return DecodeTimestamp(t.Val)
}

// SingleChild returns the only child of a composite block.
func SingleChild(b Block, field string) (Block, error) {
	children := Children(b)
	if len(children) != 1 {
		return nil, ErrMalformedField{Field: field, Count: len(children)}
	}
	return children[0], nil
}

// AssembleName appends to name the components found below b.
// Each Component must hold exactly one BLOB or UDATA. Other composite
// blocks are searched recursively, so the components of a nested Name
// (as in a KeyName) are found too.
func AssembleName(b Block, dict *Dictionary, name *enc.Name) error {
	for _, c := range Children(b) {
		if !dict.Is(c, DtagComponent) {
			if err := AssembleName(c, dict, name); err != nil {
				return err
			}
			continue
		}

		inner, err := SingleChild(c, "Component")
		if err != nil {
			return err
		}
		val, err := ExtractBytes(inner)
		if err != nil {
			return err
		}
		*name = append(*name, enc.Component{Val: val})
	}
	return nil
}
