package ccnb

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedEnd  = errors.New("unexpected end of input")
	ErrHeaderOverflow = errors.New("block header value exceeds 64 bits")
	ErrTooDeep        = errors.New("blocks nested too deeply")
	// SkipChildren is returned by a Walk callback to skip the children of
	// the current block.
	SkipChildren = errors.New("skip children")
)

// ErrUnknownBlockTag is returned for a header whose 3-bit type is not known.
type ErrUnknownBlockTag struct {
	Tag Type
}

func (e ErrUnknownBlockTag) Error() string {
	return fmt.Sprintf("unknown block tag: %d", e.Tag)
}

// ErrAttributeMustBeText is returned when an attribute header is not
// followed by a UDATA block.
type ErrAttributeMustBeText struct {
	Got Type
}

func (e ErrAttributeMustBeText) Error() string {
	return fmt.Sprintf("attribute value must be text, got %s", e.Got)
}

// ErrMalformedField is returned when a field expected exactly one nested
// block and found Count.
type ErrMalformedField struct {
	Field string
	Count int
}

func (e ErrMalformedField) Error() string {
	return fmt.Sprintf("malformed field %s: expected exactly one nested block, found %d", e.Field, e.Count)
}

// ErrNegativeLength is returned when the encoder is asked to emit a field
// of negative length or value.
type ErrNegativeLength struct {
	Field string
	Value int64
}

func (e ErrNegativeLength) Error() string {
	return fmt.Sprintf("negative length for %s: %d", e.Field, e.Value)
}

// ErrUnexpectedBlock is returned by extractors handed a block of a kind
// they do not accept.
type ErrUnexpectedBlock struct {
	Want string
	Got  Type
}

func (e ErrUnexpectedBlock) Error() string {
	return fmt.Sprintf("expected %s, got %s block", e.Want, e.Got)
}
