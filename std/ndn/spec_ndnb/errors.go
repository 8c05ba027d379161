package spec_ndnb

import (
	"errors"
	"fmt"
)

// ErrTrailingBytes is returned when bytes follow the decoded packet.
var ErrTrailingBytes = errors.New("trailing bytes after packet")

// ErrUnknownContentType is returned for a Type field that is not one of
// the registered 3-byte codes.
type ErrUnknownContentType struct {
	Value []byte
}

func (e ErrUnknownContentType) Error() string {
	return fmt.Sprintf("unknown content type: %x", e.Value)
}

// ErrPacketTooLarge is returned for packets above the size limit.
type ErrPacketTooLarge struct {
	Size int
	Max  int
}

func (e ErrPacketTooLarge) Error() string {
	return fmt.Sprintf("packet of %d bytes exceeds the limit of %d bytes", e.Size, e.Max)
}
