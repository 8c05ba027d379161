package storage

import (
	"errors"
	"fmt"

	enc "github.com/named-data/ndnb/std/encoding"
)

var ErrClosed = errors.New("store is closed")

// ErrInvalidRange is returned by RemoveFlatRange when first > last.
type ErrInvalidRange struct {
	First enc.Component
	Last  enc.Component
}

func (e ErrInvalidRange) Error() string {
	return fmt.Sprintf("invalid range: %s > %s", e.First, e.Last)
}

// ErrUnknownBackend is returned by Open for an unsupported backend name.
type ErrUnknownBackend struct {
	Backend string
}

func (e ErrUnknownBackend) Error() string {
	return "unknown store backend: " + e.Backend
}
