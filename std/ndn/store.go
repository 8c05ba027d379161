package ndn

import enc "github.com/named-data/ndnb/std/encoding"

type Store interface {
	// Get returns a Data wire matching the given name
	// prefix = return the last Data wire under the given prefix, in
	// canonical name order
	Get(name enc.Name, prefix bool) ([]byte, error)

	// Put inserts a Data wire into the store
	Put(name enc.Name, wire []byte) error

	// Remove removes a Data wire from the store
	Remove(name enc.Name) error
	// RemovePrefix remove all Data wires under a prefix
	RemovePrefix(prefix enc.Name) error
	// RemoveFlatRange removes (recursively) all subtrees under a range of
	// flat prefixes, inclusive of first and last in canonical order.
	//  i.e. RemoveFlatRange(/A/B, 0, 3) removes /A/B/0, /A/B/1, /A/B/2, /A/B/3
	RemoveFlatRange(prefix enc.Name, first enc.Component, last enc.Component) error

	// Close releases the resources of the store
	Close() error
}
