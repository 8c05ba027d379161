package storage

import (
	"strings"

	"github.com/named-data/ndnb/std/ndn"
)

// Open opens a store by backend name: memory, badger or sqlite.
// path is ignored by the memory backend.
func Open(backend string, path string) (ndn.Store, error) {
	switch strings.ToLower(backend) {
	case "", "memory":
		return NewMemoryStore(), nil
	case "badger":
		return NewBadgerStore(path)
	case "sqlite":
		return NewSqliteStore(path)
	}
	return nil, ErrUnknownBackend{Backend: backend}
}
