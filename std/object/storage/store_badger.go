package storage

import (
	"errors"

	"github.com/dgraph-io/badger/v4"
	enc "github.com/named-data/ndnb/std/encoding"
	"github.com/named-data/ndnb/std/ndn"
)

func _() {
	var _ ndn.Store = &BadgerStore{}
}

// BadgerStore keeps packets in a badger database, keyed by NameKey.
type BadgerStore struct {
	db *badger.DB
}

func NewBadgerStore(path string) (*BadgerStore, error) {
	db, err := badger.Open(badger.DefaultOptions(path).WithLogger(nil))
	if err != nil {
		return nil, err
	}

	return &BadgerStore{db: db}, nil
}

func (s *BadgerStore) String() string {
	return "badger-store"
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}

func (s *BadgerStore) Get(name enc.Name, prefix bool) (wire []byte, err error) {
	key := NameKey(name)
	err = s.db.View(func(txn *badger.Txn) error {
		// Exact match
		if !prefix {
			item, err := txn.Get(key)
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			} else if err != nil {
				return err
			}
			wire, err = item.ValueCopy(nil)
			return err
		}

		// Prefix match, greatest name first
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		it := txn.NewIterator(opts)
		defer it.Close()

		// length prefixes never start with 0xFF
		it.Seek(append(key, 0xFF))
		if !it.ValidForPrefix(key) {
			return nil
		}

		wire, err = it.Item().ValueCopy(nil)
		return err
	})

	return
}

func (s *BadgerStore) Put(name enc.Name, wire []byte) error {
	key := NameKey(name)
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, wire)
	})
}

func (s *BadgerStore) Remove(name enc.Name) error {
	key := NameKey(name)
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

func (s *BadgerStore) RemovePrefix(prefix enc.Name) error {
	keyPfx := NameKey(prefix)
	return s.deleteRange(keyPfx, prefixEnd(keyPfx))
}

func (s *BadgerStore) RemoveFlatRange(prefix enc.Name, first enc.Component, last enc.Component) error {
	if err := checkRange(first, last); err != nil {
		return err
	}
	firstKey := NameKey(prefix.Append(first))
	lastKey := NameKey(prefix.Append(last))
	return s.deleteRange(firstKey, prefixEnd(lastKey))
}

// deleteRange deletes the keys in [start, end). A nil end is unbounded.
func (s *BadgerStore) deleteRange(start, end []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false // keys only
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(start); it.Valid(); it.Next() {
			key := it.Item().KeyCopy(nil)
			if end != nil && string(key) >= string(end) {
				return nil
			}
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}
