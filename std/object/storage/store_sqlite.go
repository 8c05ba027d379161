package storage

import (
	"database/sql"
	"errors"

	_ "github.com/mattn/go-sqlite3"
	enc "github.com/named-data/ndnb/std/encoding"
	"github.com/named-data/ndnb/std/ndn"
)

func _() {
	var _ ndn.Store = &SqliteStore{}
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS packets (
	name      BLOB PRIMARY KEY,
	name_hash INTEGER NOT NULL,
	wire      BLOB NOT NULL
);
CREATE INDEX IF NOT EXISTS packets_name_hash ON packets (name_hash);
`

// SqliteStore keeps packets in a sqlite table.
// The name column holds the NameKey, so ORDER BY name is canonical order.
// Exact lookups go through the xxhash of the name.
type SqliteStore struct {
	db *sql.DB
}

func NewSqliteStore(path string) (*SqliteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err = db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, err
	}
	return &SqliteStore{db: db}, nil
}

func (s *SqliteStore) String() string {
	return "sqlite-store"
}

func (s *SqliteStore) Close() error {
	return s.db.Close()
}

func (s *SqliteStore) Get(name enc.Name, prefix bool) ([]byte, error) {
	key := NameKey(name)

	var row *sql.Row
	switch end := prefixEnd(key); {
	case !prefix:
		row = s.db.QueryRow("SELECT wire FROM packets WHERE name_hash=? AND name=?", nameHash(name), key)
	case end == nil:
		row = s.db.QueryRow("SELECT wire FROM packets WHERE name>=? ORDER BY name DESC LIMIT 1", key)
	default:
		row = s.db.QueryRow("SELECT wire FROM packets WHERE name>=? AND name<? ORDER BY name DESC LIMIT 1", key, end)
	}

	var wire []byte
	if err := row.Scan(&wire); errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return wire, nil
}

func (s *SqliteStore) Put(name enc.Name, wire []byte) error {
	if wire == nil {
		wire = []byte{}
	}
	_, err := s.db.Exec("INSERT OR REPLACE INTO packets (name, name_hash, wire) VALUES (?, ?, ?)",
		NameKey(name), nameHash(name), wire)
	return err
}

func (s *SqliteStore) Remove(name enc.Name) error {
	_, err := s.db.Exec("DELETE FROM packets WHERE name_hash=? AND name=?", nameHash(name), NameKey(name))
	return err
}

func (s *SqliteStore) RemovePrefix(prefix enc.Name) error {
	key := NameKey(prefix)
	return s.deleteRange(key, prefixEnd(key))
}

func (s *SqliteStore) RemoveFlatRange(prefix enc.Name, first enc.Component, last enc.Component) error {
	if err := checkRange(first, last); err != nil {
		return err
	}
	firstKey := NameKey(prefix.Append(first))
	lastKey := NameKey(prefix.Append(last))
	return s.deleteRange(firstKey, prefixEnd(lastKey))
}

// deleteRange deletes the keys in [start, end). A nil end is unbounded.
func (s *SqliteStore) deleteRange(start, end []byte) (err error) {
	if end == nil {
		_, err = s.db.Exec("DELETE FROM packets WHERE name>=?", start)
	} else {
		_, err = s.db.Exec("DELETE FROM packets WHERE name>=? AND name<?", start, end)
	}
	return err
}

// nameHash is the hash column value. sqlite integers are signed.
func nameHash(name enc.Name) int64 {
	return int64(name.Hash())
}
