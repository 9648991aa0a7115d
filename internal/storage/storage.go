package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	sessionPrefix = "session/"
)

// ErrNotFound is returned when a session key does not exist.
var ErrNotFound = errors.New("not found")

// SessionRecord is the persisted form of a game session: the board as a FEN
// string plus bookkeeping timestamps.
type SessionRecord struct {
	ID        string    `json:"id"`
	FEN       string    `json:"fen"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Options configures how the database is opened.
type Options struct {
	Dir      string
	InMemory bool
	Logger   *log.Logger // nil disables badger logging
	Debug    bool        // forward badger debug output
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// OpenInMemory opens a database that lives only for the process lifetime.
func OpenInMemory() (*Storage, error) {
	return Open(Options{InMemory: true})
}

// Open opens the database described by opts. An empty Dir means the
// platform data directory.
func Open(opts Options) (*Storage, error) {
	var bopts badger.Options
	switch {
	case opts.InMemory:
		bopts = badger.DefaultOptions("").WithInMemory(true)
	case opts.Dir == "":
		dbDir, err := GetDatabaseDir()
		if err != nil {
			return nil, err
		}
		bopts = badger.DefaultOptions(dbDir)
	default:
		bopts = badger.DefaultOptions(opts.Dir)
	}

	if opts.Logger != nil {
		bopts.Logger = newLogger(opts.Logger, opts.Debug)
	} else {
		bopts.Logger = nil // Disable logging
	}

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}

	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func sessionKey(id string) []byte {
	return []byte(sessionPrefix + id)
}

// SaveSession writes or replaces a session record.
func (s *Storage) SaveSession(rec SessionRecord) error {
	if rec.ID == "" {
		return errors.New("session record without id")
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(sessionKey(rec.ID), data)
	})
}

// LoadSession reads a session record. Missing sessions return ErrNotFound.
func (s *Storage) LoadSession(id string) (SessionRecord, error) {
	var rec SessionRecord

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(sessionKey(id))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("session %s: %w", id, ErrNotFound)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})

	return rec, err
}

// DeleteSession removes a session record. Deleting a missing session is
// not an error.
func (s *Storage) DeleteSession(id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(sessionKey(id))
	})
}

// ListSessions returns every stored session in key order.
func (s *Storage) ListSessions() ([]SessionRecord, error) {
	var out []SessionRecord

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(sessionPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var rec SessionRecord
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			})
			if err != nil {
				return err
			}
			out = append(out, rec)
		}
		return nil
	})

	return out, err
}
