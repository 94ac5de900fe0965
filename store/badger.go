package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/scribelabs/marketscribe/domain"
)

// BadgerStore implements Store on an embedded Badger key-value database.
// Entries carry a native TTL, so expiry needs no sweep here.
type BadgerStore struct {
	db  *badger.DB
	ttl time.Duration
}

// NewBadgerStore opens (or creates) a badger database at path. An empty path
// opens an in-memory database, which is what the tests use.
func NewBadgerStore(path string, ttl time.Duration) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger database: %w", err)
	}

	return &BadgerStore{db: db, ttl: ttl}, nil
}

// Put inserts or replaces a session. The entry TTL is refreshed on every
// write, which gives the sliding expiry for free.
func (s *BadgerStore) Put(ctx context.Context, session *domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(session.ID), data).WithTTL(s.ttl)
		return txn.SetEntry(entry)
	})
}

// Get retrieves a session by id, or nil when the id is unknown or its entry
// TTL has lapsed.
func (s *BadgerStore) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	var session *domain.Session

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(sessionID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var decoded domain.Session
			if err := json.Unmarshal(val, &decoded); err != nil {
				return fmt.Errorf("failed to unmarshal session: %w", err)
			}
			session = &decoded
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

// Delete removes a session.
func (s *BadgerStore) Delete(ctx context.Context, sessionID string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(sessionID))
	})
}

// Close closes the database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}
