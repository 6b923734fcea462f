// Package sessions provides the expiring session-token store, backed by an
// embedded BadgerDB so TTL eviction happens inside the store.
package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/ivolkov/filecab/internal/common"
)

// BadgerRepository implements Repository on top of badger. Entries are
// written with badger's native TTL, so the core never reads an expired
// session.
type BadgerRepository struct {
	db *badger.DB
}

// NewBadgerRepository opens (or creates) the store at dir. An empty dir
// selects an in-memory store, used in tests and throwaway deployments.
func NewBadgerRepository(dir string) (*BadgerRepository, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("session store open error: %w", err)
	}
	return &BadgerRepository{db: db}, nil
}

// Get returns the value stored under key, or common.ErrorNotFound when the
// key is absent or already expired.
func (r *BadgerRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		raw, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		value = string(raw)
		return nil
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("session store error: %w", err)
	}
	return value, nil
}

// SetWithTTL stores key → value and lets the store evict it after ttl.
func (r *BadgerRepository) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(key), []byte(value)).WithTTL(ttl)
		return txn.SetEntry(entry)
	})
	if err != nil {
		return fmt.Errorf("session store error: %w", err)
	}
	return nil
}

// Delete removes the entry for key. Deleting a missing key is not an error.
func (r *BadgerRepository) Delete(ctx context.Context, key string) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("session store error: %w", err)
	}
	return nil
}

// Alive reports whether the store is open and usable.
func (r *BadgerRepository) Alive(ctx context.Context) bool {
	return r.db != nil && !r.db.IsClosed()
}

// Close flushes and closes the underlying store.
func (r *BadgerRepository) Close() error {
	return r.db.Close()
}
