package cache

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

const badgerKeyPrefix = "marvel:response:"

// Badger caches responses in an embedded Badger database. Expiry uses
// Badger's native entry TTL, so expired entries are invisible to Get as soon
// as they lapse.
type Badger struct {
	db   *badger.DB
	opts options
}

// NewBadger opens a Badger database in dir. An empty dir opens an in-memory database.
func NewBadger(dir string, opts ...Option) (*Badger, error) {
	bopts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		bopts = bopts.WithInMemory(true)
	}

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger cache: %w", err)
	}
	return &Badger{db: db, opts: buildOptions(opts)}, nil
}

func badgerKey(key string) []byte {
	return []byte(badgerKeyPrefix + key)
}

// Get returns the payload stored under key.
func (b *Badger) Get(key string) (string, bool, error) {
	var payload []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(badgerKey(key))
		if err != nil {
			return err
		}
		payload, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get cache entry: %w", err)
	}
	return string(payload), true, nil
}

// Store writes payload under key.
func (b *Badger) Store(key, payload string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry(badgerKey(key), []byte(payload))
		if ttl := b.opts.ttl(); ttl > 0 {
			entry = entry.WithTTL(ttl)
		}
		return txn.SetEntry(entry)
	})
	if err != nil {
		return fmt.Errorf("store cache entry: %w", err)
	}
	return nil
}

// Sweep reclaims value log space held by expired entries.
func (b *Badger) Sweep() error {
	if b.db.Opts().InMemory {
		return nil
	}
	err := b.db.RunValueLogGC(0.5)
	if err != nil && !errors.Is(err, badger.ErrNoRewrite) {
		return fmt.Errorf("sweep badger cache: %w", err)
	}
	return nil
}

// Clear deletes every cached response.
func (b *Badger) Clear() error {
	if err := b.db.DropPrefix([]byte(badgerKeyPrefix)); err != nil {
		return fmt.Errorf("clear badger cache: %w", err)
	}
	return nil
}

func (b *Badger) Close() error {
	return b.db.Close()
}
