// Package storage persists user interactions in BadgerDB.
// Every check-and-insert runs in a single read-write transaction: Badger's
// serializable snapshot isolation aborts the loser of two racing transactions
// with badger.ErrConflict, and the transaction is replayed against the new state.
package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

const DefaultRetries = 5

// Store is the Badger handle shared by every repository.
type Store struct {
	db      *badger.DB
	log     *slog.Logger
	retries int
}

func NewStore(db *badger.DB, log *slog.Logger, retries int) Store {
	if retries <= 0 {
		retries = DefaultRetries
	}
	return Store{db: db, log: log, retries: retries}
}

// update runs fn in a read-write transaction and replays it on transaction conflicts.
// A canceled context aborts before the next attempt, never after a commit.
func (s Store) update(ctx context.Context, fn func(txn *badger.Txn) error) error {
	var err error
	for attempt := 1; attempt <= s.retries; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		err = s.db.Update(fn)
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
		s.log.Debug("Transaction conflict, retrying", "attempt", attempt)
	}
	return fmt.Errorf("transaction aborted after %d attempts: %w", s.retries, err)
}

// RunGC reclaims value log space left by deleted and overwritten entries.
// In-memory databases have no value log and are skipped.
func (s Store) RunGC(ratio float64) error {
	for {
		err := s.db.RunValueLogGC(ratio)
		switch {
		case err == nil:
			continue
		case errors.Is(err, badger.ErrNoRewrite), errors.Is(err, badger.ErrGCInMemoryMode):
			return nil
		default:
			return fmt.Errorf("run value log gc: %w", err)
		}
	}
}

func (s Store) view(ctx context.Context, fn func(txn *badger.Txn) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.View(fn)
}

// exists reports whether key is present, distinguishing absence from read failures.
func exists(txn *badger.Txn, key []byte) (bool, error) {
	_, err := txn.Get(key)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, badger.ErrKeyNotFound):
		return false, nil
	default:
		return false, err
	}
}

func getJSON(txn *badger.Txn, key []byte, out any) error {
	item, err := txn.Get(key)
	if err != nil {
		return err
	}
	return decodeItem(item, out)
}

func decodeItem(item *badger.Item, out any) error {
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, out)
	})
}

func setJSON(txn *badger.Txn, key []byte, in any) error {
	bytes, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return txn.Set(key, bytes)
}

// scanKeys returns the keys starting with prefix without loading their values.
func scanKeys(txn *badger.Txn, prefix []byte) [][]byte {
	options := badger.DefaultIteratorOptions
	options.PrefetchValues = false
	options.Prefix = prefix
	it := txn.NewIterator(options)
	defer it.Close()

	var keys [][]byte
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		keys = append(keys, it.Item().KeyCopy(nil))
	}
	return keys
}

func countKeys(txn *badger.Txn, prefix []byte) int {
	options := badger.DefaultIteratorOptions
	options.PrefetchValues = false
	options.Prefix = prefix
	it := txn.NewIterator(options)
	defer it.Close()

	count := 0
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		count++
	}
	return count
}

// escape keeps ":" out of key segments so prefixes cannot collide.
func escape(id string) string {
	return url.QueryEscape(id)
}

// lastSegment returns what follows the final ":" of a key.
func lastSegment(key []byte) string {
	for i := len(key) - 1; i >= 0; i-- {
		if key[i] == ':' {
			return string(key[i+1:])
		}
	}
	return string(key)
}
