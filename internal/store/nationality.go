package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// GetNationality returns the cached nationality for name.
// Returns nil, nil if not found or expired.
func (s *Store) GetNationality(ctx context.Context, name string) (*CachedNationality, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var cached CachedNationality
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(nationalityKey(name))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &cached)
		})
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cached nationality: %w", err)
	}

	if cached.Expired(s.ttl, s.now()) {
		return nil, nil
	}
	return &cached, nil
}

// SetNationality stores nationality for name, replacing any earlier entry.
func (s *Store) SetNationality(ctx context.Context, name, nationality string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !ShouldCache(nationality) {
		return nil
	}

	data, err := json.Marshal(CachedNationality{
		Nationality: nationality,
		FetchedAt:   s.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal cached nationality: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(nationalityKey(name), data)
	})
}

// DeleteNationality removes the entry for name. Deleting a missing entry is not an error.
func (s *Store) DeleteNationality(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete(nationalityKey(name))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
}

// NationalityCounts counts live cached authors per raw nationality label.
func (s *Store) NationalityCounts(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int)
	now := s.now()
	prefix := []byte(nationalityPrefix)

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			item := it.Item()
			var cached CachedNationality
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &cached)
			}); err != nil {
				if s.logger != nil {
					s.logger.Warn("skipping unreadable cache entry",
						"key", string(bytes.TrimPrefix(item.Key(), prefix)),
						"error", err,
					)
				}
				continue
			}
			if cached.Expired(s.ttl, now) {
				continue
			}
			counts[cached.Nationality]++
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("count nationalities: %w", err)
	}
	return counts, nil
}
