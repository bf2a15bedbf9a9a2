package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("store: closed")

// Store is a badger-backed NationalityCache.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
	ttl    time.Duration
	now    func() time.Time
}

var _ NationalityCache = (*Store)(nil)

// New opens (or creates) a badger database at path. Entries older than ttl
// are treated as misses; a zero ttl keeps them forever.
func New(path string, ttl time.Duration, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Survive crashes without losing acknowledged entries
	opts.CompactL0OnClose = true // Faster startup

	return open(opts, ttl, logger)
}

// OpenReadOnly opens an existing database for inspection. Writes fail.
func OpenReadOnly(path string, ttl time.Duration) (*Store, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil)
	return open(opts, ttl, nil)
}

// NewInMemory opens a store that lives only for the life of the process.
func NewInMemory(ttl time.Duration, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts, ttl, logger)
}

func open(opts badger.Options, ttl time.Duration, logger *slog.Logger) (*Store, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	if logger != nil {
		logger.Info("Badger database opened", "path", opts.Dir, "in_memory", opts.InMemory, "ttl", ttl)
	}
	return &Store{db: db, logger: logger, ttl: ttl, now: time.Now}, nil
}

// Close flushes and closes the database. Closing twice is a no-op.
func (s *Store) Close() error {
	if s.db.IsClosed() {
		return nil
	}
	if s.logger != nil {
		s.logger.Info("Closing database connection")
	}
	return s.db.Close()
}

// Ping reports whether the database is open.
func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.db.IsClosed() {
		return ErrClosed
	}
	return nil
}
