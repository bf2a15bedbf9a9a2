package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/georeads/georeads/internal/store"
)

// GetNationality retrieves the cached nationality for name.
// Returns nil, nil if not found or expired.
func (s *Store) GetNationality(ctx context.Context, name string) (*store.CachedNationality, error) {
	var nationality, fetchedAt string

	err := s.db.QueryRowContext(ctx,
		`SELECT nationality, fetched_at FROM authors WHERE name = ?`,
		name).Scan(&nationality, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cached nationality: %w", err)
	}

	fetchedTime, err := parseTime(fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("parse fetched_at for %q: %w", name, err)
	}

	cached := &store.CachedNationality{Nationality: nationality, FetchedAt: fetchedTime}
	if cached.Expired(s.ttl, s.now()) {
		return nil, nil
	}
	return cached, nil
}

// SetNationality upserts the nationality for name.
func (s *Store) SetNationality(ctx context.Context, name, nationality string) error {
	if !store.ShouldCache(nationality) {
		return ctx.Err()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO authors (name, nationality, fetched_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			nationality = excluded.nationality,
			fetched_at = excluded.fetched_at`,
		name, nationality, formatTime(s.now()))
	if err != nil {
		return fmt.Errorf("set cached nationality: %w", err)
	}
	return nil
}

// DeleteNationality removes the entry for name, if any.
func (s *Store) DeleteNationality(ctx context.Context, name string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM authors WHERE name = ?`, name); err != nil {
		return fmt.Errorf("delete cached nationality: %w", err)
	}
	return nil
}

// NationalityCounts counts live cached authors per raw nationality label.
func (s *Store) NationalityCounts(ctx context.Context) (map[string]int, error) {
	query := `SELECT nationality, COUNT(*) FROM authors GROUP BY nationality`
	var args []any
	if s.ttl > 0 {
		query = `SELECT nationality, COUNT(*) FROM authors WHERE fetched_at >= ? GROUP BY nationality`
		args = append(args, formatTime(s.now().Add(-s.ttl)))
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("count nationalities: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			nationality string
			n           int
		)
		if err := rows.Scan(&nationality, &n); err != nil {
			return nil, fmt.Errorf("scan nationality count: %w", err)
		}
		counts[nationality] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate nationality counts: %w", err)
	}
	return counts, nil
}
