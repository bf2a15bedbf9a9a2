// Package store persists resolved author nationalities. The badger-backed
// Store lives here; package sqlite provides an alternative backend.
package store

import (
	"context"
	"strings"
	"time"

	"github.com/georeads/georeads/internal/domain"
)

// CachedNationality is a nationality label remembered for an author.
type CachedNationality struct {
	Nationality string    `json:"nationality"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// Expired reports whether the entry is older than ttl. A zero ttl never expires.
func (c *CachedNationality) Expired(ttl time.Duration, now time.Time) bool {
	return ttl > 0 && now.Sub(c.FetchedAt) > ttl
}

// NationalityCache remembers author nationalities between batches.
type NationalityCache interface {
	// GetNationality returns nil, nil on a miss or an expired entry.
	GetNationality(ctx context.Context, name string) (*CachedNationality, error)
	// SetNationality stores a label. Labels ShouldCache rejects are ignored.
	SetNationality(ctx context.Context, name, nationality string) error
	DeleteNationality(ctx context.Context, name string) error
	// NationalityCounts returns the number of cached authors per raw label.
	NationalityCounts(ctx context.Context) (map[string]int, error)
	Ping(ctx context.Context) error
	Close() error
}

// ShouldCache reports whether a label is worth remembering. "Unknown" is
// not cached so a later batch can try Wikidata again.
func ShouldCache(nationality string) bool {
	n := strings.TrimSpace(nationality)
	return n != "" && !strings.EqualFold(n, domain.UnknownNationality)
}
