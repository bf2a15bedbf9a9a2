package sqlite

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T, ttl time.Duration) *Store {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s, err := Open(dbPath, ttl, logger)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen(t *testing.T) {
	s := newTestStore(t, 0)

	var journalMode string
	if err := s.db.QueryRow("PRAGMA journal_mode").Scan(&journalMode); err != nil {
		t.Fatalf("query journal_mode: %v", err)
	}
	if journalMode != "wal" {
		t.Errorf("expected wal, got %s", journalMode)
	}

	var name string
	err := s.db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='authors'").Scan(&name)
	if err != nil {
		t.Errorf("table authors not found: %v", err)
	}

	if err := s.Ping(context.Background()); err != nil {
		t.Errorf("ping: %v", err)
	}
}

func TestOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(dbPath, 0, nil)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := s.SetNationality(context.Background(), "Jane Austen", "Kingdom of Great Britain"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	// Re-open should work (schema is idempotent) and keep the data.
	s2, err := Open(dbPath, 0, nil)
	if err != nil {
		t.Fatalf("re-open store: %v", err)
	}
	defer s2.Close()

	got, err := s2.GetNationality(context.Background(), "Jane Austen")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Nationality != "Kingdom of Great Britain" {
		t.Errorf("expected persisted nationality, got %+v", got)
	}
}

func TestNationalityRoundTrip(t *testing.T) {
	s := newTestStore(t, 0)
	ctx := context.Background()

	got, err := s.GetNationality(ctx, "Chinua Achebe")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if got != nil {
		t.Fatalf("expected miss, got %+v", got)
	}

	if err := s.SetNationality(ctx, "Chinua Achebe", "Colony and Protectorate of Nigeria"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.SetNationality(ctx, "Chinua Achebe", "Nigeria"); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err = s.GetNationality(ctx, "Chinua Achebe")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Nationality != "Nigeria" {
		t.Fatalf("expected Nigeria, got %+v", got)
	}

	if err := s.DeleteNationality(ctx, "Chinua Achebe"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, err = s.GetNationality(ctx, "Chinua Achebe")
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if got != nil {
		t.Errorf("expected miss after delete, got %+v", got)
	}
}

func TestSetNationality_SkipsUnknown(t *testing.T) {
	s := newTestStore(t, 0)
	ctx := context.Background()

	if err := s.SetNationality(ctx, "Anonymous", "Unknown"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := s.GetNationality(ctx, "Anonymous")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Errorf("unknown should not be cached, got %+v", got)
	}
}

func TestNationalityCounts_TTL(t *testing.T) {
	s := newTestStore(t, 24*time.Hour)
	ctx := context.Background()

	clock := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	if err := s.SetNationality(ctx, "Old Author", "France"); err != nil {
		t.Fatalf("set: %v", err)
	}

	clock = clock.Add(48 * time.Hour)
	for name, nat := range map[string]string{
		"Victor Hugo":     "France",
		"Albert Camus":    "France",
		"Haruki Murakami": "Japan",
	} {
		if err := s.SetNationality(ctx, name, nat); err != nil {
			t.Fatalf("set %s: %v", name, err)
		}
	}

	counts, err := s.NationalityCounts(ctx)
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if counts["France"] != 2 || counts["Japan"] != 1 || len(counts) != 2 {
		t.Errorf("unexpected counts: %v", counts)
	}

	got, err := s.GetNationality(ctx, "Old Author")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Errorf("expected expired entry to miss, got %+v", got)
	}
}
