// Package pipeline ties the reading-log stages together: it resolves author
// nationalities through the lookup service and tracks one user's session.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/georeads/georeads/internal/country"
	"github.com/georeads/georeads/internal/domain"
)

// Lookup resolves raw nationality labels for a batch of authors.
// *lookup.Client implements it.
type Lookup interface {
	Lookup(ctx context.Context, names []domain.AuthorName) ([]domain.NationalityRecord, error)
}

// Outcome is the result of one successful resolution.
type Outcome struct {
	Records  []domain.NormalizedNationalityRecord
	Unmapped []string // labels the normalizer passed through, first-seen order
	Cached   int      // records the backend served from its cache
}

// Resolver performs the lookup round-trip and normalizes the returned labels.
// It holds no per-call state and may be reused.
type Resolver struct {
	lookup     Lookup
	logger     *slog.Logger
	onUnmapped country.UnmappedHook
}

// NewResolver creates a resolver backed by lookup.
func NewResolver(lookup Lookup, logger *slog.Logger) *Resolver {
	return &Resolver{lookup: lookup, logger: logger}
}

// OnUnmapped installs a hook for every label missing from the alias table.
func (r *Resolver) OnUnmapped(hook country.UnmappedHook) {
	r.onUnmapped = hook
}

// Resolve looks up authors in a single request and normalizes the result.
// An empty author list returns an empty outcome without a lookup. On error
// no records are returned.
func (r *Resolver) Resolve(ctx context.Context, authors []domain.AuthorName) (Outcome, error) {
	if len(authors) == 0 {
		return Outcome{Records: []domain.NormalizedNationalityRecord{}}, nil
	}

	raw, err := r.lookup.Lookup(ctx, authors)
	if err != nil {
		return Outcome{}, err
	}

	normalizer := country.NewNormalizer(country.NewDiagnostics(), r.logger)
	if r.onUnmapped != nil {
		normalizer.OnUnmapped(r.onUnmapped)
	}

	cached := 0
	for _, rec := range raw {
		if rec.Cached {
			cached++
		}
	}

	return Outcome{
		Records:  normalizer.NormalizeRecords(raw),
		Unmapped: normalizer.Diagnostics().Unmapped(),
		Cached:   cached,
	}, nil
}
