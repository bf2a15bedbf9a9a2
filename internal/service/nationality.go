// Package service holds the lookup backend's business logic.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/georeads/georeads/internal/domain"
	domainerrors "github.com/georeads/georeads/internal/errors"
	"github.com/georeads/georeads/internal/id"
	"github.com/georeads/georeads/internal/metrics"
)

const (
	// DefaultMaxBatch bounds the number of names in one batch.
	DefaultMaxBatch = 500
	// DefaultConcurrency bounds parallel Wikidata lookups per batch.
	DefaultConcurrency = 4
	// DefaultFetchTimeout bounds one shared Wikidata lookup, which outlives
	// the request that started it.
	DefaultFetchTimeout = 30 * time.Second
)

var tracer = otel.Tracer("github.com/georeads/georeads/internal/service")

// NationalityService resolves author nationalities, cache first.
type NationalityService struct {
	source      NationalitySource
	store       NationalityStore
	metrics     *metrics.Metrics
	logger      *slog.Logger
	maxBatch     int
	concurrency  int
	fetchTimeout time.Duration

	inflight singleflight.Group
}

// NationalityOption configures a NationalityService.
type NationalityOption func(*NationalityService)

// WithMaxBatch overrides DefaultMaxBatch.
func WithMaxBatch(n int) NationalityOption {
	return func(s *NationalityService) {
		if n > 0 {
			s.maxBatch = n
		}
	}
}

// WithConcurrency overrides DefaultConcurrency.
func WithConcurrency(n int) NationalityOption {
	return func(s *NationalityService) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithFetchTimeout overrides DefaultFetchTimeout.
func WithFetchTimeout(d time.Duration) NationalityOption {
	return func(s *NationalityService) {
		if d > 0 {
			s.fetchTimeout = d
		}
	}
}

// WithMetrics records lookups into m.
func WithMetrics(m *metrics.Metrics) NationalityOption {
	return func(s *NationalityService) {
		s.metrics = m
	}
}

// NewNationalityService creates a new nationality service.
func NewNationalityService(
	source NationalitySource,
	store NationalityStore,
	logger *slog.Logger,
	opts ...NationalityOption,
) *NationalityService {
	s := &NationalityService{
		source:      source,
		store:       store,
		logger:      logger,
		maxBatch:     DefaultMaxBatch,
		concurrency:  DefaultConcurrency,
		fetchTimeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MaxBatch returns the largest batch ResolveBatch accepts.
func (s *NationalityService) MaxBatch() int {
	return s.maxBatch
}

// ResolveBatch returns one record per name, in request order.
//
// A failed lookup for one name yields domain.UnknownNationality for that
// name and never fails the batch. Only validation errors and a cancelled
// context fail the whole batch.
func (s *NationalityService) ResolveBatch(ctx context.Context, names []string) ([]domain.NationalityRecord, error) {
	if len(names) == 0 {
		return nil, domainerrors.Validation("at least one author name is required")
	}
	if len(names) > s.maxBatch {
		return nil, domainerrors.Validationf("batch of %d names exceeds the limit of %d", len(names), s.maxBatch).
			WithDetails(map[string]int{"names": len(names), "max": s.maxBatch})
	}

	batchID := id.NewBatchID()
	logger := s.logger.With("batch_id", batchID)

	ctx, span := tracer.Start(ctx, "service.ResolveBatch")
	defer span.End()
	span.SetAttributes(
		attribute.String("batch.id", batchID),
		attribute.Int("batch.size", len(names)),
	)

	if s.metrics != nil {
		s.metrics.ObserveBatch(len(names))
	}

	records := make([]domain.NationalityRecord, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, name := range names {
		g.Go(func() error {
			rec, err := s.resolveOne(gctx, logger, name)
			if err != nil {
				return err
			}
			records[i] = rec
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "batch aborted")
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "nationality batch aborted")
	}

	cached := 0
	for _, r := range records {
		if r.Cached {
			cached++
		}
	}
	span.SetAttributes(attribute.Int("batch.cached", cached))

	logger.Debug("nationality batch resolved",
		"names", len(names),
		"cached", cached,
	)

	return records, nil
}

func (s *NationalityService) resolveOne(ctx context.Context, logger *slog.Logger, name string) (domain.NationalityRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.NationalityRecord{}, err
	}

	// Check cache first
	cached, err := s.store.GetNationality(ctx, name)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.NationalityRecord{}, ctxErr
		}
		logger.Warn("cache lookup failed",
			"error", err,
			"name", name,
		)
		// Continue to fetch fresh
	}
	if cached != nil {
		s.observe(metrics.SourceCache)
		return domain.NationalityRecord{Name: name, Nationality: cached.Nationality, Cached: true}, nil
	}

	// The shared fetch is detached from this caller so a cancelled request
	// cannot fail the other callers waiting on the same name.
	fetchCtx := context.WithoutCancel(ctx)
	ch := s.inflight.DoChan(name, func() (any, error) {
		fctx, cancel := context.WithTimeout(fetchCtx, s.fetchTimeout)
		defer cancel()
		return s.fetch(fctx, logger, name)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return domain.NationalityRecord{}, ctx.Err()
	case res = <-ch:
	}

	if res.Err != nil {
		s.observe(metrics.SourceError)
		logger.Warn("nationality lookup failed",
			"error", res.Err,
			"name", name,
			"shared", res.Shared,
		)
		return domain.NationalityRecord{Name: name, Nationality: domain.UnknownNationality}, nil
	}

	s.observe(metrics.SourceWikidata)
	return domain.NationalityRecord{Name: name, Nationality: res.Val.(string)}, nil
}

// fetch asks the source and caches a usable answer.
func (s *NationalityService) fetch(ctx context.Context, logger *slog.Logger, name string) (string, error) {
	logger.Debug("fetching nationality from Wikidata", "name", name)

	nationality, err := s.source.CountryOfCitizenship(ctx, name)
	if err != nil {
		return "", fmt.Errorf("country of citizenship for %q: %w", name, err)
	}

	if err := s.store.SetNationality(ctx, name, nationality); err != nil {
		logger.Warn("failed to cache nationality",
			"error", err,
			"name", name,
		)
		// Don't fail the request
	}
	return nationality, nil
}

func (s *NationalityService) observe(source string) {
	if s.metrics != nil {
		s.metrics.ObserveLookup(source)
	}
}
