package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/georeads/georeads/internal/aggregate"
	"github.com/georeads/georeads/internal/country"
	"github.com/georeads/georeads/internal/domain"
	"github.com/georeads/georeads/internal/metrics"
)

// CountsService reports how many cached authors come from each country.
type CountsService struct {
	store   NationalityStore
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewCountsService creates a new counts service. m may be nil.
func NewCountsService(store NationalityStore, m *metrics.Metrics, logger *slog.Logger) *CountsService {
	return &CountsService{store: store, metrics: m, logger: logger}
}

// NationalityCounts returns cached author counts keyed by ISO 3166-1
// alpha-3 code. Labels that do not resolve to a coded country are dropped.
func (s *CountsService) NationalityCounts(ctx context.Context) (map[string]int, error) {
	ctx, span := tracer.Start(ctx, "service.NationalityCounts")
	defer span.End()

	raw, err := s.store.NationalityCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load nationality counts: %w", err)
	}

	normalizer := country.NewNormalizer(nil, s.logger)
	if s.metrics != nil {
		normalizer.OnUnmapped(s.metrics.IncUnmapped)
	}

	canonical := make(domain.CountryCountMap, len(raw))
	for label, n := range raw {
		name := normalizer.Normalize(label)
		if name == "" {
			continue
		}
		canonical[name] += n
	}

	byCode, missing := aggregate.ByISO3(canonical)
	if len(missing) > 0 {
		s.logger.Debug("dropping countries without an ISO code", "countries", missing)
	}
	return byCode, nil
}
