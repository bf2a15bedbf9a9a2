package providers

import (
	"github.com/samber/do/v2"

	"github.com/georeads/georeads/internal/config"
	"github.com/georeads/georeads/internal/logger"
	"github.com/georeads/georeads/internal/metrics"
	"github.com/georeads/georeads/internal/service"
)

// ProvideNationalityService provides the batch nationality resolver.
func ProvideNationalityService(i do.Injector) (*service.NationalityService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	m := do.MustInvoke[*metrics.Metrics](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	clientHandle := do.MustInvoke[*WikidataClientHandle](i)

	return service.NewNationalityService(
		clientHandle.Client,
		storeHandle.NationalityCache,
		log.WithComponent("nationality"),
		service.WithMaxBatch(cfg.Lookup.MaxBatch),
		service.WithConcurrency(cfg.Lookup.Concurrency),
		// Leaves room for the rate limiter wait ahead of the request itself.
		service.WithFetchTimeout(3*cfg.Wikidata.Timeout),
		service.WithMetrics(m),
	), nil
}

// ProvideCountsService provides the per-country counts service.
func ProvideCountsService(i do.Injector) (*service.CountsService, error) {
	log := do.MustInvoke[*logger.Logger](i)
	m := do.MustInvoke[*metrics.Metrics](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)

	return service.NewCountsService(storeHandle.NationalityCache, m, log.WithComponent("counts")), nil
}
