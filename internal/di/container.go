// Package di provides dependency injection configuration for the GeoReads API server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/georeads/georeads/internal/config"
	"github.com/georeads/georeads/internal/di/providers"
	"github.com/georeads/georeads/internal/logger"
	"github.com/georeads/georeads/internal/metrics"
	"github.com/georeads/georeads/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()
	Register(injector)
	return injector
}

// Register installs every provider on injector. Tests replace the
// configuration with do.OverrideValue.
func Register(injector do.Injector) {
	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideMetrics)

	// Storage layer
	do.Provide(injector, providers.ProvideStore)

	// Lookup layer
	do.Provide(injector, providers.ProvideWikidataClient)

	// Business services
	do.Provide(injector, providers.ProvideNationalityService)
	do.Provide(injector, providers.ProvideCountsService)

	// Server
	do.Provide(injector, providers.ProvideAPIServer)
	do.Provide(injector, providers.ProvideHTTPServer)
}

// Bootstrap initializes all services, starting the HTTP server last.
func Bootstrap(injector do.Injector) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*metrics.Metrics](injector)

	if _, err := do.Invoke[*providers.StoreHandle](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*providers.WikidataClientHandle](injector); err != nil {
		return err
	}

	_ = do.MustInvoke[*service.NationalityService](injector)
	_ = do.MustInvoke[*service.CountsService](injector)

	if _, err := do.Invoke[*providers.HTTPServerHandle](injector); err != nil {
		return err
	}
	return nil
}
