package providers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/samber/do/v2"

	"github.com/georeads/georeads/internal/api"
	"github.com/georeads/georeads/internal/config"
	"github.com/georeads/georeads/internal/logger"
	"github.com/georeads/georeads/internal/metrics"
	"github.com/georeads/georeads/internal/service"
)

// APIServerHandle wraps the router with shutdown capability.
type APIServerHandle struct {
	*api.Server
}

// Shutdown implements do.Shutdownable.
func (h *APIServerHandle) Shutdown() error {
	h.Close()
	return nil
}

// ProvideAPIServer provides the routed HTTP handler.
func ProvideAPIServer(i do.Injector) (*APIServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	m := do.MustInvoke[*metrics.Metrics](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)

	services := &api.Services{
		Nationality: do.MustInvoke[*service.NationalityService](i),
		Counts:      do.MustInvoke[*service.CountsService](i),
	}

	handler := api.NewServer(storeHandle.NationalityCache, services, m, api.Options{
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		RateLimitRPS:       cfg.Server.RateLimitRPS,
		RateLimitBurst:     cfg.Server.RateLimitBurst,
	}, log.WithComponent("api"))

	return &APIServerHandle{Server: handler}, nil
}

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
	shutdownTimeout time.Duration
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	timeout := h.shutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer provides the HTTP server and starts it in the background.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	handler := do.MustInvoke[*APIServerHandle](i)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start in background
	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error", "error", err)
		}
	}()

	return &HTTPServerHandle{Server: srv, shutdownTimeout: cfg.Server.ShutdownTimeout}, nil
}
