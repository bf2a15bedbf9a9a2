// Package api provides the HTTP API server and handlers for the GeoReads lookup backend.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/georeads/georeads/internal/metrics"
	"github.com/georeads/georeads/internal/ratelimit"
	"github.com/georeads/georeads/internal/service"
	"github.com/georeads/georeads/internal/store"
)

// Services groups the business logic services used by the API server.
type Services struct {
	Nationality *service.NationalityService
	Counts      *service.CountsService
}

// Options tunes the HTTP surface.
type Options struct {
	// CORSAllowedOrigins lists the frontend origins allowed to call the API.
	CORSAllowedOrigins []string
	// RateLimitRPS bounds batch requests per client IP; 0 disables limiting.
	RateLimitRPS   float64
	RateLimitBurst int
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	store    store.NationalityCache
	services *Services
	metrics  *metrics.Metrics
	router   *chi.Mux
	api      huma.API
	logger   *slog.Logger

	batchRateLimiter *ratelimit.KeyedRateLimiter
}

// NewServer creates a new HTTP server with all routes configured.
// store and m may be nil.
func NewServer(st store.NationalityCache, services *Services, m *metrics.Metrics, opts Options, logger *slog.Logger) *Server {
	router := chi.NewRouter()

	s := &Server{
		store:    st,
		services: services,
		metrics:  m,
		router:   router,
		logger:   logger,
	}
	if opts.RateLimitRPS > 0 {
		burst := opts.RateLimitBurst
		if burst < 1 {
			burst = 1
		}
		s.batchRateLimiter = ratelimit.New(opts.RateLimitRPS, burst)
	}

	s.setupMiddleware(opts)

	humaConfig := huma.DefaultConfig("GeoReads API", "1.0.0")
	humaConfig.Info.Description = "Resolves author nationalities against Wikidata and reports per-country counts."
	s.api = humachi.New(router, humaConfig)
	RegisterErrorHandler()

	s.registerHealthRoutes()
	s.registerNationalityRoutes()
	if m != nil {
		router.Handle("/metrics", m.Handler())
	}

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// API exposes the huma API, mainly for OpenAPI generation.
func (s *Server) API() huma.API {
	return s.api
}

// Close releases background resources.
func (s *Server) Close() {
	if s.batchRateLimiter != nil {
		s.batchRateLimiter.Stop()
	}
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware(opts Options) {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(requestLogger(s.logger))
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
}

// requestLogger logs one line per request at DEBUG, or WARN for 5xx.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			level := slog.LevelDebug
			if ww.Status() >= http.StatusInternalServerError {
				level = slog.LevelWarn
			}
			logger.Log(r.Context(), level, "http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
