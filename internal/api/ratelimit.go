package api

import (
	"net"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// rateLimitBatch rejects callers that exceed the per-IP batch budget with 429.
func (s *Server) rateLimitBatch(ctx huma.Context, next func(huma.Context)) {
	if s.batchRateLimiter == nil {
		next(ctx)
		return
	}

	key := clientIP(ctx.RemoteAddr())
	if !s.batchRateLimiter.Allow(key) {
		s.logger.Warn("Rate limit exceeded",
			"ip", key,
			"path", ctx.URL().Path,
		)
		_ = huma.WriteErr(s.api, ctx, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return
	}

	next(ctx)
}

// clientIP strips the port from a remote address. middleware.RealIP has
// already applied X-Forwarded-For and X-Real-IP.
func clientIP(remoteAddr string) string {
	if host, _, err := net.SplitHostPort(remoteAddr); err == nil {
		return host
	}
	return remoteAddr
}
