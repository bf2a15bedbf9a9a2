// Package wikidata looks up an author's country of citizenship through the
// Wikidata SPARQL endpoint.
package wikidata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/georeads/georeads/internal/domain"
	"github.com/georeads/georeads/internal/ratelimit"
)

const (
	// DefaultEndpoint is the public Wikidata Query Service.
	DefaultEndpoint = "https://query.wikidata.org/sparql"

	// One request per 0.5 s keeps well under the public endpoint's limits.
	defaultRPS   = 2.0
	defaultBurst = 1

	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "GeoReads/1.0 (https://github.com/georeads/georeads)"

	sparqlResultsJSON = "application/sparql-results+json"
)

var tracer = otel.Tracer("github.com/georeads/georeads/internal/wikidata")

// Observer is notified of every completed SPARQL request.
type Observer func(start time.Time, err error)

// Config configures a Client. Zero fields take defaults.
type Config struct {
	Endpoint  string
	UserAgent string
	RPS       float64
	Timeout   time.Duration
}

// Client is a rate-limited SPARQL client.
type Client struct {
	http      *http.Client
	limiter   *ratelimit.KeyedRateLimiter
	endpoint  string
	limitKey  string
	userAgent string
	logger    *slog.Logger
	observe   Observer
}

// New creates a client for cfg.Endpoint.
func New(cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.RPS <= 0 {
		cfg.RPS = defaultRPS
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	u, err := url.Parse(cfg.Endpoint)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("invalid wikidata endpoint %q", cfg.Endpoint)
	}

	return &Client{
		http:      &http.Client{Timeout: cfg.Timeout},
		limiter:   ratelimit.New(cfg.RPS, defaultBurst),
		endpoint:  cfg.Endpoint,
		limitKey:  u.Host,
		userAgent: cfg.UserAgent,
		logger:    logger,
	}, nil
}

// Observe installs a hook called after every SPARQL request.
func (c *Client) Observe(fn Observer) {
	c.observe = fn
}

// Close releases resources held by the client.
func (c *Client) Close() {
	c.limiter.Stop()
}

// CountryOfCitizenship returns the English label of the country of
// citizenship of a human whose English label is exactly name. It returns
// domain.UnknownNationality when Wikidata has no match.
func (c *Client) CountryOfCitizenship(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", wrapError("citizenship", name, ErrEmptyName)
	}

	ctx, span := tracer.Start(ctx, "wikidata.CountryOfCitizenship",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("author.name", name)),
	)
	defer span.End()

	start := time.Now()
	label, err := c.query(ctx, name)
	if c.observe != nil {
		c.observe(start, err)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "sparql query failed")
		return "", wrapError("citizenship", name, err)
	}

	span.SetAttributes(attribute.String("author.nationality", label))
	return label, nil
}

func (c *Client) query(ctx context.Context, name string) (string, error) {
	if err := c.limiter.Wait(ctx, c.limitKey); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	q := url.Values{}
	q.Set("query", citizenshipQuery(name))
	q.Set("format", "json")

	body, err := c.doRequest(ctx, c.endpoint+"?"+q.Encode())
	if err != nil {
		return "", err
	}

	var resp sparqlResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: %v", ErrParse, err)
	}

	for _, b := range resp.Results.Bindings {
		if v := b.CountryLabel.Value; v != "" {
			return v, nil
		}
	}
	return domain.UnknownNationality, nil
}

func (c *Client) doRequest(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", sparqlResultsJSON)
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug("wikidata request", "endpoint", c.endpoint)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return body, nil
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode == http.StatusBadRequest:
		return nil, ErrBadRequest
	case resp.StatusCode >= 500:
		return nil, ErrServer
	default:
		return nil, fmt.Errorf("%w %d", ErrStatus, resp.StatusCode)
	}
}
