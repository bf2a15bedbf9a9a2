// Package lookup is the client side of the batched nationality lookup service.
package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/georeads/georeads/internal/authors"
	"github.com/georeads/georeads/internal/domain"
)

const (
	defaultTimeout = 2 * time.Minute

	batchPath = "/author_batch"

	// maxErrorBody caps how much of an error response is kept for logging.
	maxErrorBody = 512

	// defaultMaxBody caps a response body; a full batch answer is far smaller.
	defaultMaxBody = 8 << 20
)

// Client issues batched nationality lookups against the GeoReads API.
type Client struct {
	http    *http.Client
	baseURL string
	logger  *slog.Logger
	maxBody int64
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// New creates a client for the API rooted at baseURL
// (e.g. "http://localhost:8000/api").
func New(baseURL string, logger *slog.Logger, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}

	c := &Client{
		http:    &http.Client{Timeout: defaultTimeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
		maxBody: defaultMaxBody,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Lookup resolves nationalities for all names in one request.
//
// An empty batch returns immediately without touching the network. On
// success the result holds exactly one record per requested name in request
// order; names the service did not answer for get an empty nationality.
// Any failure returns no records.
func (c *Client) Lookup(ctx context.Context, names []domain.AuthorName) ([]domain.NationalityRecord, error) {
	if len(names) == 0 {
		return []domain.NationalityRecord{}, nil
	}

	reqURL := c.baseURL + batchPath + "?names=" + encodeComponent(strings.Join(authors.Strings(names), ","))

	body, status, err := c.doRequest(ctx, reqURL)
	if err != nil {
		return nil, wrapError("author_batch", status, len(names), err)
	}

	var resp batchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, wrapError("author_batch", status, len(names), fmt.Errorf("%w: %v", ErrMalformedResponse, err))
	}
	if resp.Results == nil {
		return nil, wrapError("author_batch", status, len(names), fmt.Errorf("%w: missing results", ErrMalformedResponse))
	}

	records, cachedCount := matchResults(names, resp.Results)

	c.logger.Debug("nationality batch resolved",
		"names", len(names),
		"returned", len(resp.Results),
		"cached", cachedCount,
	)

	return records, nil
}

// doRequest performs the GET and returns the body of a 2xx response.
func (c *Client) doRequest(ctx context.Context, fullURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: create request: %v", ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "GeoReads/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%w: read response: %v", ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		c.logger.Debug("nationality batch rejected",
			"status", resp.StatusCode,
			"body", string(body),
		)
		return nil, resp.StatusCode, fmt.Errorf("%w %d", ErrStatus, resp.StatusCode)
	}
	if int64(len(body)) > c.maxBody {
		return nil, resp.StatusCode, fmt.Errorf("%w: body exceeds %d bytes", ErrMalformedResponse, c.maxBody)
	}

	return body, resp.StatusCode, nil
}

// matchResults pairs requested names with returned records. Unrequested
// names are ignored and the first record for a name wins.
func matchResults(names []domain.AuthorName, results []rawResult) ([]domain.NationalityRecord, int) {
	byName := make(map[string]rawResult, len(results))
	for _, r := range results {
		if _, dup := byName[r.Name]; !dup {
			byName[r.Name] = r
		}
	}

	cached := 0
	records := make([]domain.NationalityRecord, len(names))
	for i, n := range names {
		r, ok := byName[string(n)]
		records[i] = domain.NationalityRecord{Name: string(n)}
		if !ok {
			continue
		}
		records[i].Nationality = r.Nationality
		records[i].Cached = r.Cached
		if r.Cached {
			cached++
		}
	}
	return records, cached
}

// encodeComponent escapes s like JavaScript's encodeURIComponent, so spaces
// become %20 rather than +.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Wire types.

type batchResponse struct {
	Results []rawResult `json:"results"`
}

type rawResult struct {
	Name        string `json:"name"`
	Nationality string `json:"nationality"`
	Cached      bool   `json:"cached"`
}
