package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.ObserveLookup(SourceCache)
	m.ObserveLookup(SourceCache)
	m.ObserveLookup(SourceWikidata)
	m.IncUnmapped("Ruritania")

	assert.InDelta(t, 2, testutil.ToFloat64(m.AuthorLookups.WithLabelValues(SourceCache)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.AuthorLookups.WithLabelValues(SourceWikidata)), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.AuthorLookups.WithLabelValues(SourceError)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.UnmappedNationalities), 0)
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	a, b := New(), New()
	a.ObserveLookup(SourceCache)

	assert.InDelta(t, 0, testutil.ToFloat64(b.AuthorLookups.WithLabelValues(SourceCache)), 0)
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveBatch(3)
	m.ObserveWikidata(time.Now(), nil)
	m.ObserveWikidata(time.Now(), errors.New("timeout"))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "georeads_author_batch_size_count 1")
	assert.Contains(t, string(body), `georeads_wikidata_request_seconds_count{outcome="error"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
