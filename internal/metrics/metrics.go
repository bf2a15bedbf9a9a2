// Package metrics exposes Prometheus instrumentation for the lookup backend.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Lookup sources.
const (
	SourceCache    = "cache"
	SourceWikidata = "wikidata"
	SourceError    = "error"
)

// Metrics tracks batch sizes, where nationalities came from, Wikidata
// latency and gaps in the country alias table. Each instance owns its
// registry so tests and multiple servers do not collide.
type Metrics struct {
	registry *prometheus.Registry

	AuthorLookups         *prometheus.CounterVec
	BatchSize             prometheus.Histogram
	WikidataRequest       *prometheus.HistogramVec
	UnmappedNationalities prometheus.Counter
}

// New creates a Metrics instance with all collectors registered, along with
// the Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		AuthorLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "georeads_author_lookups_total",
			Help: "Author nationality lookups by source (cache, wikidata, error)",
		}, []string{"source"}),
		BatchSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "georeads_author_batch_size",
			Help:    "Number of distinct names per author_batch request",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
		}),
		WikidataRequest: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "georeads_wikidata_request_seconds",
			Help:    "Duration of Wikidata SPARQL requests by outcome",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"outcome"}),
		UnmappedNationalities: factory.NewCounter(prometheus.CounterOpts{
			Name: "georeads_unmapped_nationalities_total",
			Help: "Nationality labels not covered by the country alias table",
		}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveLookup counts one resolved name.
func (m *Metrics) ObserveLookup(source string) {
	m.AuthorLookups.WithLabelValues(source).Inc()
}

// ObserveBatch records the size of an incoming batch.
func (m *Metrics) ObserveBatch(size int) {
	m.BatchSize.Observe(float64(size))
}

// ObserveWikidata records a Wikidata request that started at start.
// Call with time.Now() at the start of the request.
func (m *Metrics) ObserveWikidata(start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.WikidataRequest.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
}

// IncUnmapped counts one label missing from the alias table. Its signature
// matches country.UnmappedHook.
func (m *Metrics) IncUnmapped(string) {
	m.UnmappedNationalities.Inc()
}
