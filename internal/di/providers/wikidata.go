package providers

import (
	"github.com/samber/do/v2"

	"github.com/georeads/georeads/internal/config"
	"github.com/georeads/georeads/internal/logger"
	"github.com/georeads/georeads/internal/metrics"
	"github.com/georeads/georeads/internal/wikidata"
)

// WikidataClientHandle wraps the Wikidata client with shutdown capability.
type WikidataClientHandle struct {
	*wikidata.Client
}

// Shutdown implements do.Shutdownable.
func (h *WikidataClientHandle) Shutdown() error {
	h.Client.Close()
	return nil
}

// ProvideWikidataClient provides the rate-limited SPARQL client.
func ProvideWikidataClient(i do.Injector) (*WikidataClientHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	m := do.MustInvoke[*metrics.Metrics](i)

	client, err := wikidata.New(wikidata.Config{
		Endpoint:  cfg.Wikidata.Endpoint,
		UserAgent: cfg.Wikidata.UserAgent,
		RPS:       cfg.Wikidata.RPS,
		Timeout:   cfg.Wikidata.Timeout,
	}, log.WithComponent("wikidata"))
	if err != nil {
		return nil, err
	}
	client.Observe(m.ObserveWikidata)

	log.Info("Wikidata client initialized",
		"endpoint", cfg.Wikidata.Endpoint,
		"rps", cfg.Wikidata.RPS,
	)

	return &WikidataClientHandle{Client: client}, nil
}
