package providers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/samber/do/v2"

	"github.com/georeads/georeads/internal/config"
	"github.com/georeads/georeads/internal/logger"
	"github.com/georeads/georeads/internal/store"
	"github.com/georeads/georeads/internal/store/sqlite"
)

// StoreHandle wraps the nationality cache with shutdown capability.
type StoreHandle struct {
	store.NationalityCache
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore provides the nationality cache for the configured backend.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	if err := os.MkdirAll(cfg.Store.DataPath, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	var (
		cache store.NationalityCache
		path  string
		err   error
	)
	switch cfg.Store.Backend {
	case config.BackendSQLite:
		path = filepath.Join(cfg.Store.DataPath, "georeads.db")
		cache, err = sqlite.Open(path, cfg.Store.CacheTTL, log.WithComponent("store"))
	default:
		path = filepath.Join(cfg.Store.DataPath, "badger")
		cache, err = store.New(path, cfg.Store.CacheTTL, log.WithComponent("store"))
	}
	if err != nil {
		return nil, err
	}

	log.Info("Database initialized", "backend", cfg.Store.Backend, "path", path)

	return &StoreHandle{NationalityCache: cache}, nil
}
