package providers

import (
	"fmt"

	"github.com/samber/do/v2"

	"github.com/classroomhub/hub-server/internal/config"
	"github.com/classroomhub/hub-server/internal/logger"
	"github.com/classroomhub/hub-server/internal/store"
	"github.com/classroomhub/hub-server/internal/store/badger"
	"github.com/classroomhub/hub-server/internal/store/sqlite"
)

// StoreHandle wraps the template store with Shutdownable for DI lifecycle management.
type StoreHandle struct {
	Store store.TemplateStore
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Store.Close()
}

// ProvideStore provides the template store selected by configuration.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	switch cfg.Store.Backend {
	case config.BackendSQLite:
		st, err := sqlite.Open(cfg.Store.Path, log.Logger)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		log.Info("Template store ready", "backend", "sqlite", "shape", st.Shape())
		return &StoreHandle{Store: st}, nil

	case config.BackendBadger:
		st, err := badger.Open(cfg.Store.Path, log.Logger)
		if err != nil {
			return nil, fmt.Errorf("opening badger store: %w", err)
		}
		log.Info("Template store ready", "backend", "badger")
		return &StoreHandle{Store: st}, nil

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
