package providers

import (
	"github.com/samber/do/v2"

	"github.com/classroomhub/hub-server/internal/config"
	"github.com/classroomhub/hub-server/internal/logger"
	"github.com/classroomhub/hub-server/internal/settings"
)

// SettingsWatcherHandle wraps the advisory settings file watcher with
// Shutdownable for DI lifecycle management. Watcher is nil when watching
// is disabled or no settings file is configured.
type SettingsWatcherHandle struct {
	Watcher *settings.Watcher
}

// Shutdown implements do.Shutdownable.
func (h *SettingsWatcherHandle) Shutdown() error {
	if h.Watcher == nil {
		return nil
	}
	return h.Watcher.Close()
}

// ProvideSettingsProvider provides the tenant settings source.
func ProvideSettingsProvider(i do.Injector) (settings.Provider, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	return settings.NewFileProvider(cfg.Settings.FilePath, log.Logger), nil
}

// ProvideSettingsWatcher provides the advisory watcher over the settings file.
func ProvideSettingsWatcher(i do.Injector) (*SettingsWatcherHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	if !cfg.Settings.Watch || cfg.Settings.FilePath == "" {
		return &SettingsWatcherHandle{}, nil
	}

	provider := do.MustInvoke[settings.Provider](i)
	fileProvider, ok := provider.(*settings.FileProvider)
	if !ok {
		return &SettingsWatcherHandle{}, nil
	}

	w, err := settings.NewWatcher(fileProvider, cfg.Settings.FilePath, log.Logger)
	if err != nil {
		// The watcher is advisory only, so a failure to start it should
		// not take the server down.
		log.Warn("failed to start settings watcher", "error", err)
		return &SettingsWatcherHandle{}, nil
	}

	log.Info("Watching settings file", "path", cfg.Settings.FilePath)
	return &SettingsWatcherHandle{Watcher: w}, nil
}
