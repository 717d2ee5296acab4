package settings

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher observes the settings file and logs changes and parse problems as
// they land. It is purely advisory: the provider re-reads the file on every
// request regardless, so the watcher exists to surface a broken edit in the
// logs immediately instead of at the next request.
type Watcher struct {
	provider *FileProvider
	path     string
	logger   *slog.Logger
	fsw      *fsnotify.Watcher
}

// NewWatcher starts watching the directory containing the settings file.
// The directory is watched rather than the file so editors that replace the
// file (write-rename) keep triggering events.
func NewWatcher(provider *FileProvider, path string, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{provider: provider, path: path, logger: logger, fsw: fsw}
	go w.run()
	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			// Re-read through the provider so parse failures are logged
			// with the same degradation the next request will see.
			if _, err := w.provider.Get(context.Background()); err == nil {
				w.logger.Info("tenant settings file changed", "path", w.path)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("settings watcher error", "error", err)
		}
	}
}
