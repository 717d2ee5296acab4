package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/classroomhub/hub-server/internal/logger"
	"github.com/classroomhub/hub-server/internal/search"
	"github.com/classroomhub/hub-server/internal/service"
)

// SearchIndexHandle wraps the search index with Shutdownable for DI lifecycle management.
type SearchIndexHandle struct {
	Index *search.Index
}

// Shutdown implements do.Shutdownable.
func (h *SearchIndexHandle) Shutdown() error {
	return h.Index.Close()
}

// ProvideSearchIndex provides the in-memory full-text index.
func ProvideSearchIndex(i do.Injector) (*SearchIndexHandle, error) {
	log := do.MustInvoke[*logger.Logger](i)

	idx, err := search.NewIndex(log.Logger)
	if err != nil {
		return nil, err
	}
	return &SearchIndexHandle{Index: idx}, nil
}

// WarmSearchIndex fills the in-memory index from the store at startup.
// The index is rebuilt rather than persisted, so a failure here only
// degrades search until the next seed or rebuild.
func WarmSearchIndex(i do.Injector) {
	log := do.MustInvoke[*logger.Logger](i)
	comments := do.MustInvoke[*service.CommentService](i)

	if err := comments.RebuildIndex(context.Background()); err != nil {
		log.Warn("failed to warm search index", "error", err)
		return
	}
	handle := do.MustInvoke[*SearchIndexHandle](i)
	if n, err := handle.Index.Count(); err == nil {
		log.Info("Search index warmed", "documents", n)
	}
}
