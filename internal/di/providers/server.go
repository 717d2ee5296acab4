package providers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/classroomhub/hub-server/internal/api"
	"github.com/classroomhub/hub-server/internal/config"
	"github.com/classroomhub/hub-server/internal/logger"
	"github.com/classroomhub/hub-server/internal/service"
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
	apiServer *api.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := h.Server.Shutdown(ctx)
	h.apiServer.Close()
	return err
}

// ProvideHTTPServer provides the HTTP server.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	services := &api.Services{
		Comment:  do.MustInvoke[*service.CommentService](i),
		Seed:     do.MustInvoke[*service.SeedService](i),
		Render:   do.MustInvoke[*service.RenderService](i),
		Assist:   do.MustInvoke[*service.AssistService](i),
		Settings: do.MustInvoke[*service.SettingsService](i),
	}

	apiServer := api.NewServer(cfg, services, log.Logger)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      apiServer,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server failed", "error", err)
		}
	}()

	return &HTTPServerHandle{Server: httpServer, apiServer: apiServer}, nil
}
