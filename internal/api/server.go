// Package api provides the HTTP API server and handlers for the Classroom
// Hub comment bank.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/classroomhub/hub-server/internal/config"
	"github.com/classroomhub/hub-server/internal/ratelimit"
	"github.com/classroomhub/hub-server/internal/service"
)

// Services bundles the service dependencies handlers need.
type Services struct {
	Comment  *service.CommentService
	Seed     *service.SeedService
	Render   *service.RenderService
	Assist   *service.AssistService
	Settings *service.SettingsService
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	services      *Services
	router        *chi.Mux
	api           huma.API
	logger        *slog.Logger
	assistLimiter *ratelimit.KeyedRateLimiter
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(cfg *config.Config, services *Services, logger *slog.Logger) *Server {
	s := &Server{
		services:      services,
		router:        chi.NewRouter(),
		logger:        logger,
		assistLimiter: ratelimit.PerMinute(cfg.Assist.RatePerMinute, cfg.Assist.RateBurst),
	}

	s.setupMiddleware()

	humaConfig := huma.DefaultConfig(cfg.Server.Name, "1.0.0")
	s.api = humachi.New(s.router, humaConfig)
	RegisterErrorHandler()

	s.registerHealthRoutes()
	s.registerCommentRoutes()
	s.registerRenderRoutes()
	s.registerSearchRoutes()
	s.registerAssistRoutes()
	s.registerSettingsRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close releases server-held resources.
func (s *Server) Close() {
	s.assistLimiter.Stop()
}

// setupMiddleware configures the middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	s.router.Use(s.assistRateLimit)
}
