// Package di provides dependency injection configuration for the Classroom Hub server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/classroomhub/hub-server/internal/ai"
	"github.com/classroomhub/hub-server/internal/comment"
	"github.com/classroomhub/hub-server/internal/config"
	"github.com/classroomhub/hub-server/internal/di/providers"
	"github.com/classroomhub/hub-server/internal/logger"
	"github.com/classroomhub/hub-server/internal/service"
	"github.com/classroomhub/hub-server/internal/settings"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Storage layer
	do.Provide(injector, providers.ProvideStore)

	// Search layer
	do.Provide(injector, providers.ProvideSearchIndex)

	// Settings layer
	do.Provide(injector, providers.ProvideSettingsProvider)
	do.Provide(injector, providers.ProvideSettingsWatcher)

	// Assist layer
	do.Provide(injector, providers.ProvideGenerator)

	// Business services
	do.Provide(injector, providers.ProvideEmojiMap)
	do.Provide(injector, providers.ProvideCommentService)
	do.Provide(injector, providers.ProvideSeedService)
	do.Provide(injector, providers.ProvideRenderService)
	do.Provide(injector, providers.ProvideAssistService)
	do.Provide(injector, providers.ProvideSettingsService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	// Invoke core services to trigger initialization
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*providers.SearchIndexHandle](injector)
	_ = do.MustInvoke[settings.Provider](injector)
	_ = do.MustInvoke[*providers.SettingsWatcherHandle](injector)
	_ = do.MustInvoke[ai.Generator](injector)
	_ = do.MustInvoke[comment.EmojiMap](injector)

	// Business services
	_ = do.MustInvoke[*service.CommentService](injector)
	_ = do.MustInvoke[*service.SeedService](injector)
	_ = do.MustInvoke[*service.RenderService](injector)
	_ = do.MustInvoke[*service.AssistService](injector)
	_ = do.MustInvoke[*service.SettingsService](injector)

	// Server
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	// Fill the in-memory search index from the store
	providers.WarmSearchIndex(injector)

	return nil
}
