package providers

import (
	"github.com/samber/do/v2"

	"github.com/classroomhub/hub-server/internal/ai"
	"github.com/classroomhub/hub-server/internal/comment"
	"github.com/classroomhub/hub-server/internal/config"
	"github.com/classroomhub/hub-server/internal/logger"
	"github.com/classroomhub/hub-server/internal/service"
	"github.com/classroomhub/hub-server/internal/settings"
)

// ProvideEmojiMap provides the level glyph mapping, honoring the
// configured JSON override. A broken override logs and keeps the defaults.
func ProvideEmojiMap(i do.Injector) (comment.EmojiMap, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	if cfg.Comment.LevelEmojiJSON == "" {
		return comment.DefaultEmoji(), nil
	}

	emoji, err := comment.ParseEmojiJSON(cfg.Comment.LevelEmojiJSON)
	if err != nil {
		log.Warn("invalid level emoji override, using defaults", "error", err)
		return comment.DefaultEmoji(), nil
	}
	return emoji, nil
}

// ProvideCommentService provides the comment template service.
func ProvideCommentService(i do.Injector) (*service.CommentService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	searchHandle := do.MustInvoke[*SearchIndexHandle](i)
	emoji := do.MustInvoke[comment.EmojiMap](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewCommentService(storeHandle.Store, searchHandle.Index, emoji, log.Logger), nil
}

// ProvideSeedService provides the seeding and backfill service.
func ProvideSeedService(i do.Injector) (*service.SeedService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	comments := do.MustInvoke[*service.CommentService](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewSeedService(storeHandle.Store, comments, log.Logger), nil
}

// ProvideRenderService provides the placeholder rendering service.
func ProvideRenderService(i do.Injector) (*service.RenderService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewRenderService(storeHandle.Store, log.Logger), nil
}

// ProvideAssistService provides the AI comment assist service.
func ProvideAssistService(i do.Injector) (*service.AssistService, error) {
	gen := do.MustInvoke[ai.Generator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewAssistService(gen, log.Logger), nil
}

// ProvideSettingsService provides the tenant settings service.
func ProvideSettingsService(i do.Injector) (*service.SettingsService, error) {
	provider := do.MustInvoke[settings.Provider](i)

	return service.NewSettingsService(provider), nil
}
