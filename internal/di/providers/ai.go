package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/classroomhub/hub-server/internal/ai"
	"github.com/classroomhub/hub-server/internal/config"
	"github.com/classroomhub/hub-server/internal/logger"
)

// ProvideGenerator provides the AI text generator for comment assist.
// When assist is disabled or misconfigured this degrades to the disabled
// generator, which makes every assist call take the verbatim fallback path.
func ProvideGenerator(i do.Injector) (ai.Generator, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	if !cfg.Assist.Enabled {
		return ai.Disabled{}, nil
	}
	if cfg.Assist.APIKey == "" {
		log.Warn("assist enabled without an API key, falling back to disabled generator")
		return ai.Disabled{}, nil
	}

	gen, err := ai.NewGeminiGenerator(context.Background(), cfg.Assist.APIKey, cfg.Assist.Model, log.Logger)
	if err != nil {
		log.Warn("failed to create assist generator, falling back to disabled generator", "error", err)
		return ai.Disabled{}, nil
	}

	log.Info("Comment assist enabled", "model", cfg.Assist.Model)
	return gen, nil
}
