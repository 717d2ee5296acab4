package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/classroomhub/hub-server/internal/comment"
	"github.com/classroomhub/hub-server/internal/domain"
	apperrors "github.com/classroomhub/hub-server/internal/errors"
	"github.com/classroomhub/hub-server/internal/id"
	"github.com/classroomhub/hub-server/internal/store"
)

// SeedService loads the Ontario starter bank and runs tag/level backfills
// over existing rows.
type SeedService struct {
	store    store.TemplateStore
	comments *CommentService
	logger   *slog.Logger
}

// NewSeedService creates a seed service.
func NewSeedService(st store.TemplateStore, comments *CommentService, logger *slog.Logger) *SeedService {
	return &SeedService{store: st, comments: comments, logger: logger}
}

// SeedResult reports what a seed run did.
type SeedResult struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// seedKey is the identity used for idempotence: seeds match existing rows by
// normalized text, so re-running a seed never duplicates entries even when
// the earlier run predates tag normalization.
func seedKey(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}

// SeedOntario inserts the Ontario starter bank. Existing templates with the
// same text are skipped; individual insert failures are counted and logged
// but do not abort the run.
func (s *SeedService) SeedOntario(ctx context.Context) (*SeedResult, error) {
	existing, err := s.store.ListTemplates(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to list templates")
	}

	have := make(map[string]bool, len(existing))
	for _, t := range existing {
		have[seedKey(t.Text)] = true
	}

	tenantID := ""
	if tenant, err := s.store.ResolveDefaultTenant(ctx); err == nil {
		tenantID = tenant.ID
	}

	result := &SeedResult{}
	for _, seed := range comment.OntarioSeeds() {
		if have[seedKey(seed.Text)] {
			result.Skipped++
			continue
		}

		templateID, err := id.Generate("tpl")
		if err != nil {
			result.Failed++
			s.logger.Warn("failed to generate seed template id", "error", err)
			continue
		}

		t := &domain.Template{
			ID:       templateID,
			TenantID: tenantID,
			Text:     seed.Text,
			Level:    string(seed.Level),
			Tags:     seed.Tags(),
		}
		t.Touch()
		t.CreatedAt = t.UpdatedAt

		if err := s.store.CreateTemplate(ctx, t); err != nil {
			result.Failed++
			s.logger.Warn("failed to insert seed template", "text", seed.Text, "error", err)
			continue
		}
		have[seedKey(seed.Text)] = true
		result.Created++
	}

	if err := s.comments.RebuildIndex(ctx); err != nil {
		s.logger.Warn("failed to rebuild search index after seed", "error", err)
	}

	s.logger.Info("ontario seed finished",
		"created", result.Created, "skipped", result.Skipped, "failed", result.Failed)
	return result, nil
}

// BackfillResult reports what a backfill run did.
type BackfillResult struct {
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// BackfillLevels infers a level for templates that have none, from the
// template text. Templates with a stored level or a parseable level: tag are
// never touched; an explicit level always wins over inference.
func (s *SeedService) BackfillLevels(ctx context.Context) (*BackfillResult, error) {
	templates, err := s.store.ListTemplates(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to list templates")
	}

	emoji := s.comments.Emoji()
	result := &BackfillResult{}
	for _, t := range templates {
		if level, _ := comment.ExtractLevel(t.Level, t.Tags, emoji); level != comment.LevelNone {
			result.Skipped++
			continue
		}

		inferred := comment.InferLevelFromText(t.Text)
		if inferred == comment.LevelNone {
			result.Skipped++
			continue
		}

		t.Level = string(inferred)
		t.Tags = comment.NormalizeTags(append(t.Tags, "level:"+string(inferred)))
		t.Touch()

		if err := s.store.UpdateTemplate(ctx, t); err != nil {
			result.Failed++
			s.logger.Warn("failed to backfill level", "id", t.ID, "error", err)
			continue
		}
		result.Updated++
	}

	if result.Updated > 0 {
		if err := s.comments.RebuildIndex(ctx); err != nil {
			s.logger.Warn("failed to rebuild search index after backfill", "error", err)
		}
	}

	s.logger.Info("level backfill finished",
		"updated", result.Updated, "skipped", result.Skipped, "failed", result.Failed)
	return result, nil
}

// BackfillOntarioTags adds category and jurisdiction tags to bank rows whose
// text matches an Ontario seed but whose tags predate normalization. Rows
// that already carry a category tag are skipped.
func (s *SeedService) BackfillOntarioTags(ctx context.Context) (*BackfillResult, error) {
	templates, err := s.store.ListTemplates(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to list templates")
	}

	seedsByText := make(map[string]comment.TemplateSeed)
	for _, seed := range comment.OntarioSeeds() {
		seedsByText[seedKey(seed.Text)] = seed
	}

	result := &BackfillResult{}
	for _, t := range templates {
		seed, ok := seedsByText[seedKey(t.Text)]
		if !ok {
			result.Skipped++
			continue
		}
		if len(comment.CategorySlugs(t.Tags)) > 0 {
			result.Skipped++
			continue
		}

		merged := comment.NormalizeTags(append(append([]string{}, t.Tags...), seed.Tags()...))
		if len(merged) == len(t.Tags) {
			result.Skipped++
			continue
		}
		t.Tags = merged
		if t.Level == "" && seed.Level != comment.LevelNone {
			t.Level = string(seed.Level)
		}
		t.Touch()

		if err := s.store.UpdateTemplate(ctx, t); err != nil {
			result.Failed++
			s.logger.Warn("failed to backfill tags", "id", t.ID, "error", err)
			continue
		}
		result.Updated++
	}

	if result.Updated > 0 {
		if err := s.comments.RebuildIndex(ctx); err != nil {
			s.logger.Warn("failed to rebuild search index after backfill", "error", err)
		}
	}

	s.logger.Info("ontario tag backfill finished",
		"updated", result.Updated, "skipped", result.Skipped, "failed", result.Failed)
	return result, nil
}
