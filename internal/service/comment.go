// Package service orchestrates comment bank operations between the HTTP
// layer, the template store, and the search index.
package service

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/classroomhub/hub-server/internal/comment"
	"github.com/classroomhub/hub-server/internal/domain"
	apperrors "github.com/classroomhub/hub-server/internal/errors"
	"github.com/classroomhub/hub-server/internal/id"
	"github.com/classroomhub/hub-server/internal/render"
	"github.com/classroomhub/hub-server/internal/search"
	"github.com/classroomhub/hub-server/internal/store"
	"github.com/classroomhub/hub-server/internal/validation"
)

// TemplateView is a template enriched with derived presentation fields.
// Level and emoji come from the stored column or the tags; categories are
// the slugs the tags resolve to.
type TemplateView struct {
	ID         string   `json:"id"`
	Text       string   `json:"text"`
	Subject    string   `json:"subject,omitempty"`
	GradeBand  string   `json:"grade_band,omitempty"`
	Tags       []string `json:"tags"`
	Level      string   `json:"level,omitempty"`
	Emoji      string   `json:"emoji,omitempty"`
	Categories []string `json:"categories"`
	NextSteps  bool     `json:"next_steps"`
	Opener     bool     `json:"opener"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
}

// CommentService orchestrates template CRUD, filtering, and summaries.
type CommentService struct {
	store     store.TemplateStore
	index     *search.Index
	emoji     comment.EmojiMap
	logger    *slog.Logger
	validator *validation.Validator
}

// NewCommentService creates a comment service. The index may be nil; search
// maintenance is skipped silently in that case.
func NewCommentService(st store.TemplateStore, index *search.Index, emoji comment.EmojiMap, logger *slog.Logger) *CommentService {
	return &CommentService{
		store:     st,
		index:     index,
		emoji:     emoji,
		logger:    logger,
		validator: validation.New(),
	}
}

// Emoji returns the active level emoji mapping.
func (s *CommentService) Emoji() comment.EmojiMap {
	return s.emoji
}

// view derives the presentation fields for one template.
func (s *CommentService) view(t *domain.Template) *TemplateView {
	level, emoji := comment.ExtractLevel(t.Level, t.Tags, s.emoji)
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	categories := comment.CategorySlugs(t.Tags)
	if categories == nil {
		categories = []string{}
	}
	return &TemplateView{
		ID:         t.ID,
		Text:       t.Text,
		Subject:    t.Subject,
		GradeBand:  t.GradeBand,
		Tags:       tags,
		Level:      string(level),
		Emoji:      emoji,
		Categories: categories,
		NextSteps:  comment.IsNextSteps(t.Tags, t.Text),
		Opener:     comment.IsOpener(t.Tags),
		CreatedAt:  t.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  t.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// ListFilter narrows a template listing.
type ListFilter struct {
	Level string // canonical level, matched against the derived level
	Query string // case-insensitive substring of the template text
}

// List returns all templates, optionally filtered by level and text query.
func (s *CommentService) List(ctx context.Context, filter ListFilter) ([]*TemplateView, error) {
	templates, err := s.store.ListTemplates(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to list templates")
	}

	wantLevel, haveLevel := comment.ParseLevel(filter.Level)
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	views := make([]*TemplateView, 0, len(templates))
	for _, t := range templates {
		v := s.view(t)
		if haveLevel && v.Level != string(wantLevel) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(v.Text), query) {
			continue
		}
		views = append(views, v)
	}
	return views, nil
}

// Get returns one template by id.
func (s *CommentService) Get(ctx context.Context, templateID string) (*TemplateView, error) {
	t, err := s.store.GetTemplate(ctx, templateID)
	if err != nil {
		if apperrors.Is(err, store.ErrTemplateNotFound) {
			return nil, apperrors.NotFoundf("template %s not found", templateID)
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to load template")
	}
	return s.view(t), nil
}

// CreateRequest contains fields for creating a template.
type CreateRequest struct {
	Text      string   `json:"text" validate:"required,min=1,max=2000"`
	Subject   string   `json:"subject" required:"false" validate:"max=100"`
	GradeBand string   `json:"grade_band" required:"false" validate:"max=20"`
	Level     string   `json:"level" required:"false" validate:"max=20"`
	Category  string   `json:"category" required:"false" validate:"max=100"`
	Tags      []string `json:"tags" required:"false"`
}

// Create persists a new template. Legacy placeholder markers in the text are
// rewritten to the canonical form, tags are normalized, and the template is
// linked to the default tenant when the backend supports tenants. Duplicate
// texts are accepted; the bank has no uniqueness constraint.
func (s *CommentService) Create(ctx context.Context, req CreateRequest) (*TemplateView, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Text) == "" {
		return nil, apperrors.Validation("text is required")
	}

	level := ""
	if lvl, ok := comment.ParseLevel(req.Level); ok {
		level = string(lvl)
	}

	templateID, err := id.Generate("tpl")
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to generate template id")
	}

	tags := req.Tags
	if cat := comment.Slugify(req.Category); cat != "" {
		tags = append(append([]string(nil), tags...), "category:"+cat)
	}

	t := &domain.Template{
		ID:        templateID,
		Text:      render.NormalizePlaceholders(strings.TrimSpace(req.Text)),
		Subject:   strings.TrimSpace(req.Subject),
		GradeBand: strings.TrimSpace(req.GradeBand),
		Level:     level,
		Tags:      comment.NormalizeTags(tags),
	}
	t.Touch()
	t.CreatedAt = t.UpdatedAt

	// Tenant linkage is best effort. Legacy backends have no tenant storage
	// and the template simply stays unlinked.
	if tenant, err := s.store.ResolveDefaultTenant(ctx); err == nil {
		t.TenantID = tenant.ID
	} else if !apperrors.Is(err, store.ErrTenantNotFound) {
		s.logger.Warn("failed to resolve default tenant", "error", err)
	}

	if err := s.store.CreateTemplate(ctx, t); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to create template")
	}

	s.indexTemplate(t)
	s.logger.Info("template created", "id", t.ID, "level", t.Level, "tags", len(t.Tags))
	return s.view(t), nil
}

// Delete removes a template. Unknown ids are reported, never swallowed.
func (s *CommentService) Delete(ctx context.Context, templateID string) error {
	if err := s.store.DeleteTemplate(ctx, templateID); err != nil {
		if apperrors.Is(err, store.ErrTemplateNotFound) {
			return apperrors.NotFoundf("template %s not found", templateID)
		}
		return apperrors.Wrap(err, apperrors.CodeDeleteFailed, "failed to delete template")
	}

	if s.index != nil {
		if err := s.index.Delete(templateID); err != nil {
			s.logger.Warn("failed to remove template from search index", "id", templateID, "error", err)
		}
	}

	s.logger.Info("template deleted", "id", templateID)
	return nil
}

// ByCategory returns templates tagged with the given learning skill
// category, optionally at one level, newest first.
func (s *CommentService) ByCategory(ctx context.Context, categoryID, level string) ([]*TemplateView, error) {
	if strings.TrimSpace(categoryID) == "" {
		return nil, apperrors.Validation("category is required")
	}

	templates, err := s.store.ListTemplates(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to list templates")
	}

	wantLevel, haveLevel := comment.ParseLevel(level)

	var matched []*domain.Template
	for _, t := range templates {
		if !comment.HasCategory(t.Tags, categoryID) {
			continue
		}
		if haveLevel {
			got, _ := comment.ExtractLevel(t.Level, t.Tags, s.emoji)
			if got != wantLevel {
				continue
			}
		}
		matched = append(matched, t)
	}

	sortNewestFirst(matched)

	views := make([]*TemplateView, 0, len(matched))
	for _, t := range matched {
		views = append(views, s.view(t))
	}
	return views, nil
}

// BySkill returns templates for a learning skill by its display label.
// The label is slugified, so "Self Regulation" and "self-regulation" match
// the same bank entries.
func (s *CommentService) BySkill(ctx context.Context, skillLabel, level string) ([]*TemplateView, error) {
	return s.ByCategory(ctx, comment.Slugify(skillLabel), level)
}

// NextSteps returns every next-steps suggestion in the bank.
func (s *CommentService) NextSteps(ctx context.Context) ([]*TemplateView, error) {
	templates, err := s.store.ListTemplates(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to list templates")
	}

	var matched []*domain.Template
	for _, t := range templates {
		if comment.IsNextSteps(t.Tags, t.Text) {
			matched = append(matched, t)
		}
	}
	sortNewestFirst(matched)

	views := make([]*TemplateView, 0, len(matched))
	for _, t := range matched {
		views = append(views, s.view(t))
	}
	return views, nil
}

// Openers returns every opening line in the bank.
func (s *CommentService) Openers(ctx context.Context) ([]*TemplateView, error) {
	templates, err := s.store.ListTemplates(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to list templates")
	}

	var views []*TemplateView
	for _, t := range templates {
		if comment.IsOpener(t.Tags) {
			views = append(views, s.view(t))
		}
	}
	return views, nil
}

// Summary aggregates the bank by level and by category. A template with
// several category tags counts once per category; templates without a level
// land in the "(none)" bucket.
type Summary struct {
	Total      int            `json:"total"`
	ByLevel    map[string]int `json:"by_level"`
	ByCategory map[string]int `json:"by_category"`
}

// Summarize computes bank-wide counts.
func (s *CommentService) Summarize(ctx context.Context) (*Summary, error) {
	templates, err := s.store.ListTemplates(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to list templates")
	}

	summary := &Summary{
		Total:      len(templates),
		ByLevel:    make(map[string]int),
		ByCategory: make(map[string]int),
	}
	for _, t := range templates {
		level, _ := comment.ExtractLevel(t.Level, t.Tags, s.emoji)
		key := string(level)
		if level == comment.LevelNone {
			key = "(none)"
		}
		summary.ByLevel[key]++

		for _, slug := range comment.CategorySlugs(t.Tags) {
			summary.ByCategory[slug]++
		}
	}
	return summary, nil
}

// LevelInfo describes one canonical level for pickers.
type LevelInfo struct {
	Level string `json:"level"`
	Emoji string `json:"emoji"`
}

// Levels returns the canonical levels with their display emoji.
func (s *CommentService) Levels() []LevelInfo {
	levels := comment.Levels()
	out := make([]LevelInfo, 0, len(levels))
	for _, lvl := range levels {
		out = append(out, LevelInfo{Level: string(lvl), Emoji: s.emoji[lvl]})
	}
	return out
}

// RebuildIndex re-indexes the whole bank. Called at startup and after seeds
// and backfills.
func (s *CommentService) RebuildIndex(ctx context.Context) error {
	if s.index == nil {
		return nil
	}

	templates, err := s.store.ListTemplates(ctx)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternal, "failed to list templates")
	}

	docs := make([]*search.TemplateDocument, 0, len(templates))
	for _, t := range templates {
		docs = append(docs, search.NewTemplateDocument(t, s.emoji))
	}
	return s.index.Rebuild(docs)
}

// Search runs a full-text query against the index.
func (s *CommentService) Search(ctx context.Context, params search.Params) (*search.Result, error) {
	if s.index == nil {
		return nil, apperrors.Internal("search index is not available")
	}
	return s.index.Search(ctx, params)
}

func (s *CommentService) indexTemplate(t *domain.Template) {
	if s.index == nil {
		return
	}
	if err := s.index.Upsert(search.NewTemplateDocument(t, s.emoji)); err != nil {
		s.logger.Warn("failed to index template", "id", t.ID, "error", err)
	}
}

// sortNewestFirst orders by updated time descending, breaking ties by id
// descending so the order is deterministic.
func sortNewestFirst(templates []*domain.Template) {
	sort.SliceStable(templates, func(i, j int) bool {
		if !templates[i].UpdatedAt.Equal(templates[j].UpdatedAt) {
			return templates[i].UpdatedAt.After(templates[j].UpdatedAt)
		}
		return templates[i].ID > templates[j].ID
	})
}
