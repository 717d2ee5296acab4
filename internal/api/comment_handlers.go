package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/classroomhub/hub-server/internal/service"
)

func (s *Server) registerCommentRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listComments",
		Method:      http.MethodGet,
		Path:        "/api/v1/comments",
		Summary:     "List comment templates",
		Description: "Returns all templates, optionally filtered by level and text query",
		Tags:        []string{"Comments"},
	}, s.handleListComments)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createComment",
		Method:        http.MethodPost,
		Path:          "/api/v1/comments",
		Summary:       "Create comment template",
		Description:   "Creates a template; legacy placeholder markers and tags are normalized on write",
		Tags:          []string{"Comments"},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateComment)

	huma.Register(s.api, huma.Operation{
		OperationID: "listCommentLevels",
		Method:      http.MethodGet,
		Path:        "/api/v1/comments/levels",
		Summary:     "List levels",
		Description: "Returns the canonical levels with their display emoji",
		Tags:        []string{"Comments"},
	}, s.handleListLevels)

	huma.Register(s.api, huma.Operation{
		OperationID: "getCommentSummary",
		Method:      http.MethodGet,
		Path:        "/api/v1/comments/summary",
		Summary:     "Summarize the bank",
		Description: "Returns template counts by level and by category",
		Tags:        []string{"Comments"},
	}, s.handleCommentSummary)

	huma.Register(s.api, huma.Operation{
		OperationID: "listNextSteps",
		Method:      http.MethodGet,
		Path:        "/api/v1/comments/next-steps",
		Summary:     "List next-steps suggestions",
		Tags:        []string{"Comments"},
	}, s.handleListNextSteps)

	huma.Register(s.api, huma.Operation{
		OperationID: "listOpeners",
		Method:      http.MethodGet,
		Path:        "/api/v1/comments/openers",
		Summary:     "List opening lines",
		Tags:        []string{"Comments"},
	}, s.handleListOpeners)

	huma.Register(s.api, huma.Operation{
		OperationID: "listCommentsByCategory",
		Method:      http.MethodGet,
		Path:        "/api/v1/comments/by-category",
		Summary:     "List by learning skill category",
		Description: "Returns templates tagged with the category slug, newest first",
		Tags:        []string{"Comments"},
	}, s.handleListByCategory)

	huma.Register(s.api, huma.Operation{
		OperationID: "listCommentsBySkill",
		Method:      http.MethodGet,
		Path:        "/api/v1/comments/by-skill",
		Summary:     "List by learning skill label",
		Description: "Like by-category, but takes the display label and slugifies it",
		Tags:        []string{"Comments"},
	}, s.handleListBySkill)

	huma.Register(s.api, huma.Operation{
		OperationID: "getComment",
		Method:      http.MethodGet,
		Path:        "/api/v1/comments/{id}",
		Summary:     "Get comment template",
		Tags:        []string{"Comments"},
	}, s.handleGetComment)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteComment",
		Method:      http.MethodDelete,
		Path:        "/api/v1/comments/{id}",
		Summary:     "Delete comment template",
		Description: "Deletes a template; unknown ids are an error, never a silent success",
		Tags:        []string{"Comments"},
	}, s.handleDeleteComment)

	huma.Register(s.api, huma.Operation{
		OperationID: "seedOntarioComments",
		Method:      http.MethodPost,
		Path:        "/api/v1/comments/seed/ontario-ls",
		Summary:     "Seed the Ontario starter bank",
		Description: "Idempotent: existing templates with the same text are skipped",
		Tags:        []string{"Admin"},
	}, s.handleSeedOntario)

	huma.Register(s.api, huma.Operation{
		OperationID: "backfillCommentLevels",
		Method:      http.MethodPost,
		Path:        "/api/v1/comments/backfill-levels",
		Summary:     "Backfill levels from text",
		Description: "Infers levels for templates that have none; explicit levels are never overridden",
		Tags:        []string{"Admin"},
	}, s.handleBackfillLevels)

	huma.Register(s.api, huma.Operation{
		OperationID: "backfillOntarioTags",
		Method:      http.MethodPost,
		Path:        "/api/v1/comments/backfill-ontario-tags",
		Summary:     "Backfill Ontario tags",
		Description: "Adds category and jurisdiction tags to rows matching Ontario seed texts",
		Tags:        []string{"Admin"},
	}, s.handleBackfillOntarioTags)
}

// === DTOs ===

// ListCommentsInput contains filters for listing templates.
type ListCommentsInput struct {
	Level string `query:"level" doc:"Filter by canonical level (E, G, S, NS, NextSteps, END)"`
	Query string `query:"q" doc:"Case-insensitive substring of the template text"`
}

// CommentListResponse contains a list of templates.
type CommentListResponse struct {
	Templates []*service.TemplateView `json:"templates" doc:"Matching templates"`
	Total     int                     `json:"total" doc:"Number of matches"`
}

// CommentListOutput wraps the list response for Huma.
type CommentListOutput struct {
	Body CommentListResponse
}

// CreateCommentInput wraps the create request for Huma.
type CreateCommentInput struct {
	Body service.CreateRequest
}

// CommentOutput wraps a single template response for Huma.
type CommentOutput struct {
	Body service.TemplateView
}

// GetCommentInput contains parameters for fetching one template.
type GetCommentInput struct {
	ID string `path:"id" doc:"Template ID"`
}

// DeleteCommentInput contains parameters for deleting a template.
type DeleteCommentInput struct {
	ID string `path:"id" doc:"Template ID"`
}

// DeleteCommentOutput confirms a deletion.
type DeleteCommentOutput struct {
	Body struct {
		Deleted string `json:"deleted" doc:"ID of the deleted template"`
	}
}

// LevelListOutput wraps the level list for Huma.
type LevelListOutput struct {
	Body struct {
		Levels []string          `json:"levels" doc:"Canonical levels, display order"`
		Emoji  map[string]string `json:"emoji" doc:"Level to display glyph"`
	}
}

// CommentSummaryOutput wraps the bank summary for Huma.
type CommentSummaryOutput struct {
	Body service.Summary
}

// ByCategoryInput selects templates by category slug.
type ByCategoryInput struct {
	Category string `query:"category" required:"true" doc:"Learning skill category slug"`
	Level    string `query:"level" doc:"Optional level filter"`
}

// BySkillInput selects templates by skill display label.
type BySkillInput struct {
	Skill string `query:"skill" required:"true" doc:"Learning skill display label, e.g. Self Regulation"`
	Level string `query:"level" doc:"Optional level filter"`
}

// SeedOutput wraps a seed run report for Huma.
type SeedOutput struct {
	Body service.SeedResult
}

// BackfillOutput wraps a backfill run report for Huma.
type BackfillOutput struct {
	Body service.BackfillResult
}

// === Handlers ===

func (s *Server) handleListComments(ctx context.Context, input *ListCommentsInput) (*CommentListOutput, error) {
	views, err := s.services.Comment.List(ctx, service.ListFilter{Level: input.Level, Query: input.Query})
	if err != nil {
		return nil, err
	}
	return &CommentListOutput{Body: CommentListResponse{Templates: views, Total: len(views)}}, nil
}

func (s *Server) handleCreateComment(ctx context.Context, input *CreateCommentInput) (*CommentOutput, error) {
	view, err := s.services.Comment.Create(ctx, input.Body)
	if err != nil {
		return nil, err
	}
	return &CommentOutput{Body: *view}, nil
}

func (s *Server) handleGetComment(ctx context.Context, input *GetCommentInput) (*CommentOutput, error) {
	view, err := s.services.Comment.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &CommentOutput{Body: *view}, nil
}

func (s *Server) handleDeleteComment(ctx context.Context, input *DeleteCommentInput) (*DeleteCommentOutput, error) {
	if err := s.services.Comment.Delete(ctx, input.ID); err != nil {
		return nil, err
	}
	out := &DeleteCommentOutput{}
	out.Body.Deleted = input.ID
	return out, nil
}

func (s *Server) handleListLevels(ctx context.Context, _ *struct{}) (*LevelListOutput, error) {
	out := &LevelListOutput{}
	levels := s.services.Comment.Levels()
	out.Body.Levels = make([]string, 0, len(levels))
	out.Body.Emoji = make(map[string]string, len(levels))
	for _, lvl := range levels {
		out.Body.Levels = append(out.Body.Levels, lvl.Level)
		out.Body.Emoji[lvl.Level] = lvl.Emoji
	}
	return out, nil
}

func (s *Server) handleCommentSummary(ctx context.Context, _ *struct{}) (*CommentSummaryOutput, error) {
	summary, err := s.services.Comment.Summarize(ctx)
	if err != nil {
		return nil, err
	}
	return &CommentSummaryOutput{Body: *summary}, nil
}

func (s *Server) handleListNextSteps(ctx context.Context, _ *struct{}) (*CommentListOutput, error) {
	views, err := s.services.Comment.NextSteps(ctx)
	if err != nil {
		return nil, err
	}
	return &CommentListOutput{Body: CommentListResponse{Templates: views, Total: len(views)}}, nil
}

func (s *Server) handleListOpeners(ctx context.Context, _ *struct{}) (*CommentListOutput, error) {
	views, err := s.services.Comment.Openers(ctx)
	if err != nil {
		return nil, err
	}
	return &CommentListOutput{Body: CommentListResponse{Templates: views, Total: len(views)}}, nil
}

func (s *Server) handleListByCategory(ctx context.Context, input *ByCategoryInput) (*CommentListOutput, error) {
	views, err := s.services.Comment.ByCategory(ctx, input.Category, input.Level)
	if err != nil {
		return nil, err
	}
	return &CommentListOutput{Body: CommentListResponse{Templates: views, Total: len(views)}}, nil
}

func (s *Server) handleListBySkill(ctx context.Context, input *BySkillInput) (*CommentListOutput, error) {
	views, err := s.services.Comment.BySkill(ctx, input.Skill, input.Level)
	if err != nil {
		return nil, err
	}
	return &CommentListOutput{Body: CommentListResponse{Templates: views, Total: len(views)}}, nil
}

func (s *Server) handleSeedOntario(ctx context.Context, _ *struct{}) (*SeedOutput, error) {
	result, err := s.services.Seed.SeedOntario(ctx)
	if err != nil {
		return nil, err
	}
	return &SeedOutput{Body: *result}, nil
}

func (s *Server) handleBackfillLevels(ctx context.Context, _ *struct{}) (*BackfillOutput, error) {
	result, err := s.services.Seed.BackfillLevels(ctx)
	if err != nil {
		return nil, err
	}
	return &BackfillOutput{Body: *result}, nil
}

func (s *Server) handleBackfillOntarioTags(ctx context.Context, _ *struct{}) (*BackfillOutput, error) {
	result, err := s.services.Seed.BackfillOntarioTags(ctx)
	if err != nil {
		return nil, err
	}
	return &BackfillOutput{Body: *result}, nil
}
