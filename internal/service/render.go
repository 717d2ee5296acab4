package service

import (
	"context"
	"log/slog"

	"github.com/classroomhub/hub-server/internal/domain"
	apperrors "github.com/classroomhub/hub-server/internal/errors"
	"github.com/classroomhub/hub-server/internal/render"
	"github.com/classroomhub/hub-server/internal/store"
)

// RenderService fills placeholder templates for a concrete student and
// composes multi-part comments.
type RenderService struct {
	store  store.TemplateStore
	logger *slog.Logger
}

// NewRenderService creates a render service.
func NewRenderService(st store.TemplateStore, logger *slog.Logger) *RenderService {
	return &RenderService{store: st, logger: logger}
}

// RenderInput identifies the text to render and who it is about.
type RenderInput struct {
	// TemplateID selects a stored template. Mutually exclusive with Text.
	TemplateID string
	// Text renders an ad hoc draft without storing it.
	Text string

	Student        domain.Student
	Guardian       domain.Guardian
	SubjectOrClass string
	TeacherName    string
	Term           string
	Extras         map[string]string
}

// Render fills one template. Legacy markers are normalized first, unknown
// placeholders resolve to empty strings, and the output never contains
// unfilled tokens.
func (s *RenderService) Render(ctx context.Context, in RenderInput) (string, error) {
	text, err := s.resolveText(ctx, in)
	if err != nil {
		return "", err
	}

	rctx := render.BuildContext(render.ContextInput{
		Student:        in.Student,
		Guardian:       in.Guardian,
		SubjectOrClass: in.SubjectOrClass,
		TeacherName:    in.TeacherName,
		Term:           in.Term,
		Extras:         in.Extras,
	})
	return render.Fill(render.NormalizePlaceholders(text), rctx), nil
}

// ComposePart is one piece of a multi-part comment: either a stored
// template id or ad hoc text.
type ComposePart struct {
	TemplateID string `json:"template_id,omitempty"`
	Text       string `json:"text,omitempty"`
}

// ComposeInput is a multi-part render in caller order.
type ComposeInput struct {
	Parts []ComposePart

	Student        domain.Student
	Guardian       domain.Guardian
	SubjectOrClass string
	TeacherName    string
	Term           string
	Extras         map[string]string
}

// Compose renders each part and joins them into one paragraph. Leading
// bracket markers are stripped per part, empty parts are dropped, and the
// caller's part order is preserved.
func (s *RenderService) Compose(ctx context.Context, in ComposeInput) (string, error) {
	if len(in.Parts) == 0 {
		return "", apperrors.Validation("at least one part is required")
	}

	rctx := render.BuildContext(render.ContextInput{
		Student:        in.Student,
		Guardian:       in.Guardian,
		SubjectOrClass: in.SubjectOrClass,
		TeacherName:    in.TeacherName,
		Term:           in.Term,
		Extras:         in.Extras,
	})

	filled := make([]string, 0, len(in.Parts))
	for _, part := range in.Parts {
		text := part.Text
		if part.TemplateID != "" {
			t, err := s.store.GetTemplate(ctx, part.TemplateID)
			if err != nil {
				if apperrors.Is(err, store.ErrTemplateNotFound) {
					return "", apperrors.NotFoundf("template %s not found", part.TemplateID)
				}
				return "", apperrors.Wrap(err, apperrors.CodeInternal, "failed to load template")
			}
			text = t.Text
		}
		filled = append(filled, render.Fill(render.NormalizePlaceholders(text), rctx))
	}

	return render.Compose(filled), nil
}

func (s *RenderService) resolveText(ctx context.Context, in RenderInput) (string, error) {
	switch {
	case in.TemplateID != "" && in.Text != "":
		return "", apperrors.Validation("template_id and text are mutually exclusive")
	case in.TemplateID != "":
		t, err := s.store.GetTemplate(ctx, in.TemplateID)
		if err != nil {
			if apperrors.Is(err, store.ErrTemplateNotFound) {
				return "", apperrors.NotFoundf("template %s not found", in.TemplateID)
			}
			return "", apperrors.Wrap(err, apperrors.CodeInternal, "failed to load template")
		}
		return t.Text, nil
	case in.Text != "":
		return in.Text, nil
	}
	return "", apperrors.Validation("template_id or text is required")
}
