package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/classroomhub/hub-server/internal/domain"
	"github.com/classroomhub/hub-server/internal/service"
)

func (s *Server) registerRenderRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "renderComment",
		Method:      http.MethodPost,
		Path:        "/api/v1/comments/render",
		Summary:     "Render a template for a student",
		Description: "Fills placeholders from the student record; unknown placeholders resolve to empty strings",
		Tags:        []string{"Render"},
	}, s.handleRenderComment)

	huma.Register(s.api, huma.Operation{
		OperationID: "composeComment",
		Method:      http.MethodPost,
		Path:        "/api/v1/comments/compose",
		Summary:     "Compose a multi-part comment",
		Description: "Renders each part, strips leading markers, drops empties, and joins in caller order",
		Tags:        []string{"Render"},
	}, s.handleComposeComment)
}

// === DTOs ===

// StudentPayload identifies the student a render is about.
type StudentPayload struct {
	FirstName string `json:"first_name" doc:"Student first name"`
	LastName  string `json:"last_name,omitempty" doc:"Student last name"`
	Grade     string `json:"grade,omitempty" doc:"Grade, e.g. 5"`
	Pronouns  string `json:"pronouns,omitempty" doc:"Pronouns as subject/object/possessive, e.g. she/her/her"`
	Gender    string `json:"gender,omitempty" doc:"Legacy gender field, used only when pronouns are absent"`
}

// GuardianPayload identifies the guardian referenced by guardian placeholders.
type GuardianPayload struct {
	Name         string `json:"name,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Relationship string `json:"relationship,omitempty"`
}

func (p StudentPayload) toDomain() domain.Student {
	return domain.Student{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Grade:     p.Grade,
		Pronouns:  p.Pronouns,
		Gender:    p.Gender,
	}
}

func (p GuardianPayload) toDomain() domain.Guardian {
	return domain.Guardian{
		Name:         p.Name,
		Email:        p.Email,
		Phone:        p.Phone,
		Relationship: p.Relationship,
	}
}

// RenderCommentRequest is the request body for rendering one template.
type RenderCommentRequest struct {
	TemplateID     string            `json:"template_id,omitempty" doc:"Stored template to render; mutually exclusive with text"`
	Text           string            `json:"text,omitempty" doc:"Ad hoc text to render without storing"`
	Student        StudentPayload    `json:"student"`
	Guardian       GuardianPayload   `json:"guardian,omitzero"`
	SubjectOrClass string            `json:"subject_or_class,omitempty"`
	TeacherName    string            `json:"teacher_name,omitempty"`
	Term           string            `json:"term,omitempty"`
	Extras         map[string]string `json:"extras,omitempty" doc:"Extra placeholder values; win over derived keys"`
}

// RenderCommentInput wraps the render request for Huma.
type RenderCommentInput struct {
	Body RenderCommentRequest
}

// RenderedOutput wraps rendered text for Huma.
type RenderedOutput struct {
	Body struct {
		Text string `json:"text" doc:"Rendered comment"`
	}
}

// ComposeCommentRequest is the request body for composing a comment.
type ComposeCommentRequest struct {
	Parts          []service.ComposePart `json:"parts" doc:"Parts in output order; each is a template_id or ad hoc text"`
	Student        StudentPayload        `json:"student"`
	Guardian       GuardianPayload       `json:"guardian,omitzero"`
	SubjectOrClass string                `json:"subject_or_class,omitempty"`
	TeacherName    string                `json:"teacher_name,omitempty"`
	Term           string                `json:"term,omitempty"`
	Extras         map[string]string     `json:"extras,omitempty"`
}

// ComposeCommentInput wraps the compose request for Huma.
type ComposeCommentInput struct {
	Body ComposeCommentRequest
}

// === Handlers ===

func (s *Server) handleRenderComment(ctx context.Context, input *RenderCommentInput) (*RenderedOutput, error) {
	text, err := s.services.Render.Render(ctx, service.RenderInput{
		TemplateID:     input.Body.TemplateID,
		Text:           input.Body.Text,
		Student:        input.Body.Student.toDomain(),
		Guardian:       input.Body.Guardian.toDomain(),
		SubjectOrClass: input.Body.SubjectOrClass,
		TeacherName:    input.Body.TeacherName,
		Term:           input.Body.Term,
		Extras:         input.Body.Extras,
	})
	if err != nil {
		return nil, err
	}
	out := &RenderedOutput{}
	out.Body.Text = text
	return out, nil
}

func (s *Server) handleComposeComment(ctx context.Context, input *ComposeCommentInput) (*RenderedOutput, error) {
	text, err := s.services.Render.Compose(ctx, service.ComposeInput{
		Parts:          input.Body.Parts,
		Student:        input.Body.Student.toDomain(),
		Guardian:       input.Body.Guardian.toDomain(),
		SubjectOrClass: input.Body.SubjectOrClass,
		TeacherName:    input.Body.TeacherName,
		Term:           input.Body.Term,
		Extras:         input.Body.Extras,
	})
	if err != nil {
		return nil, err
	}
	out := &RenderedOutput{}
	out.Body.Text = text
	return out, nil
}
