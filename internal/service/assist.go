package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/classroomhub/hub-server/internal/ai"
	apperrors "github.com/classroomhub/hub-server/internal/errors"
)

// AssistSource labels where an assist result came from.
const (
	AssistSourceModel    = "model"
	AssistSourceFallback = "fallback"
)

// AssistService polishes drafts with a generative model. The model is never
// load-bearing: any failure returns the draft verbatim with HTTP success, so
// a teacher mid-report never loses work to a provider outage.
type AssistService struct {
	generator ai.Generator
	logger    *slog.Logger
}

// NewAssistService creates an assist service.
func NewAssistService(generator ai.Generator, logger *slog.Logger) *AssistService {
	return &AssistService{generator: generator, logger: logger}
}

// AssistRequest is a draft to polish plus optional steering.
type AssistRequest struct {
	Draft        string `json:"draft" validate:"required,min=1,max=4000"`
	Instructions string `json:"instructions" required:"false" validate:"max=500"`
	Tone         string `json:"tone" required:"false" validate:"max=50"`
}

// AssistResult is the polished text and its provenance.
type AssistResult struct {
	Text   string `json:"text"`
	Source string `json:"source"` // model or fallback
}

// Polish runs the draft through the model, falling back to the verbatim
// draft on any error or empty response.
func (s *AssistService) Polish(ctx context.Context, req AssistRequest) (*AssistResult, error) {
	draft := strings.TrimSpace(req.Draft)
	if draft == "" {
		return nil, apperrors.Validation("draft is required")
	}

	text, err := s.generator.Generate(ctx, buildPrompt(draft, req.Instructions, req.Tone))
	if err != nil {
		if !apperrors.Is(err, ai.ErrDisabled) {
			s.logger.Warn("assist generation failed, returning draft verbatim", "error", err)
		}
		return &AssistResult{Text: draft, Source: AssistSourceFallback}, nil
	}

	return &AssistResult{Text: text, Source: AssistSourceModel}, nil
}

func buildPrompt(draft, instructions, tone string) string {
	var b strings.Builder
	b.WriteString("You are helping a teacher polish a report-card comment. ")
	b.WriteString("Keep placeholder tokens like {{First}} and {{their}} exactly as written. ")
	b.WriteString("Return only the improved comment, with no preamble.\n\n")
	if tone != "" {
		fmt.Fprintf(&b, "Tone: %s\n", tone)
	}
	if instructions != "" {
		fmt.Fprintf(&b, "Instructions: %s\n", instructions)
	}
	fmt.Fprintf(&b, "Draft: %s\n", draft)
	return b.String()
}
