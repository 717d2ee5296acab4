// Package ai adapts a generative model for comment polishing. The engine
// treats the model as strictly optional: any failure, empty result, or
// disabled configuration falls back to the caller's verbatim draft.
package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"
)

// ErrDisabled is returned by the disabled generator.
var ErrDisabled = errors.New("assist is disabled")

// Generator produces a polished comment from a draft and instructions.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiGenerator calls the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// NewGeminiGenerator creates a Gemini-backed generator.
func NewGeminiGenerator(ctx context.Context, apiKey, model string, logger *slog.Logger) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiGenerator{client: client, model: model, logger: logger}, nil
}

// Generate sends the prompt to the model and returns its text response.
// An empty response is an error so callers fall back to their draft.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", errors.New("model returned empty response")
	}
	return text, nil
}

// Disabled is a Generator that always fails, for deployments without an API
// key. The service layer converts the failure into verbatim passthrough.
type Disabled struct{}

// Generate implements Generator.
func (Disabled) Generate(ctx context.Context, prompt string) (string, error) {
	return "", ErrDisabled
}
