package api

import (
	"context"
	"net"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/classroomhub/hub-server/internal/service"
)

func (s *Server) registerAssistRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "assistComment",
		Method:      http.MethodPost,
		Path:        "/api/v1/comments/assist",
		Summary:     "Polish a draft with AI",
		Description: "Returns the polished comment, or the draft verbatim when the provider is disabled or failing",
		Tags:        []string{"Assist"},
	}, s.handleAssistComment)
}

// AssistCommentInput wraps the assist request for Huma.
type AssistCommentInput struct {
	Body service.AssistRequest
}

// AssistCommentOutput wraps the assist result for Huma.
type AssistCommentOutput struct {
	Body service.AssistResult
}

func (s *Server) handleAssistComment(ctx context.Context, input *AssistCommentInput) (*AssistCommentOutput, error) {
	result, err := s.services.Assist.Polish(ctx, input.Body)
	if err != nil {
		return nil, err
	}
	return &AssistCommentOutput{Body: *result}, nil
}

// assistRateLimit throttles the assist endpoint per client IP. Other routes
// pass through untouched.
func (s *Server) assistRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/api/v1/comments/assist" {
			if !s.assistLimiter.Allow(clientIP(r)) {
				s.logger.Warn("assist rate limit exceeded", "ip", clientIP(r))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"code":"RATE_LIMITED","message":"too many assist requests, slow down"}`))
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP extracts the client address. RealIP middleware has already folded
// X-Forwarded-For into RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
