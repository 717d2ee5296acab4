package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/classroomhub/hub-server/internal/domain"
)

func (s *Server) registerSettingsRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getSettings",
		Method:      http.MethodGet,
		Path:        "/api/v1/settings",
		Summary:     "Get tenant settings",
		Description: "Returns the active settings; the backing file is re-read on every request",
		Tags:        []string{"Settings"},
	}, s.handleGetSettings)
}

// SettingsOutput wraps tenant settings for Huma.
type SettingsOutput struct {
	Body domain.TenantSettings
}

func (s *Server) handleGetSettings(ctx context.Context, _ *struct{}) (*SettingsOutput, error) {
	cfg, err := s.services.Settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &SettingsOutput{Body: *cfg}, nil
}
