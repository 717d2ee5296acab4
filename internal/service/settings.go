package service

import (
	"context"

	"github.com/classroomhub/hub-server/internal/domain"
	apperrors "github.com/classroomhub/hub-server/internal/errors"
	"github.com/classroomhub/hub-server/internal/settings"
)

// SettingsService exposes the current tenant settings. It is a thin pass
// through to the provider so every request sees the file as it is now.
type SettingsService struct {
	provider settings.Provider
}

// NewSettingsService creates a settings service.
func NewSettingsService(provider settings.Provider) *SettingsService {
	return &SettingsService{provider: provider}
}

// Get returns the active tenant settings.
func (s *SettingsService) Get(ctx context.Context) (*domain.TenantSettings, error) {
	cfg, err := s.provider.Get(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to load settings")
	}
	return cfg, nil
}
