// Package settings supplies per-tenant classroom configuration (learning
// skill categories, jurisdiction, subjects, grade bands, terms).
package settings

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/classroomhub/hub-server/internal/domain"
)

// Provider returns tenant settings for one request. Implementations must be
// read-through: every call reflects the current source, no cross-request
// caching.
type Provider interface {
	Get(ctx context.Context) (*domain.TenantSettings, error)
}

// FileProvider reads tenant settings from a JSON file on every call.
// A missing or unparseable file degrades to the built-in Ontario defaults;
// it never fails the request.
type FileProvider struct {
	path   string
	logger *slog.Logger
}

// NewFileProvider creates a file-backed settings provider. An empty path
// always yields the defaults.
func NewFileProvider(path string, logger *slog.Logger) *FileProvider {
	return &FileProvider{path: path, logger: logger}
}

// Get implements Provider.
func (p *FileProvider) Get(_ context.Context) (*domain.TenantSettings, error) {
	defaults := domain.DefaultTenantSettings()
	if p.path == "" {
		return defaults, nil
	}

	raw, err := os.ReadFile(p.path)
	if err != nil {
		if !os.IsNotExist(err) && p.logger != nil {
			p.logger.Warn("failed to read settings file, using defaults", "path", p.path, "error", err)
		}
		return defaults, nil
	}

	var loaded domain.TenantSettings
	if err := json.Unmarshal(raw, &loaded); err != nil {
		if p.logger != nil {
			p.logger.Warn("failed to parse settings file, using defaults", "path", p.path, "error", err)
		}
		return defaults, nil
	}

	// Partial files inherit defaults for anything omitted.
	if len(loaded.LSCategories) == 0 {
		loaded.LSCategories = defaults.LSCategories
	}
	if loaded.Jurisdiction == "" {
		loaded.Jurisdiction = defaults.Jurisdiction
	}
	if len(loaded.Subjects) == 0 {
		loaded.Subjects = defaults.Subjects
	}
	if len(loaded.GradeBands) == 0 {
		loaded.GradeBands = defaults.GradeBands
	}
	if len(loaded.Terms) == 0 {
		loaded.Terms = defaults.Terms
	}

	return &loaded, nil
}

// StaticProvider returns a fixed settings value. Used in tests.
type StaticProvider struct {
	Settings *domain.TenantSettings
}

// Get implements Provider.
func (p *StaticProvider) Get(_ context.Context) (*domain.TenantSettings, error) {
	if p.Settings == nil {
		return domain.DefaultTenantSettings(), nil
	}
	return p.Settings, nil
}
