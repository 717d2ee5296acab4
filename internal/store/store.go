// Package store defines the persistence interface for the comment bank.
//
// Two backends implement it: a SQLite store that tolerates several
// historical schema shapes (see store/sqlite), and a Badger key-value store
// for deployments without SQLite (see store/badger). The rest of the engine
// talks only to TemplateStore; schema variance never leaks past it.
package store

import (
	"context"
	"errors"

	"github.com/classroomhub/hub-server/internal/domain"
)

// Sentinel errors shared by all backends.
var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrTenantNotFound   = errors.New("tenant not found")
	// ErrUnsupported means every schema-variant strategy was exhausted.
	// Individual shape mismatches are recovered internally and never
	// surface; only this terminal state reaches the caller.
	ErrUnsupported = errors.New("storage shape unsupported")
)

// TemplateStore is the stable create/list/update/delete facade over the
// template collection.
type TemplateStore interface {
	// ListTemplates returns every raw template. Filtering, normalization,
	// and sorting happen in memory above the store.
	ListTemplates(ctx context.Context) ([]*domain.Template, error)

	// GetTemplate returns one template by id, or ErrTemplateNotFound.
	GetTemplate(ctx context.Context, id string) (*domain.Template, error)

	// CreateTemplate persists a new template. The caller supplies ID and
	// timestamps; backends that cannot store a field drop it silently.
	CreateTemplate(ctx context.Context, t *domain.Template) error

	// UpdateTemplate rewrites an existing template in place.
	// Returns ErrTemplateNotFound for an unknown id.
	UpdateTemplate(ctx context.Context, t *domain.Template) error

	// DeleteTemplate removes a template by id. Unknown ids are
	// ErrTemplateNotFound, never a silent success.
	DeleteTemplate(ctx context.Context, id string) error

	// ResolveDefaultTenant finds the default tenant, falling back to the
	// first tenant, falling back to creating one. ErrTenantNotFound means
	// the backend has no tenant storage at all; callers treat that as
	// "proceed without tenant linkage".
	ResolveDefaultTenant(ctx context.Context) (*domain.Tenant, error)

	// Close releases the underlying database.
	Close() error
}
