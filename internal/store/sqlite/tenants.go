package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/classroomhub/hub-server/internal/domain"
	"github.com/classroomhub/hub-server/internal/id"
	"github.com/classroomhub/hub-server/internal/store"
)

// ResolveDefaultTenant returns the default tenant, the oldest tenant when no
// default is flagged, or a freshly created one when the table is empty.
// Legacy databases have no tenants table at all; those return
// store.ErrTenantNotFound and templates stay unlinked.
func (s *Store) ResolveDefaultTenant(ctx context.Context) (*domain.Tenant, error) {
	if !s.hasTenants {
		return nil, store.ErrTenantNotFound
	}

	tenant, err := s.scanTenant(s.db.QueryRowContext(ctx,
		`SELECT id, name, is_default, created_at FROM tenants WHERE is_default = 1 ORDER BY created_at LIMIT 1`))
	if err == nil {
		return tenant, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("resolve default tenant: %w", err)
	}

	tenant, err = s.scanTenant(s.db.QueryRowContext(ctx,
		`SELECT id, name, is_default, created_at FROM tenants ORDER BY created_at LIMIT 1`))
	if err == nil {
		return tenant, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("resolve first tenant: %w", err)
	}

	created := &domain.Tenant{
		ID:        id.MustGenerate("tenant"),
		Name:      "default",
		IsDefault: true,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO tenants (id, name, is_default, created_at) VALUES (?, ?, 1, ?)`,
		created.ID, created.Name, formatTime(created.CreatedAt)); err != nil {
		return nil, fmt.Errorf("create default tenant: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("created default tenant", "tenant_id", created.ID)
	}
	return created, nil
}

func (s *Store) scanTenant(row *sql.Row) (*domain.Tenant, error) {
	var (
		t         domain.Tenant
		isDefault int
		createdAt string
	)
	if err := row.Scan(&t.ID, &t.Name, &isDefault, &createdAt); err != nil {
		return nil, err
	}
	t.IsDefault = isDefault != 0

	var err error
	if t.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parse tenant created_at: %w", err)
	}
	return &t, nil
}
