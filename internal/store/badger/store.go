// Package badger implements the template store on BadgerDB for deployments
// that run without SQLite. Templates and tenants are stored as JSON values
// under prefixed keys; there is no schema to probe, so the shape questions
// the SQLite backend answers at open time do not arise here.
package badger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/classroomhub/hub-server/internal/domain"
	"github.com/classroomhub/hub-server/internal/id"
	"github.com/classroomhub/hub-server/internal/store"
)

const (
	templatePrefix = "template/"
	tenantPrefix   = "tenant/"
)

// Store provides Badger-backed persistence for the comment bank.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
}

// Open creates a Badger store rooted at dir.
func Open(dir string, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}

	if logger != nil {
		logger.Info("badger store opened", "dir", dir)
	}
	return &Store{db: db, logger: logger}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// ListTemplates implements store.TemplateStore.
func (s *Store) ListTemplates(ctx context.Context) ([]*domain.Template, error) {
	var templates []*domain.Template

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(templatePrefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var t domain.Template
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &t)
			})
			if err != nil {
				return fmt.Errorf("decode template %s: %w", it.Item().Key(), err)
			}
			templates = append(templates, &t)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return templates, nil
}

// GetTemplate implements store.TemplateStore.
func (s *Store) GetTemplate(ctx context.Context, templateID string) (*domain.Template, error) {
	var t domain.Template
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(templatePrefix + templateID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &t)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, store.ErrTemplateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get template: %w", err)
	}
	return &t, nil
}

// CreateTemplate implements store.TemplateStore.
func (s *Store) CreateTemplate(ctx context.Context, t *domain.Template) error {
	return s.put(t)
}

// UpdateTemplate implements store.TemplateStore.
func (s *Store) UpdateTemplate(ctx context.Context, t *domain.Template) error {
	if _, err := s.GetTemplate(ctx, t.ID); err != nil {
		return err
	}
	return s.put(t)
}

// DeleteTemplate implements store.TemplateStore.
func (s *Store) DeleteTemplate(ctx context.Context, templateID string) error {
	if _, err := s.GetTemplate(ctx, templateID); err != nil {
		return err
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(templatePrefix + templateID))
	})
	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	return nil
}

// ResolveDefaultTenant returns the default tenant, the first stored tenant,
// or a freshly created one.
func (s *Store) ResolveDefaultTenant(ctx context.Context) (*domain.Tenant, error) {
	var tenants []*domain.Tenant

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(tenantPrefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var tenant domain.Tenant
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &tenant)
			})
			if err != nil {
				return fmt.Errorf("decode tenant %s: %w", it.Item().Key(), err)
			}
			tenants = append(tenants, &tenant)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var first *domain.Tenant
	for _, tenant := range tenants {
		if tenant.IsDefault {
			return tenant, nil
		}
		if first == nil || tenant.CreatedAt.Before(first.CreatedAt) {
			first = tenant
		}
	}
	if first != nil {
		return first, nil
	}

	created := &domain.Tenant{
		ID:        id.MustGenerate("tenant"),
		Name:      "default",
		IsDefault: true,
		CreatedAt: time.Now().UTC(),
	}
	raw, err := json.Marshal(created)
	if err != nil {
		return nil, fmt.Errorf("encode tenant: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(tenantPrefix+created.ID), raw)
	})
	if err != nil {
		return nil, fmt.Errorf("create default tenant: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("created default tenant", "tenant_id", created.ID)
	}
	return created, nil
}

func (s *Store) put(t *domain.Template) error {
	raw, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("encode template: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(templatePrefix+t.ID), raw)
	})
	if err != nil {
		return fmt.Errorf("put template: %w", err)
	}
	return nil
}
