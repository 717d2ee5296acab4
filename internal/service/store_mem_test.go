package service

import (
	"context"
	"sync"
	"time"

	"github.com/classroomhub/hub-server/internal/domain"
	"github.com/classroomhub/hub-server/internal/store"
)

// memStore is an in-memory TemplateStore for service tests.
type memStore struct {
	mu        sync.Mutex
	templates map[string]*domain.Template
	order     []string
	tenant    *domain.Tenant
	noTenants bool
}

func newMemStore() *memStore {
	return &memStore{templates: make(map[string]*domain.Template)}
}

func (m *memStore) ListTemplates(ctx context.Context) ([]*domain.Template, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Template, 0, len(m.order))
	for _, id := range m.order {
		cp := *m.templates[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memStore) GetTemplate(ctx context.Context, id string) (*domain.Template, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.templates[id]
	if !ok {
		return nil, store.ErrTemplateNotFound
	}
	cp := *t
	return &cp, nil
}

func (m *memStore) CreateTemplate(ctx context.Context, t *domain.Template) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *t
	m.templates[t.ID] = &cp
	m.order = append(m.order, t.ID)
	return nil
}

func (m *memStore) UpdateTemplate(ctx context.Context, t *domain.Template) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.templates[t.ID]; !ok {
		return store.ErrTemplateNotFound
	}
	cp := *t
	m.templates[t.ID] = &cp
	return nil
}

func (m *memStore) DeleteTemplate(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.templates[id]; !ok {
		return store.ErrTemplateNotFound
	}
	delete(m.templates, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *memStore) ResolveDefaultTenant(ctx context.Context) (*domain.Tenant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.noTenants {
		return nil, store.ErrTenantNotFound
	}
	if m.tenant == nil {
		m.tenant = &domain.Tenant{ID: "tenant-test", Name: "default", IsDefault: true, CreatedAt: time.Now().UTC()}
	}
	return m.tenant, nil
}

func (m *memStore) Close() error { return nil }
