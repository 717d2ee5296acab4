// Package sqlite implements the template store on SQLite, tolerating the
// three schema shapes that have existed historically: the current
// denormalized tags-array shape, a normalized join-table shape, and the
// legacy comment_bank naming. The shape is probed once at open and a named
// strategy is selected; per-call try/catch cascades do not exist here.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/classroomhub/hub-server/internal/domain"
	"github.com/classroomhub/hub-server/internal/store"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// strategy is one schema-shape implementation. Each strategy owns the exact
// column set its shape supports; fields the shape cannot store are dropped
// on write rather than erroring.
type strategy interface {
	name() string
	list(ctx context.Context) ([]*domain.Template, error)
	get(ctx context.Context, id string) (*domain.Template, error)
	insert(ctx context.Context, t *domain.Template) error
	update(ctx context.Context, t *domain.Template) error
	remove(ctx context.Context, id string) error
}

// Store provides SQLite-backed persistence for the comment bank.
type Store struct {
	db         *sql.DB
	logger     *slog.Logger
	strategy   strategy
	hasTenants bool
}

// Open creates a SQLite store at the given path. It configures WAL mode,
// probes the schema shape, and migrates a fresh database to the current
// shape. An existing database with an unrecognizable template table is the
// one case that fails: store.ErrUnsupported.
func Open(path string, logger *slog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", pragma, err)
		}
	}

	s := &Store{db: db, logger: logger}
	if err := s.probe(); err != nil {
		db.Close()
		return nil, err
	}

	if logger != nil {
		logger.Info("sqlite store opened", "path", path, "shape", s.strategy.name())
	}

	return s, nil
}

// probe inspects sqlite_master once and selects the matching strategy.
func (s *Store) probe() error {
	tables, err := s.tableNames()
	if err != nil {
		return fmt.Errorf("probe tables: %w", err)
	}

	switch {
	case tables["comment_templates"]:
		cols, err := s.columnNames("comment_templates")
		if err != nil {
			return fmt.Errorf("probe comment_templates: %w", err)
		}
		switch {
		case cols["tags"]:
			s.strategy = &denormalized{db: s.db}
		case tables["template_tags"]:
			s.strategy = &joined{db: s.db}
		default:
			return fmt.Errorf("comment_templates has neither a tags column nor a template_tags table: %w", store.ErrUnsupported)
		}

	case tables["comment_bank"]:
		s.strategy = &legacy{db: s.db}

	default:
		// Fresh database: create the current shape.
		if _, err := s.db.Exec(schemaSQL); err != nil {
			return fmt.Errorf("exec schema: %w", err)
		}
		s.strategy = &denormalized{db: s.db}
		tables["tenants"] = true
	}

	s.hasTenants = tables["tenants"]
	return nil
}

func (s *Store) tableNames() (map[string]bool, error) {
	rows, err := s.db.Query(`SELECT name FROM sqlite_master WHERE type = 'table'`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables[strings.ToLower(name)] = true
	}
	return tables, rows.Err()
}

func (s *Store) columnNames(table string) (map[string]bool, error) {
	rows, err := s.db.Query(`SELECT name FROM pragma_table_info(?)`, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		cols[strings.ToLower(name)] = true
	}
	return cols, rows.Err()
}

// Shape returns the name of the selected schema strategy.
func (s *Store) Shape() string {
	return s.strategy.name()
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ListTemplates implements store.TemplateStore.
func (s *Store) ListTemplates(ctx context.Context) ([]*domain.Template, error) {
	return s.strategy.list(ctx)
}

// GetTemplate implements store.TemplateStore.
func (s *Store) GetTemplate(ctx context.Context, id string) (*domain.Template, error) {
	return s.strategy.get(ctx, id)
}

// CreateTemplate implements store.TemplateStore.
func (s *Store) CreateTemplate(ctx context.Context, t *domain.Template) error {
	return s.strategy.insert(ctx, t)
}

// UpdateTemplate implements store.TemplateStore.
func (s *Store) UpdateTemplate(ctx context.Context, t *domain.Template) error {
	return s.strategy.update(ctx, t)
}

// DeleteTemplate implements store.TemplateStore.
func (s *Store) DeleteTemplate(ctx context.Context, id string) error {
	return s.strategy.remove(ctx, id)
}

// formatTime formats a time.Time to RFC3339Nano for storage.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// parseTime parses a RFC3339Nano string back to time.Time.
func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

// nullable converts an empty string to NULL for optional columns.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
