package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/classroomhub/hub-server/internal/domain"
	"github.com/classroomhub/hub-server/internal/store"
)

// legacy is the original comment_bank shape: the template text lives in a
// body column, tags are a comma-separated string, updated_at is NOT NULL,
// and ids in old databases may be stored as integers. Subject, grade band,
// and tenant linkage do not exist in this shape and are dropped on write.
type legacy struct {
	db *sql.DB
}

func (l *legacy) name() string { return "legacy" }

const legacyColumns = `id, body, tags, level, created_at, updated_at`

func (l *legacy) list(ctx context.Context) ([]*domain.Template, error) {
	rows, err := l.db.QueryContext(ctx, `SELECT `+legacyColumns+` FROM comment_bank ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	var templates []*domain.Template
	for rows.Next() {
		t, err := l.scan(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func (l *legacy) get(ctx context.Context, id string) (*domain.Template, error) {
	row := l.db.QueryRowContext(ctx, `SELECT `+legacyColumns+` FROM comment_bank WHERE id = ?`, id)
	t, err := l.scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		if n, ok := numericID(id); ok {
			row = l.db.QueryRowContext(ctx, `SELECT `+legacyColumns+` FROM comment_bank WHERE id = ?`, n)
			if t, err = l.scan(row); err == nil {
				return t, nil
			}
		}
		return nil, store.ErrTemplateNotFound
	}
	return t, err
}

func (l *legacy) insert(ctx context.Context, t *domain.Template) error {
	_, err := l.db.ExecContext(ctx, `
		INSERT INTO comment_bank (id, body, tags, level, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID, t.Text, encodeCSV(t.Tags), nullable(t.Level),
		formatTime(t.CreatedAt), formatTime(legacyUpdatedAt(t)))
	if err != nil {
		return fmt.Errorf("insert template: %w", err)
	}
	return nil
}

func (l *legacy) update(ctx context.Context, t *domain.Template) error {
	args := []any{t.Text, encodeCSV(t.Tags), nullable(t.Level), formatTime(legacyUpdatedAt(t))}
	res, err := l.db.ExecContext(ctx, `
		UPDATE comment_bank SET body = ?, tags = ?, level = ?, updated_at = ? WHERE id = ?`,
		append(args, t.ID)...)
	if err != nil {
		return fmt.Errorf("update template: %w", err)
	}
	if err := requireAffected(res); !errors.Is(err, store.ErrTemplateNotFound) {
		return err
	}

	if n, ok := numericID(t.ID); ok {
		res, err = l.db.ExecContext(ctx, `
			UPDATE comment_bank SET body = ?, tags = ?, level = ?, updated_at = ? WHERE id = ?`,
			append(args, n)...)
		if err != nil {
			return fmt.Errorf("update template: %w", err)
		}
		return requireAffected(res)
	}
	return store.ErrTemplateNotFound
}

// remove deletes by id, retrying with a numeric id when the textual form
// matched nothing. Old databases stored integer ids in a column without
// text affinity, where '42' and 42 do not compare equal.
func (l *legacy) remove(ctx context.Context, id string) error {
	res, err := l.db.ExecContext(ctx, `DELETE FROM comment_bank WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	if err := requireAffected(res); !errors.Is(err, store.ErrTemplateNotFound) {
		return err
	}

	if n, ok := numericID(id); ok {
		res, err = l.db.ExecContext(ctx, `DELETE FROM comment_bank WHERE id = ?`, n)
		if err != nil {
			return fmt.Errorf("delete template: %w", err)
		}
		return requireAffected(res)
	}
	return store.ErrTemplateNotFound
}

func (l *legacy) scan(row rowScanner) (*domain.Template, error) {
	var (
		t          domain.Template
		rawID      any
		tags       sql.NullString
		level      sql.NullString
		createdAt  string
		updatedAt  string
	)
	if err := row.Scan(&rawID, &t.Text, &tags, &level, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	t.ID = stringifyID(rawID)
	t.Tags = decodeCSV(tags.String)
	t.Level = level.String

	var err error
	if t.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at for %s: %w", t.ID, err)
	}
	if t.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("parse updated_at for %s: %w", t.ID, err)
	}
	return &t, nil
}

// legacyUpdatedAt satisfies the shape's NOT NULL updated_at column.
func legacyUpdatedAt(t *domain.Template) time.Time {
	if !t.UpdatedAt.IsZero() {
		return t.UpdatedAt
	}
	return t.CreatedAt
}

func numericID(id string) (int64, bool) {
	n, err := strconv.ParseInt(id, 10, 64)
	return n, err == nil
}

func stringifyID(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprint(v)
	}
}

func encodeCSV(tags []string) string {
	return strings.Join(tags, ",")
}

func decodeCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			tags = append(tags, part)
		}
	}
	return tags
}
