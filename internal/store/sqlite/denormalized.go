package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/classroomhub/hub-server/internal/domain"
	"github.com/classroomhub/hub-server/internal/store"
)

// denormalized is the current schema shape: one comment_templates row per
// template with the tag list stored as a JSON array column.
type denormalized struct {
	db *sql.DB
}

func (d *denormalized) name() string { return "denormalized" }

const denormalizedColumns = `id, tenant_id, text, subject, grade_band, level, tags, created_at, updated_at`

func (d *denormalized) list(ctx context.Context) ([]*domain.Template, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT `+denormalizedColumns+` FROM comment_templates ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	var templates []*domain.Template
	for rows.Next() {
		t, err := d.scan(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func (d *denormalized) get(ctx context.Context, id string) (*domain.Template, error) {
	row := d.db.QueryRowContext(ctx, `SELECT `+denormalizedColumns+` FROM comment_templates WHERE id = ?`, id)
	t, err := d.scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrTemplateNotFound
	}
	return t, err
}

func (d *denormalized) insert(ctx context.Context, t *domain.Template) error {
	tags, err := encodeTags(t.Tags)
	if err != nil {
		return err
	}

	_, err = d.db.ExecContext(ctx, `
		INSERT INTO comment_templates (id, tenant_id, text, subject, grade_band, level, tags, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, nullable(t.TenantID), t.Text, nullable(t.Subject), nullable(t.GradeBand), nullable(t.Level),
		tags, formatTime(t.CreatedAt), formatTime(t.UpdatedAt))
	if err != nil {
		return fmt.Errorf("insert template: %w", err)
	}
	return nil
}

func (d *denormalized) update(ctx context.Context, t *domain.Template) error {
	tags, err := encodeTags(t.Tags)
	if err != nil {
		return err
	}

	res, err := d.db.ExecContext(ctx, `
		UPDATE comment_templates
		SET tenant_id = ?, text = ?, subject = ?, grade_band = ?, level = ?, tags = ?, updated_at = ?
		WHERE id = ?`,
		nullable(t.TenantID), t.Text, nullable(t.Subject), nullable(t.GradeBand), nullable(t.Level),
		tags, formatTime(t.UpdatedAt), t.ID)
	if err != nil {
		return fmt.Errorf("update template: %w", err)
	}
	return requireAffected(res)
}

func (d *denormalized) remove(ctx context.Context, id string) error {
	res, err := d.db.ExecContext(ctx, `DELETE FROM comment_templates WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	return requireAffected(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (d *denormalized) scan(row rowScanner) (*domain.Template, error) {
	var (
		t                                    domain.Template
		tenantID, subject, gradeBand, level  sql.NullString
		tags, createdAt                      string
		updatedAt                            sql.NullString
	)
	if err := row.Scan(&t.ID, &tenantID, &t.Text, &subject, &gradeBand, &level, &tags, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	t.TenantID = tenantID.String
	t.Subject = subject.String
	t.GradeBand = gradeBand.String
	t.Level = level.String

	var err error
	if t.Tags, err = decodeTags(tags); err != nil {
		return nil, fmt.Errorf("decode tags for %s: %w", t.ID, err)
	}
	if t.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at for %s: %w", t.ID, err)
	}
	if updatedAt.Valid {
		if t.UpdatedAt, err = parseTime(updatedAt.String); err != nil {
			return nil, fmt.Errorf("parse updated_at for %s: %w", t.ID, err)
		}
	} else {
		t.UpdatedAt = t.CreatedAt
	}
	return &t, nil
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("encode tags: %w", err)
	}
	return string(raw), nil
}

func decodeTags(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrTemplateNotFound
	}
	return nil
}
