package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/classroomhub/hub-server/internal/domain"
	"github.com/classroomhub/hub-server/internal/store"
)

// joined is the normalized shape from the intermediate schema generation:
// comment_templates without a tags column, tags kept in a template_tags
// join table ordered by position.
type joined struct {
	db *sql.DB
}

func (j *joined) name() string { return "joined" }

const joinedColumns = `id, tenant_id, text, subject, grade_band, level, created_at, updated_at`

func (j *joined) list(ctx context.Context) ([]*domain.Template, error) {
	rows, err := j.db.QueryContext(ctx, `SELECT `+joinedColumns+` FROM comment_templates ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	var templates []*domain.Template
	byID := make(map[string]*domain.Template)
	for rows.Next() {
		t, err := j.scan(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
		byID[t.ID] = t
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	tagRows, err := j.db.QueryContext(ctx, `SELECT template_id, tag FROM template_tags ORDER BY template_id, position`)
	if err != nil {
		return nil, fmt.Errorf("list template tags: %w", err)
	}
	defer tagRows.Close()

	for tagRows.Next() {
		var templateID, tag string
		if err := tagRows.Scan(&templateID, &tag); err != nil {
			return nil, err
		}
		if t, ok := byID[templateID]; ok {
			t.Tags = append(t.Tags, tag)
		}
	}
	return templates, tagRows.Err()
}

func (j *joined) get(ctx context.Context, id string) (*domain.Template, error) {
	row := j.db.QueryRowContext(ctx, `SELECT `+joinedColumns+` FROM comment_templates WHERE id = ?`, id)
	t, err := j.scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrTemplateNotFound
	}
	if err != nil {
		return nil, err
	}

	if t.Tags, err = j.tagsFor(ctx, id); err != nil {
		return nil, err
	}
	return t, nil
}

func (j *joined) insert(ctx context.Context, t *domain.Template) error {
	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO comment_templates (id, tenant_id, text, subject, grade_band, level, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, nullable(t.TenantID), t.Text, nullable(t.Subject), nullable(t.GradeBand), nullable(t.Level),
		formatTime(t.CreatedAt), formatTime(t.UpdatedAt))
	if err != nil {
		return fmt.Errorf("insert template: %w", err)
	}

	if err := j.writeTags(ctx, tx, t.ID, t.Tags); err != nil {
		return err
	}
	return tx.Commit()
}

func (j *joined) update(ctx context.Context, t *domain.Template) error {
	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE comment_templates
		SET tenant_id = ?, text = ?, subject = ?, grade_band = ?, level = ?, updated_at = ?
		WHERE id = ?`,
		nullable(t.TenantID), t.Text, nullable(t.Subject), nullable(t.GradeBand), nullable(t.Level),
		formatTime(t.UpdatedAt), t.ID)
	if err != nil {
		return fmt.Errorf("update template: %w", err)
	}
	if err := requireAffected(res); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM template_tags WHERE template_id = ?`, t.ID); err != nil {
		return fmt.Errorf("clear template tags: %w", err)
	}
	if err := j.writeTags(ctx, tx, t.ID, t.Tags); err != nil {
		return err
	}
	return tx.Commit()
}

func (j *joined) remove(ctx context.Context, id string) error {
	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM template_tags WHERE template_id = ?`, id); err != nil {
		return fmt.Errorf("delete template tags: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM comment_templates WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	if err := requireAffected(res); err != nil {
		return err
	}
	return tx.Commit()
}

func (j *joined) writeTags(ctx context.Context, tx *sql.Tx, templateID string, tags []string) error {
	for i, tag := range tags {
		if _, err := tx.ExecContext(ctx, `INSERT INTO template_tags (template_id, tag, position) VALUES (?, ?, ?)`,
			templateID, tag, i); err != nil {
			return fmt.Errorf("insert template tag: %w", err)
		}
	}
	return nil
}

func (j *joined) tagsFor(ctx context.Context, templateID string) ([]string, error) {
	rows, err := j.db.QueryContext(ctx, `SELECT tag FROM template_tags WHERE template_id = ? ORDER BY position`, templateID)
	if err != nil {
		return nil, fmt.Errorf("get template tags: %w", err)
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

func (j *joined) scan(row rowScanner) (*domain.Template, error) {
	var (
		t                                   domain.Template
		tenantID, subject, gradeBand, level sql.NullString
		createdAt                           string
		updatedAt                           sql.NullString
	)
	if err := row.Scan(&t.ID, &tenantID, &t.Text, &subject, &gradeBand, &level, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	t.TenantID = tenantID.String
	t.Subject = subject.String
	t.GradeBand = gradeBand.String
	t.Level = level.String

	var err error
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
