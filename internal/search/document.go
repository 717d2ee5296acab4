// Package search provides full-text search over comment templates using
// Bleve. The index is memory-only and rebuilt from the store at startup;
// writes flow through the service layer so the index tracks the bank.
package search

import (
	"github.com/classroomhub/hub-server/internal/comment"
	"github.com/classroomhub/hub-server/internal/domain"
)

// TemplateDocument is the indexed form of one comment template.
// Level and categories are denormalized at index time so queries can filter
// on them without re-running tag parsing.
type TemplateDocument struct {
	ID         string   `json:"id"`
	Text       string   `json:"text"`
	Tags       []string `json:"tags,omitempty"`
	Level      string   `json:"level,omitempty"`
	Categories []string `json:"categories,omitempty"`
	UpdatedAt  int64    `json:"updated_at"` // Unix millis
}

// NewTemplateDocument builds the indexable document for a template.
func NewTemplateDocument(t *domain.Template, emoji comment.EmojiMap) *TemplateDocument {
	level, _ := comment.ExtractLevel(t.Level, t.Tags, emoji)
	return &TemplateDocument{
		ID:         t.ID,
		Text:       t.Text,
		Tags:       t.Tags,
		Level:      string(level),
		Categories: comment.CategorySlugs(t.Tags),
		UpdatedAt:  t.UpdatedAt.UnixMilli(),
	}
}

// ToMap converts the document to a map with lowercase field names so they
// match the index mapping.
func (d *TemplateDocument) ToMap() map[string]interface{} {
	m := map[string]interface{}{
		"id":         d.ID,
		"text":       d.Text,
		"updated_at": d.UpdatedAt,
	}
	if len(d.Tags) > 0 {
		m["tags"] = d.Tags
	}
	if d.Level != "" {
		m["level"] = d.Level
	}
	if len(d.Categories) > 0 {
		m["categories"] = d.Categories
	}
	return m
}
