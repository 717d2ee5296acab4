package domain

import "time"

// Template is a stored report-card comment snippet.
// Text may contain placeholder tokens of the form {{name}} that are filled
// at render time. Tags carry classification metadata (level:, category:,
// ls:, next-steps, jurisdiction markers) as free-form strings.
type Template struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id,omitempty"` // best-effort association, may be empty
	Text      string    `json:"text"`
	Subject   string    `json:"subject,omitempty"`
	GradeBand string    `json:"grade_band,omitempty"`
	Level     string    `json:"level,omitempty"` // stored level column; values outside the canonical set are treated as absent
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"` // defaults to CreatedAt when a storage variant omits it
}

// Touch updates the UpdatedAt timestamp.
func (t *Template) Touch() {
	t.UpdatedAt = time.Now().UTC()
}
