package domain

import "time"

// Tenant is a school or district account owning a comment bank.
// Template creation resolves a default tenant best-effort; a template
// without tenant linkage is still valid.
type Tenant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
}
