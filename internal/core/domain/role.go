package domain

import "time"

// Role is a named permission group. Users reference roles by name, not by ID,
// so renaming a role does not rewrite user documents.
type Role struct {
	ID        string    `json:"id"`
	Name      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
