package model

import "time"

type User struct {
	ID           string    `json:"id"`
	RoleID       *string   `json:"role_id,omitempty"`
	AssessorID   *string   `json:"assessor_id,omitempty"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // never JSON-encode
	FirstName    string    `json:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Filled only when the caller asked for expansion.
	Role     *Role     `json:"role,omitempty"`
	Assessor *Assessor `json:"assessor,omitempty"`
}
