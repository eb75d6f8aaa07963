package domain

import "time"

// Admin is an administrator account. The login id is generator-assigned,
// unique, and never reused.
type Admin struct {
	LoginID      string    `json:"login_id"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
