package domain

import "time"

type CategoryStatus string

const (
	CategoryActive  CategoryStatus = "ACTIVE"
	CategoryDeleted CategoryStatus = "DELETED"
)

// Category is an admin-curated post category. Deletion is soft: the record
// keeps its audit trail and drops out of listings.
type Category struct {
	ID        string         `json:"category_id"`
	Name      string         `json:"name"`
	Status    CategoryStatus `json:"status"`
	CreatedBy string         `json:"-"`
	UpdatedBy string         `json:"-"`
	DeletedBy string         `json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
