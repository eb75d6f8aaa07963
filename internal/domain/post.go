package domain

import "time"

type PostStatus string

const (
	PostDraft     PostStatus = "DRAFT"
	PostPublished PostStatus = "PUBLISHED"
	PostReported  PostStatus = "REPORTED"
	PostDeleted   PostStatus = "DELETED"
)

// PostAuthor is the public projection of the user who created a post.
type PostAuthor struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// Post is user-shared content. Users soft-delete their own posts; admins
// flip reported posts to REPORTED.
type Post struct {
	ID               string     `json:"post_id"`
	Title            string     `json:"title"`
	Content          string     `json:"content"`
	Status           PostStatus `json:"status"`
	CreatedByID      string     `json:"-"`
	CreatedBy        PostAuthor `json:"created_by"`
	UpdatedByID      string     `json:"-"`
	DeletedByID      string     `json:"-"`
	DeletedByAdminID string     `json:"-"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Report records a user complaint against a post.
type Report struct {
	ID           string    `json:"report_id"`
	Subject      string    `json:"subject"`
	PostID       string    `json:"post_id"`
	ReportedByID string    `json:"reported_by_id"`
	CreatedAt    time.Time `json:"created_at"`
}
