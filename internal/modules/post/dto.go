package post

import "github.com/htetarkarhlaing/share-book-api/internal/domain"

type CreateRequest struct {
	Title   string            `json:"title" binding:"required"`
	Content string            `json:"content" binding:"required"`
	Status  domain.PostStatus `json:"status" binding:"required,oneof=DRAFT PUBLISHED"`
}

// UpdateRequest is a pointer patch: nil fields keep their stored value.
type UpdateRequest struct {
	Title   *string            `json:"title"`
	Content *string            `json:"content"`
	Status  *domain.PostStatus `json:"status" binding:"omitempty,oneof=DRAFT PUBLISHED"`
}

type ReportRequest struct {
	Subject string `json:"subject" binding:"required"`
}
