package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/htetarkarhlaing/share-book-api/internal/domain"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

type postModel struct {
	ID               string    `gorm:"column:post_id;primaryKey"`
	Title            string    `gorm:"column:title"`
	Content          string    `gorm:"column:content"`
	Status           string    `gorm:"column:status"`
	CreatedByID      string    `gorm:"column:created_by_id"`
	UpdatedByID      *string   `gorm:"column:updated_by_id"`
	DeletedByID      *string   `gorm:"column:deleted_by_id"`
	DeletedByAdminID *string   `gorm:"column:deleted_by_admin_id"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (postModel) TableName() string { return "posts" }

// postWithAuthor joins the author projection listings return.
type postWithAuthor struct {
	postModel
	AuthorName  string `gorm:"column:author_name"`
	AuthorEmail string `gorm:"column:author_email"`
}

func toDomainPost(m postWithAuthor) *domain.Post {
	p := &domain.Post{
		ID:          m.ID,
		Title:       m.Title,
		Content:     m.Content,
		Status:      domain.PostStatus(m.Status),
		CreatedByID: m.CreatedByID,
		CreatedBy: domain.PostAuthor{
			UserID: m.CreatedByID,
			Name:   m.AuthorName,
			Email:  m.AuthorEmail,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.UpdatedByID != nil {
		p.UpdatedByID = *m.UpdatedByID
	}
	if m.DeletedByID != nil {
		p.DeletedByID = *m.DeletedByID
	}
	if m.DeletedByAdminID != nil {
		p.DeletedByAdminID = *m.DeletedByAdminID
	}
	return p
}

func (r *PostRepository) withAuthor(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("posts").
		Select("posts.*, u.name AS author_name, u.email AS author_email").
		Joins("JOIN users u ON u.user_id = posts.created_by_id")
}

func (r *PostRepository) Create(ctx context.Context, p *domain.Post) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	m := postModel{
		ID:          p.ID,
		Title:       p.Title,
		Content:     p.Content,
		Status:      string(p.Status),
		CreatedByID: p.CreatedByID,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	p.CreatedAt = m.CreatedAt
	p.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	var m postWithAuthor
	tx := r.withAuthor(ctx).Where("posts.post_id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainPost(m), nil
}

// ListPublished returns publicly visible posts, most recently updated first.
func (r *PostRepository) ListPublished(ctx context.Context) ([]domain.Post, error) {
	var models []postWithAuthor
	tx := r.withAuthor(ctx).
		Where("posts.status = ?", string(domain.PostPublished)).
		Order("posts.updated_at DESC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainPosts(models), nil
}

func (r *PostRepository) ListByUserID(ctx context.Context, userID string) ([]domain.Post, error) {
	var models []postWithAuthor
	tx := r.withAuthor(ctx).
		Where("posts.created_by_id = ?", userID).
		Order("posts.updated_at DESC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainPosts(models), nil
}

func toDomainPosts(models []postWithAuthor) []domain.Post {
	posts := make([]domain.Post, 0, len(models))
	for _, m := range models {
		posts = append(posts, *toDomainPost(m))
	}
	return posts
}

// Update applies non-nil patch fields and stamps the editing user.
func (r *PostRepository) Update(ctx context.Context, id string, title, content, status *string, userID string) (*domain.Post, error) {
	updates := map[string]any{"updated_by_id": userID}
	if title != nil {
		updates["title"] = *title
	}
	if content != nil {
		updates["content"] = *content
	}
	if status != nil {
		updates["status"] = *status
	}
	if err := r.db.WithContext(ctx).Model(&postModel{}).
		Where("post_id = ?", id).
		Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// SoftDeleteByUser marks the post DELETED on behalf of its owner.
func (r *PostRepository) SoftDeleteByUser(ctx context.Context, id, userID string) error {
	return r.db.WithContext(ctx).Model(&postModel{}).
		Where("post_id = ?", id).
		Updates(map[string]any{
			"status":        string(domain.PostDeleted),
			"deleted_by_id": userID,
		}).Error
}

// MarkReportedByAdmin flips the post to REPORTED, recording the acting admin.
func (r *PostRepository) MarkReportedByAdmin(ctx context.Context, id, adminLoginID string) (*domain.Post, error) {
	if err := r.db.WithContext(ctx).Model(&postModel{}).
		Where("post_id = ?", id).
		Updates(map[string]any{
			"status":              string(domain.PostReported),
			"deleted_by_admin_id": adminLoginID,
		}).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}
