package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/htetarkarhlaing/share-book-api/internal/domain"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

type categoryModel struct {
	ID        string    `gorm:"column:category_id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Status    string    `gorm:"column:status"`
	CreatedBy *string   `gorm:"column:created_by_id"`
	UpdatedBy *string   `gorm:"column:updated_by_id"`
	DeletedBy *string   `gorm:"column:deleted_by_id"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (categoryModel) TableName() string { return "categories" }

func toDomainCategory(m categoryModel) *domain.Category {
	c := &domain.Category{
		ID:        m.ID,
		Name:      m.Name,
		Status:    domain.CategoryStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.CreatedBy != nil {
		c.CreatedBy = *m.CreatedBy
	}
	if m.UpdatedBy != nil {
		c.UpdatedBy = *m.UpdatedBy
	}
	if m.DeletedBy != nil {
		c.DeletedBy = *m.DeletedBy
	}
	return c
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	createdBy := c.CreatedBy
	m := categoryModel{
		ID:        c.ID,
		Name:      c.Name,
		Status:    string(domain.CategoryActive),
		CreatedBy: &createdBy,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainCategory(m)
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	var m categoryModel
	tx := r.db.WithContext(ctx).Where("category_id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainCategory(m), nil
}

// List returns every category that has not been soft-deleted.
func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	var models []categoryModel
	tx := r.db.WithContext(ctx).
		Where("status <> ?", string(domain.CategoryDeleted)).
		Order("created_at DESC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	categories := make([]domain.Category, 0, len(models))
	for _, m := range models {
		categories = append(categories, *toDomainCategory(m))
	}
	return categories, nil
}

func (r *CategoryRepository) UpdateName(ctx context.Context, id, name, adminLoginID string) (*domain.Category, error) {
	if err := r.db.WithContext(ctx).Model(&categoryModel{}).
		Where("category_id = ?", id).
		Updates(map[string]any{
			"name":          name,
			"updated_by_id": adminLoginID,
		}).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// SoftDelete marks the category DELETED, keeping the row for audit.
func (r *CategoryRepository) SoftDelete(ctx context.Context, id, adminLoginID string) (*domain.Category, error) {
	if err := r.db.WithContext(ctx).Model(&categoryModel{}).
		Where("category_id = ?", id).
		Updates(map[string]any{
			"status":        string(domain.CategoryDeleted),
			"deleted_by_id": adminLoginID,
		}).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}
