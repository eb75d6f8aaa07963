package category

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/htetarkarhlaing/share-book-api/internal/domain"
	"github.com/htetarkarhlaing/share-book-api/internal/pkg/apperror"
)

var ErrCategoryNotFound = apperror.NotFound("Category not found")

// Directory — the record-store methods the category service uses.
type Directory interface {
	Create(ctx context.Context, c *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	UpdateName(ctx context.Context, id, name, adminLoginID string) (*domain.Category, error)
	SoftDelete(ctx context.Context, id, adminLoginID string) (*domain.Category, error)
}

// Service is straight persistence plumbing: categories carry no state
// machine beyond the soft-delete flag.
type Service struct {
	categories Directory
}

func NewService(categories Directory) *Service {
	return &Service{categories: categories}
}

func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest, adminLoginID string) (*domain.Category, error) {
	category := &domain.Category{
		Name:      req.Name,
		CreatedBy: adminLoginID,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *Service) Update(ctx context.Context, id string, req CreateRequest, adminLoginID string) (*domain.Category, error) {
	if _, err := s.categories.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return s.categories.UpdateName(ctx, id, req.Name, adminLoginID)
}

// Delete soft-deletes: the category drops out of listings but the row stays.
func (s *Service) Delete(ctx context.Context, id, adminLoginID string) (*domain.Category, error) {
	if _, err := s.categories.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return s.categories.SoftDelete(ctx, id, adminLoginID)
}
