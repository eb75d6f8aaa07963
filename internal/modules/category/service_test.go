package category

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/htetarkarhlaing/share-book-api/internal/domain"
)

type mockDirectory struct {
	mock.Mock
}

func (m *mockDirectory) Create(ctx context.Context, c *domain.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockDirectory) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *mockDirectory) List(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *mockDirectory) UpdateName(ctx context.Context, id, name, adminLoginID string) (*domain.Category, error) {
	args := m.Called(ctx, id, name, adminLoginID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *mockDirectory) SoftDelete(ctx context.Context, id, adminLoginID string) (*domain.Category, error) {
	args := m.Called(ctx, id, adminLoginID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func TestService_Create_StampsActingAdmin(t *testing.T) {
	dir := new(mockDirectory)
	dir.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Category) bool {
		return c.Name == "fiction" && c.CreatedBy == "abc12345"
	})).Return(nil)

	svc := NewService(dir)

	category, err := svc.Create(context.Background(), CreateRequest{Name: "fiction"}, "abc12345")

	assert.NoError(t, err)
	assert.Equal(t, "fiction", category.Name)
	dir.AssertExpectations(t)
}

func TestService_GetByID_NotFound(t *testing.T) {
	dir := new(mockDirectory)
	dir.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(dir)

	_, err := svc.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestService_Update(t *testing.T) {
	dir := new(mockDirectory)
	dir.On("GetByID", mock.Anything, "c1").
		Return(&domain.Category{ID: "c1", Name: "old", Status: domain.CategoryActive}, nil)
	dir.On("UpdateName", mock.Anything, "c1", "new", "abc12345").
		Return(&domain.Category{ID: "c1", Name: "new", Status: domain.CategoryActive}, nil)

	svc := NewService(dir)

	category, err := svc.Update(context.Background(), "c1", CreateRequest{Name: "new"}, "abc12345")

	assert.NoError(t, err)
	assert.Equal(t, "new", category.Name)
	dir.AssertExpectations(t)
}

func TestService_Delete_IsSoft(t *testing.T) {
	dir := new(mockDirectory)
	dir.On("GetByID", mock.Anything, "c1").
		Return(&domain.Category{ID: "c1", Status: domain.CategoryActive}, nil)
	dir.On("SoftDelete", mock.Anything, "c1", "abc12345").
		Return(&domain.Category{ID: "c1", Status: domain.CategoryDeleted}, nil)

	svc := NewService(dir)

	category, err := svc.Delete(context.Background(), "c1", "abc12345")

	assert.NoError(t, err)
	assert.Equal(t, domain.CategoryDeleted, category.Status)
}

func TestService_Delete_NotFound(t *testing.T) {
	dir := new(mockDirectory)
	dir.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(dir)

	_, err := svc.Delete(context.Background(), "missing", "abc12345")

	assert.ErrorIs(t, err, ErrCategoryNotFound)
	dir.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything, mock.Anything)
}
