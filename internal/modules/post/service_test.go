package post

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

func (m *mockDirectory) Create(ctx context.Context, p *domain.Post) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockDirectory) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *mockDirectory) ListPublished(ctx context.Context) ([]domain.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Post), args.Error(1)
}

func (m *mockDirectory) ListByUserID(ctx context.Context, userID string) ([]domain.Post, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Post), args.Error(1)
}

func (m *mockDirectory) Update(ctx context.Context, id string, title, content, status *string, userID string) (*domain.Post, error) {
	args := m.Called(ctx, id, title, content, status, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *mockDirectory) SoftDeleteByUser(ctx context.Context, id, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *mockDirectory) MarkReportedByAdmin(ctx context.Context, id, adminLoginID string) (*domain.Post, error) {
	args := m.Called(ctx, id, adminLoginID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

type mockReportDirectory struct {
	mock.Mock
}

func (m *mockReportDirectory) Create(ctx context.Context, r *domain.Report) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func ownedPost() *domain.Post {
	return &domain.Post{
		ID:          "p1",
		Title:       "title",
		Content:     "content",
		Status:      domain.PostPublished,
		CreatedByID: "u1",
	}
}

func TestService_GetOwned_RejectsForeignPost(t *testing.T) {
	posts := new(mockDirectory)
	posts.On("GetByID", mock.Anything, "p1").Return(ownedPost(), nil)

	svc := NewService(posts, new(mockReportDirectory))

	_, err := svc.GetOwned(context.Background(), "p1", "someone-else")

	assert.ErrorIs(t, err, ErrNotPostOwner)
}

func TestService_GetOwned_Success(t *testing.T) {
	posts := new(mockDirectory)
	posts.On("GetByID", mock.Anything, "p1").Return(ownedPost(), nil)

	svc := NewService(posts, new(mockReportDirectory))

	post, err := svc.GetOwned(context.Background(), "p1", "u1")

	assert.NoError(t, err)
	assert.Equal(t, "p1", post.ID)
}

func TestService_GetByID_NotFound(t *testing.T) {
	posts := new(mockDirectory)
	posts.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(posts, new(mockReportDirectory))

	_, err := svc.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestService_Create(t *testing.T) {
	posts := new(mockDirectory)
	posts.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Post) bool {
		return p.Title == "title" && p.Status == domain.PostDraft && p.CreatedByID == "u1"
	})).Return(nil)

	svc := NewService(posts, new(mockReportDirectory))

	post, err := svc.Create(context.Background(), CreateRequest{
		Title:   "title",
		Content: "content",
		Status:  domain.PostDraft,
	}, "u1")

	assert.NoError(t, err)
	assert.Equal(t, domain.PostDraft, post.Status)
	posts.AssertExpectations(t)
}

func TestService_UpdateOwned_RejectsForeignPost(t *testing.T) {
	posts := new(mockDirectory)
	posts.On("GetByID", mock.Anything, "p1").Return(ownedPost(), nil)

	svc := NewService(posts, new(mockReportDirectory))

	title := "new title"
	_, err := svc.UpdateOwned(context.Background(), "p1", "someone-else", UpdateRequest{Title: &title})

	assert.ErrorIs(t, err, ErrNotPostOwner)
	posts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpdateOwned_PartialPatch(t *testing.T) {
	posts := new(mockDirectory)
	posts.On("GetByID", mock.Anything, "p1").Return(ownedPost(), nil)

	title := "new title"
	updated := ownedPost()
	updated.Title = title
	posts.On("Update", mock.Anything, "p1", &title, (*string)(nil), (*string)(nil), "u1").
		Return(updated, nil)

	svc := NewService(posts, new(mockReportDirectory))

	post, err := svc.UpdateOwned(context.Background(), "p1", "u1", UpdateRequest{Title: &title})

	assert.NoError(t, err)
	assert.Equal(t, title, post.Title)
	posts.AssertExpectations(t)
}

func TestService_DeleteOwned(t *testing.T) {
	posts := new(mockDirectory)
	posts.On("GetByID", mock.Anything, "p1").Return(ownedPost(), nil)
	posts.On("SoftDeleteByUser", mock.Anything, "p1", "u1").Return(nil)

	svc := NewService(posts, new(mockReportDirectory))

	err := svc.DeleteOwned(context.Background(), "p1", "u1")

	assert.NoError(t, err)
	posts.AssertExpectations(t)
}

func TestService_MarkReported(t *testing.T) {
	posts := new(mockDirectory)
	posts.On("GetByID", mock.Anything, "p1").Return(ownedPost(), nil)

	reported := ownedPost()
	reported.Status = domain.PostReported
	posts.On("MarkReportedByAdmin", mock.Anything, "p1", "abc12345").Return(reported, nil)

	svc := NewService(posts, new(mockReportDirectory))

	post, err := svc.MarkReported(context.Background(), "p1", "abc12345")

	assert.NoError(t, err)
	assert.Equal(t, domain.PostReported, post.Status)
}

func TestService_Report(t *testing.T) {
	posts := new(mockDirectory)
	reports := new(mockReportDirectory)
	posts.On("GetByID", mock.Anything, "p1").Return(ownedPost(), nil)
	reports.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.Report) bool {
		return r.PostID == "p1" && r.ReportedByID == "u2" && r.Subject == "spam"
	})).Return(nil)

	svc := NewService(posts, reports)

	message, err := svc.Report(context.Background(), "p1", "u2", ReportRequest{Subject: "spam"})

	assert.NoError(t, err)
	assert.Equal(t, "Post reported successfully", message)
	reports.AssertExpectations(t)
}

func TestService_Report_PostMissing(t *testing.T) {
	posts := new(mockDirectory)
	reports := new(mockReportDirectory)
	posts.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(posts, reports)

	_, err := svc.Report(context.Background(), "missing", "u2", ReportRequest{Subject: "spam"})

	assert.ErrorIs(t, err, ErrPostNotFound)
	reports.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
