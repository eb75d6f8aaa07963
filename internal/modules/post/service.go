package post

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/htetarkarhlaing/share-book-api/internal/domain"
	"github.com/htetarkarhlaing/share-book-api/internal/pkg/apperror"
)

var (
	ErrPostNotFound = apperror.NotFound("Post not found")
	ErrNotPostOwner = apperror.Unauthorized("User do not own this post")
)

// Directory — the record-store methods the post service uses.
type Directory interface {
	Create(ctx context.Context, p *domain.Post) error
	GetByID(ctx context.Context, id string) (*domain.Post, error)
	ListPublished(ctx context.Context) ([]domain.Post, error)
	ListByUserID(ctx context.Context, userID string) ([]domain.Post, error)
	Update(ctx context.Context, id string, title, content, status *string, userID string) (*domain.Post, error)
	SoftDeleteByUser(ctx context.Context, id, userID string) error
	MarkReportedByAdmin(ctx context.Context, id, adminLoginID string) (*domain.Post, error)
}

// ReportDirectory stores user complaints against posts.
type ReportDirectory interface {
	Create(ctx context.Context, r *domain.Report) error
}

type Service struct {
	posts   Directory
	reports ReportDirectory
}

func NewService(posts Directory, reports ReportDirectory) *Service {
	return &Service{posts: posts, reports: reports}
}

// ListPublished returns the public feed.
func (s *Service) ListPublished(ctx context.Context) ([]domain.Post, error) {
	return s.posts.ListPublished(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	return s.getPost(ctx, id)
}

func (s *Service) ListByUserID(ctx context.Context, userID string) ([]domain.Post, error) {
	return s.posts.ListByUserID(ctx, userID)
}

// GetOwned fetches a post and enforces that userID is its author.
func (s *Service) GetOwned(ctx context.Context, id, userID string) (*domain.Post, error) {
	post, err := s.getPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.CreatedByID != userID {
		return nil, ErrNotPostOwner
	}
	return post, nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest, userID string) (*domain.Post, error) {
	post := &domain.Post{
		Title:       req.Title,
		Content:     req.Content,
		Status:      req.Status,
		CreatedByID: userID,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// UpdateOwned patches an owned post; absent fields keep their stored value.
func (s *Service) UpdateOwned(ctx context.Context, id, userID string, req UpdateRequest) (*domain.Post, error) {
	post, err := s.getPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.CreatedByID != userID {
		return nil, ErrNotPostOwner
	}

	var status *string
	if req.Status != nil {
		v := string(*req.Status)
		status = &v
	}
	return s.posts.Update(ctx, id, req.Title, req.Content, status, userID)
}

// DeleteOwned soft-deletes the caller's post.
func (s *Service) DeleteOwned(ctx context.Context, id, userID string) error {
	post, err := s.getPost(ctx, id)
	if err != nil {
		return err
	}
	if post.CreatedByID != userID {
		return ErrNotPostOwner
	}
	return s.posts.SoftDeleteByUser(ctx, id, userID)
}

// MarkReported flips a post to REPORTED on behalf of an admin.
func (s *Service) MarkReported(ctx context.Context, id, adminLoginID string) (*domain.Post, error) {
	if _, err := s.getPost(ctx, id); err != nil {
		return nil, err
	}
	return s.posts.MarkReportedByAdmin(ctx, id, adminLoginID)
}

// Report files a complaint against a post.
func (s *Service) Report(ctx context.Context, postID, userID string, req ReportRequest) (string, error) {
	if _, err := s.getPost(ctx, postID); err != nil {
		return "", err
	}
	report := &domain.Report{
		Subject:      req.Subject,
		PostID:       postID,
		ReportedByID: userID,
	}
	if err := s.reports.Create(ctx, report); err != nil {
		return "", apperror.Internal("Internal server error")
	}
	return "Post reported successfully", nil
}

func (s *Service) getPost(ctx context.Context, id string) (*domain.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}
