package auth

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/htetarkarhlaing/share-book-api/internal/domain"
	"github.com/htetarkarhlaing/share-book-api/internal/pkg/password"
)

// AdminIdentity is the projection returned for created and authenticated
// admins; it never carries the password hash.
type AdminIdentity struct {
	LoginID   string `json:"login_id"`
	Name      string `json:"name,omitempty"`
	CreatedAt string `json:"created_at"`
}

// AdminRegister creates an administrator under a freshly generated unique
// login id. The id is immutable and never reused.
func (s *Service) AdminRegister(ctx context.Context, req AdminRegisterRequest) (*AdminIdentity, error) {
	loginID, err := s.loginIDs.Generate(ctx)
	if err != nil {
		return nil, err
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	admin := &domain.Admin{
		LoginID:      loginID,
		Name:         req.Name,
		PasswordHash: hash,
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		return nil, err
	}

	return &AdminIdentity{
		LoginID:   admin.LoginID,
		CreatedAt: admin.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}

// AdminLogin issues a single admin-access token. Admin sessions do not
// rotate: there is no refresh token in this domain.
func (s *Service) AdminLogin(ctx context.Context, req AdminLoginRequest) (string, error) {
	admin, err := s.admins.GetByLoginID(ctx, req.LoginID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrAdminNotFound
		}
		return "", err
	}

	if !password.Verify(admin.PasswordHash, req.Password) {
		return "", ErrPasswordMismatch
	}

	return s.tokens.GenerateAdminAccess(admin.LoginID)
}

// AdminLogout revokes the presented admin-access token.
func (s *Service) AdminLogout(ctx context.Context, loginID, accessToken string) (string, error) {
	if _, err := s.admins.GetByLoginID(ctx, loginID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrAdminNotFound
		}
		return "", err
	}

	s.adminRevoker.Add(accessToken)
	return "Logout successful", nil
}

// AdminMe returns the authenticated admin's identity projection.
func (s *Service) AdminMe(ctx context.Context, loginID string) (*AdminIdentity, error) {
	admin, err := s.admins.GetByLoginID(ctx, loginID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &AdminIdentity{
		LoginID:   admin.LoginID,
		Name:      admin.Name,
		CreatedAt: admin.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}

// ---- administrative user management (pass-through, admin-guarded) ----

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

func (s *Service) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrInternal
	}
	user.PasswordHash = ""
	return user, nil
}

// UpdateUserType switches a user between the NORMAL and PREMIUM tiers.
func (s *Service) UpdateUserType(ctx context.Context, id string, req UserTypeUpdateRequest) (string, error) {
	if _, err := s.users.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", ErrInternal
	}
	if err := s.users.UpdateType(ctx, id, req.UserType); err != nil {
		return "", ErrInternal
	}
	return "User updated successfully", nil
}

// SoftDeleteUser marks the account DELETED; the record stays for audit and
// the email is never freed for re-registration.
func (s *Service) SoftDeleteUser(ctx context.Context, id string) (string, error) {
	if _, err := s.users.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", ErrInternal
	}
	if err := s.users.UpdateStatus(ctx, id, domain.StatusDeleted); err != nil {
		return "", ErrInternal
	}
	return "User deleted successfully", nil
}
