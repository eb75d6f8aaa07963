package auth

import (
	"context"

	"github.com/htetarkarhlaing/share-book-api/internal/domain"
	jwtpkg "github.com/htetarkarhlaing/share-book-api/internal/pkg/jwt"
)

// UserDirectory — only the record-store methods the auth service uses.
type UserDirectory interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Confirm(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, status domain.UserStatus) error
	UpdateType(ctx context.Context, id string, userType domain.UserType) error
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	UpdateProfile(ctx context.Context, id string, email, name *string) (*domain.User, error)
	SetRefreshTokenHash(ctx context.Context, id string, hash string) error
	RotateRefreshTokenHash(ctx context.Context, id string, oldHash, newHash string) (bool, error)
	ClearTokens(ctx context.Context, id string) error
}

// AdminDirectory — admin record store.
type AdminDirectory interface {
	Create(ctx context.Context, a *domain.Admin) error
	GetByLoginID(ctx context.Context, loginID string) (*domain.Admin, error)
	ExistsByLoginID(ctx context.Context, loginID string) (bool, error)
}

// TokenIssuer signs and verifies bearer tokens across the three secret domains.
type TokenIssuer interface {
	GenerateUserAccess(userID string) (string, error)
	GenerateUserRefresh(userID string) (string, error)
	GenerateReset(userID string) (string, error)
	GenerateAdminAccess(loginID string) (string, error)
	VerifyUserRefresh(tokenStr string) (*jwtpkg.UserClaims, error)
	VerifyReset(tokenStr string) (*jwtpkg.UserClaims, error)
}

// Revoker records tokens invalidated by logout.
type Revoker interface {
	Add(token string)
}
