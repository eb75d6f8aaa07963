package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/htetarkarhlaing/share-book-api/internal/domain"
	"github.com/htetarkarhlaing/share-book-api/internal/pkg/apperror"
	"github.com/htetarkarhlaing/share-book-api/internal/pkg/mailer"
	"github.com/htetarkarhlaing/share-book-api/internal/pkg/password"
)

// Service owns every account-state transition for both principals. It is the
// only writer of user status, one-time codes and refresh-token hashes.
type Service struct {
	users        UserDirectory
	admins       AdminDirectory
	tokens       TokenIssuer
	mail         mailer.Mailer
	userRevoker  Revoker
	adminRevoker Revoker
	loginIDs     *LoginIDGenerator
	pepper       string
	logger       *zap.Logger
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func NewService(
	users UserDirectory,
	admins AdminDirectory,
	tokens TokenIssuer,
	mail mailer.Mailer,
	userRevoker Revoker,
	adminRevoker Revoker,
	pepper string,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.L()
	}
	return &Service{
		users:        users,
		admins:       admins,
		tokens:       tokens,
		mail:         mail,
		userRevoker:  userRevoker,
		adminRevoker: adminRevoker,
		loginIDs:     NewLoginIDGenerator(admins),
		pepper:       pepper,
		logger:       logger,
	}
}

// Register starts user registration. An email that already belongs to a
// VERIFIED account conflicts; NOT_VERIFIED must confirm first; SUSPENDED and
// DELETED accounts are rejected outright. The verification mail is
// best-effort: a failed send never rolls back the created account.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (string, error) {
	existing, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}
	if existing != nil {
		switch existing.Status {
		case domain.StatusVerified:
			return "", ErrEmailAlreadyUsed
		case domain.StatusNotVerified:
			return "", ErrAccountNotActivated
		case domain.StatusSuspended:
			return "", ErrAccountSuspended
		default:
			return "", ErrAccountDeleted
		}
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return "", err
	}

	code, err := generateOTP()
	if err != nil {
		return "", err
	}

	user := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Name:         req.Username,
		PasswordHash: hash,
		Status:       domain.StatusNotVerified,
		Type:         req.Type,
		OTP:          code,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return "", err
	}

	if mailErr := s.mail.Send(ctx, user.Email, "Welcome to ShareBook", mailer.VerifyTemplate(code, user.Name)); mailErr != nil {
		s.logger.Warn("verification mail send failed",
			zap.String("email", user.Email),
			zap.Error(mailErr),
		)
	}

	return fmt.Sprintf("Verification code is sent to %s.", user.Email), nil
}

// Confirm turns a NOT_VERIFIED account VERIFIED when the one-time code
// matches, clears the code, and issues the first token pair. The transition
// is one-way: a second confirm fails because the code is gone.
func (s *Service) Confirm(ctx context.Context, req ConfirmRequest) (*TokenPair, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	switch user.Status {
	case domain.StatusSuspended:
		return nil, ErrAccountSuspended
	case domain.StatusDeleted:
		return nil, ErrAccountDeleted
	}

	if user.OTP == "" || user.OTP != req.OTP {
		return nil, ErrOTPMismatch
	}

	if err := s.users.Confirm(ctx, user.ID); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user.ID)
}

// Login authenticates a VERIFIED user. The not-verified gate fires before
// the password comparison.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*TokenPair, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	switch user.Status {
	case domain.StatusNotVerified:
		return nil, ErrNotVerifiedYet
	case domain.StatusSuspended:
		return nil, ErrAccountSuspended
	case domain.StatusDeleted:
		return nil, ErrAccountDeleted
	}

	if !password.Verify(user.PasswordHash, req.Password) {
		return nil, ErrPasswordMismatch
	}

	return s.issueTokens(ctx, user.ID)
}

// RefreshToken rotates the session: the presented refresh token must verify
// against the refresh secret AND hash-match the stored value. The swap is a
// compare-and-swap on the stored hash, so of two concurrent refreshes with
// the same token exactly one wins; the loser is told the token is invalid.
func (s *Service) RefreshToken(ctx context.Context, rawToken string) (*TokenPair, error) {
	if rawToken == "" {
		return nil, ErrInvalidRefreshToken
	}

	claims, err := s.tokens.VerifyUserRefresh(rawToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	switch user.Status {
	case domain.StatusSuspended:
		return nil, ErrAccountSuspended
	case domain.StatusDeleted:
		return nil, ErrAccountDeleted
	}

	presentedHash := s.hashToken(rawToken)
	if user.RefreshTokenHash == "" || user.RefreshTokenHash != presentedHash {
		return nil, ErrInvalidRefreshToken
	}

	accessToken, err := s.tokens.GenerateUserAccess(user.ID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.GenerateUserRefresh(user.ID)
	if err != nil {
		return nil, err
	}

	swapped, err := s.users.RotateRefreshTokenHash(ctx, user.ID, presentedHash, s.hashToken(refreshToken))
	if err != nil {
		return nil, err
	}
	if !swapped {
		return nil, ErrInvalidRefreshToken
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Logout clears the stored refresh hash and revokes the presented access
// token for the rest of the process lifetime.
func (s *Service) Logout(ctx context.Context, userID, accessToken string) (string, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	if err := s.users.ClearTokens(ctx, userID); err != nil {
		return "", err
	}
	s.userRevoker.Add(accessToken)

	return "Logout successful", nil
}

// RequestPasswordReset emails a one-hour recovery token signed in the
// multi-purpose domain.
func (s *Service) RequestPasswordReset(ctx context.Context, req ForgetPasswordRequest) (string, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperror.NotFound("There is no user with provided email.")
		}
		return "", err
	}

	token, err := s.tokens.GenerateReset(user.ID)
	if err != nil {
		return "", ErrInternal
	}

	if err := s.mail.Send(ctx, user.Email, "Important", mailer.PasswordResetTemplate(token, user.Name)); err != nil {
		s.logger.Error("password reset mail send failed",
			zap.String("email", user.Email),
			zap.Error(err),
		)
		return "", ErrInternal
	}

	return fmt.Sprintf("Password reset link is sent to %s.", user.Email), nil
}

// ResetPassword sets a new password for the user embedded in the presented
// reset token. The token stays valid until its one-hour expiry; there is no
// single-use marking.
func (s *Service) ResetPassword(ctx context.Context, rawToken, newPassword string) (string, error) {
	if rawToken == "" {
		return "", ErrInvalidResetToken
	}

	claims, err := s.tokens.VerifyReset(rawToken)
	if err != nil {
		return "", ErrInvalidResetToken
	}

	if _, err := s.users.GetByID(ctx, claims.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	hash, err := password.Hash(newPassword)
	if err != nil {
		return "", err
	}
	if err := s.users.UpdatePassword(ctx, claims.UserID, hash); err != nil {
		return "", err
	}

	return "Password reset successfully", nil
}

// ChangePassword verifies the current password before storing the new one.
func (s *Service) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !password.Verify(user.PasswordHash, req.CurrentPassword) {
		return nil, apperror.Unauthorized("User password not match")
	}

	hash, err := password.Hash(req.NewPassword)
	if err != nil {
		return nil, err
	}
	if err := s.users.UpdatePassword(ctx, userID, hash); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// Me returns the safe profile projection of the authenticated user.
func (s *Service) Me(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// UpdateMe applies a profile patch. A field is updated only when present and
// non-empty; a patch carrying neither email nor username is a validation
// error.
func (s *Service) UpdateMe(ctx context.Context, userID string, req UpdateMeRequest) (*domain.User, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	email := presentField(req.Email)
	name := presentField(req.Username)
	if email == nil && name == nil {
		return nil, ErrEmptyProfilePatch
	}

	user, err := s.users.UpdateProfile(ctx, userID, email, name)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *Service) issueTokens(ctx context.Context, userID string) (*TokenPair, error) {
	accessToken, err := s.tokens.GenerateUserAccess(userID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.GenerateUserRefresh(userID)
	if err != nil {
		return nil, err
	}
	if err := s.users.SetRefreshTokenHash(ctx, userID, s.hashToken(refreshToken)); err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// hashToken digests a refresh token for storage. Signed JWTs exceed bcrypt's
// 72-byte input limit, so the stored form is a peppered sha256 hex digest.
func (s *Service) hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw + s.pepper))
	return hex.EncodeToString(sum[:])
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

func presentField(v *string) *string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil
	}
	return v
}
