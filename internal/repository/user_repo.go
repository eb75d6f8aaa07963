package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/htetarkarhlaing/share-book-api/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userModel struct {
	ID               string    `gorm:"column:user_id;primaryKey"`
	Email            string    `gorm:"column:email;uniqueIndex"`
	Name             string    `gorm:"column:name"`
	PasswordHash     string    `gorm:"column:password"`
	Status           string    `gorm:"column:status"`
	UserType         string    `gorm:"column:user_type"`
	OTP              *string   `gorm:"column:otp"`
	RefreshTokenHash *string   `gorm:"column:refresh_token"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

func toDomainUser(m userModel) *domain.User {
	var otp, refresh string
	if m.OTP != nil {
		otp = *m.OTP
	}
	if m.RefreshTokenHash != nil {
		refresh = *m.RefreshTokenHash
	}

	return &domain.User{
		ID:               m.ID,
		Email:            m.Email,
		Name:             m.Name,
		PasswordHash:     m.PasswordHash,
		Status:           domain.UserStatus(m.Status),
		Type:             domain.UserType(m.UserType),
		OTP:              otp,
		RefreshTokenHash: refresh,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func toUserModel(u *domain.User) userModel {
	var otp, refresh *string
	if u.OTP != "" {
		v := u.OTP
		otp = &v
	}
	if u.RefreshTokenHash != "" {
		v := u.RefreshTokenHash
		refresh = &v
	}

	return userModel{
		ID:               u.ID,
		Email:            strings.ToLower(strings.TrimSpace(u.Email)),
		Name:             u.Name,
		PasswordHash:     u.PasswordHash,
		Status:           string(u.Status),
		UserType:         string(u.Type),
		OTP:              otp,
		RefreshTokenHash: refresh,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	m := toUserModel(u)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*u = *toDomainUser(m)
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).Where("user_id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var models []userModel
	tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	users := make([]domain.User, 0, len(models))
	for _, m := range models {
		users = append(users, *toDomainUser(m))
	}
	return users, nil
}

// UpdateStatus moves the account through its status machine.
func (r *UserRepository) UpdateStatus(ctx context.Context, id string, status domain.UserStatus) error {
	return r.db.WithContext(ctx).Model(&userModel{}).
		Where("user_id = ?", id).
		Update("status", string(status)).Error
}

// UpdateType changes the user tier.
func (r *UserRepository) UpdateType(ctx context.Context, id string, userType domain.UserType) error {
	return r.db.WithContext(ctx).Model(&userModel{}).
		Where("user_id = ?", id).
		Update("user_type", string(userType)).Error
}

// Confirm marks the account VERIFIED and clears the one-time code in one write.
func (r *UserRepository) Confirm(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&userModel{}).
		Where("user_id = ?", id).
		Updates(map[string]any{
			"status": string(domain.StatusVerified),
			"otp":    nil,
		}).Error
}

// UpdatePassword stores a freshly hashed password.
func (r *UserRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	return r.db.WithContext(ctx).Model(&userModel{}).
		Where("user_id = ?", id).
		Update("password", passwordHash).Error
}

// UpdateProfile applies non-nil patch fields.
func (r *UserRepository) UpdateProfile(ctx context.Context, id string, email, name *string) (*domain.User, error) {
	updates := map[string]any{}
	if email != nil {
		updates["email"] = strings.ToLower(strings.TrimSpace(*email))
	}
	if name != nil {
		updates["name"] = *name
	}
	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(&userModel{}).
			Where("user_id = ?", id).
			Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.GetByID(ctx, id)
}

// SetRefreshTokenHash overwrites the stored refresh-token hash unconditionally
// (login, confirm).
func (r *UserRepository) SetRefreshTokenHash(ctx context.Context, id string, hash string) error {
	return r.db.WithContext(ctx).Model(&userModel{}).
		Where("user_id = ?", id).
		Update("refresh_token", hash).Error
}

// RotateRefreshTokenHash swaps the stored refresh hash only if it still equals
// oldHash. Concurrent rotations race on the same stored hash, so exactly one
// caller sees a swap; the rest get false.
func (r *UserRepository) RotateRefreshTokenHash(ctx context.Context, id string, oldHash, newHash string) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&userModel{}).
		Where("user_id = ? AND refresh_token = ?", id, oldHash).
		Update("refresh_token", newHash)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// ClearTokens drops the stored refresh hash at logout.
func (r *UserRepository) ClearTokens(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&userModel{}).
		Where("user_id = ?", id).
		Update("refresh_token", nil).Error
}
