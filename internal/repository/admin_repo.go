package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/htetarkarhlaing/share-book-api/internal/domain"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

type adminModel struct {
	LoginID      string    `gorm:"column:login_id;primaryKey"`
	Name         string    `gorm:"column:name"`
	PasswordHash string    `gorm:"column:password"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (adminModel) TableName() string { return "admins" }

func toDomainAdmin(m adminModel) *domain.Admin {
	return &domain.Admin{
		LoginID:      m.LoginID,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (r *AdminRepository) Create(ctx context.Context, a *domain.Admin) error {
	m := adminModel{
		LoginID:      a.LoginID,
		Name:         a.Name,
		PasswordHash: a.PasswordHash,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*a = *toDomainAdmin(m)
	return nil
}

func (r *AdminRepository) GetByLoginID(ctx context.Context, loginID string) (*domain.Admin, error) {
	var m adminModel
	tx := r.db.WithContext(ctx).Where("login_id = ?", loginID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainAdmin(m), nil
}

// ExistsByLoginID backs the unique login-id generator's collision check.
func (r *AdminRepository) ExistsByLoginID(ctx context.Context, loginID string) (bool, error) {
	var m adminModel
	tx := r.db.WithContext(ctx).Select("login_id").Where("login_id = ?", loginID).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, tx.Error
	}
	return true, nil
}
