package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/htetarkarhlaing/share-book-api/internal/domain"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

type reportModel struct {
	ID           string    `gorm:"column:report_id;primaryKey"`
	Subject      string    `gorm:"column:subject"`
	PostID       string    `gorm:"column:post_id"`
	ReportedByID string    `gorm:"column:reported_by_id"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (reportModel) TableName() string { return "reports" }

func (r *ReportRepository) Create(ctx context.Context, report *domain.Report) error {
	if report.ID == "" {
		report.ID = uuid.NewString()
	}
	m := reportModel{
		ID:           report.ID,
		Subject:      report.Subject,
		PostID:       report.PostID,
		ReportedByID: report.ReportedByID,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	report.CreatedAt = m.CreatedAt
	return nil
}
