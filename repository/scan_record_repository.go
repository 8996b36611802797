package repository

import (
	"context"

	"healthscan/models"

	"gorm.io/gorm"
)

type ScanRecordRepository interface {
	Save(ctx context.Context, rec *models.ScanRecord) error
	Recent(ctx context.Context, limit int) ([]models.ScanRecord, error)
}

type GormScanRecordRepository struct {
	db *gorm.DB
}

func NewGormScanRecordRepository(db *gorm.DB) *GormScanRecordRepository {
	return &GormScanRecordRepository{db: db}
}

func (r *GormScanRecordRepository) Save(ctx context.Context, rec *models.ScanRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *GormScanRecordRepository) Recent(ctx context.Context, limit int) ([]models.ScanRecord, error) {
	var recs []models.ScanRecord
	q := r.db.WithContext(ctx).Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&recs).Error
	return recs, err
}
