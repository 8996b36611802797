package repository

import (
	"context"

	"healthscan/models"

	"gorm.io/gorm"
)

type HealthLogRepository interface {
	Save(ctx context.Context, log *models.HealthLog) error
	ListByUser(ctx context.Context, userKey string, limit int) ([]models.HealthLog, error)
}

type GormHealthLogRepository struct {
	db *gorm.DB
}

func NewGormHealthLogRepository(db *gorm.DB) *GormHealthLogRepository {
	return &GormHealthLogRepository{db: db}
}

func (r *GormHealthLogRepository) Save(ctx context.Context, log *models.HealthLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *GormHealthLogRepository) ListByUser(ctx context.Context, userKey string, limit int) ([]models.HealthLog, error) {
	var logs []models.HealthLog
	q := r.db.WithContext(ctx).
		Where("user_key = ?", userKey).
		Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&logs).Error
	return logs, err
}
