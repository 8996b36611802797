package repository

import (
	"context"
	"sync"
	"time"

	"healthscan/models"
)

// MemoryHealthLogRepository keeps logs for the process lifetime. It is used
// when no database is configured.
type MemoryHealthLogRepository struct {
	mu     sync.Mutex
	nextID uint
	data   []models.HealthLog
}

func NewMemoryHealthLogRepository() *MemoryHealthLogRepository {
	return &MemoryHealthLogRepository{}
}

func (r *MemoryHealthLogRepository) Save(_ context.Context, log *models.HealthLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	log.ID = r.nextID
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}
	r.data = append(r.data, *log)
	return nil
}

func (r *MemoryHealthLogRepository) ListByUser(_ context.Context, userKey string, limit int) ([]models.HealthLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.HealthLog{}
	for i := len(r.data) - 1; i >= 0; i-- {
		if r.data[i].UserKey != userKey {
			continue
		}
		out = append(out, r.data[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

type MemoryScanRecordRepository struct {
	mu     sync.Mutex
	nextID uint
	data   []models.ScanRecord
}

func NewMemoryScanRecordRepository() *MemoryScanRecordRepository {
	return &MemoryScanRecordRepository{}
}

func (r *MemoryScanRecordRepository) Save(_ context.Context, rec *models.ScanRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	rec.ID = r.nextID
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	r.data = append(r.data, *rec)
	return nil
}

func (r *MemoryScanRecordRepository) Recent(_ context.Context, limit int) ([]models.ScanRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.ScanRecord{}
	for i := len(r.data) - 1; i >= 0; i-- {
		out = append(out, r.data[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}
