package services

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"healthscan/models"
	"healthscan/repository"
	"healthscan/utils"
)

type MockHealthLogRepository struct {
	Saved      []models.HealthLog
	ForceError bool
}

func (m *MockHealthLogRepository) Save(_ context.Context, log *models.HealthLog) error {
	if m.ForceError {
		return errors.New("save error")
	}
	m.Saved = append(m.Saved, *log)
	return nil
}

func (m *MockHealthLogRepository) ListByUser(_ context.Context, userKey string, limit int) ([]models.HealthLog, error) {
	return m.Saved, nil
}

func fixedHealthService(repo repository.HealthLogRepository, now time.Time) *HealthService {
	svc := NewHealthService(repo)
	svc.now = func() time.Time { return now }
	return svc
}

func TestHealthReport(t *testing.T) {
	now := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	svc := fixedHealthService(&MockHealthLogRepository{}, now)

	report, err := svc.Report(models.BodyMetrics{HeightCm: 175, WeightKg: 70, TargetWeightKg: 65, TargetDate: "2025-12-31"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(report.BMI-22.86) > 0.01 || report.Category != "Normal weight" {
		t.Errorf("unexpected BMI %.2f (%s)", report.BMI, report.Category)
	}
	if report.Estimate.DaysRemaining != 30 {
		t.Errorf("expected 30 days, got %d", report.Estimate.DaysRemaining)
	}
	// -5 kg over 30 days is ~1.17 kg/week
	if !report.Estimate.RateWarning || report.Warning != utils.RateWarningMessage {
		t.Errorf("expected rate warning, got %+v", report.Estimate)
	}
	if len(report.Projection) != 5 {
		t.Errorf("expected 5 projection points, got %d", len(report.Projection))
	}
}

func TestHealthReport_RejectsInvalidMetrics(t *testing.T) {
	svc := NewHealthService(&MockHealthLogRepository{})

	_, err := svc.Report(models.BodyMetrics{HeightCm: 0, WeightKg: 70, TargetWeightKg: 65, TargetDate: "2025-12-31"})
	if !errors.Is(err, utils.ErrInvalidMetrics) {
		t.Errorf("expected ErrInvalidMetrics, got %v", err)
	}
}

func TestHealthRecord(t *testing.T) {
	repo := &MockHealthLogRepository{}
	svc := fixedHealthService(repo, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	m := models.BodyMetrics{HeightCm: 180, WeightKg: 85, TargetWeightKg: 75, TargetDate: "2025-06-01"}

	if _, err := svc.Record(context.Background(), "ana", m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.Saved) != 1 {
		t.Fatalf("expected Save to be called once")
	}
	saved := repo.Saved[0]
	if saved.UserKey != "ana" || saved.TargetDate.Month() != time.June || saved.Category != "Overweight" {
		t.Errorf("unexpected saved log %+v", saved)
	}
}

func TestHealthRecord_Errors(t *testing.T) {
	m := models.BodyMetrics{HeightCm: 180, WeightKg: 85, TargetWeightKg: 75, TargetDate: "2025-06-01"}

	svc := NewHealthService(&MockHealthLogRepository{})
	if _, err := svc.Record(context.Background(), " ", m); !errors.Is(err, ErrMissingUser) {
		t.Errorf("expected ErrMissingUser, got %v", err)
	}
	if _, err := svc.History(context.Background(), "", 0); !errors.Is(err, ErrMissingUser) {
		t.Errorf("expected ErrMissingUser, got %v", err)
	}

	failing := NewHealthService(&MockHealthLogRepository{ForceError: true})
	if _, err := failing.Record(context.Background(), "ana", m); err == nil {
		t.Errorf("expected repository error to propagate")
	}
}
