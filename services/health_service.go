package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"healthscan/models"
	"healthscan/repository"
	"healthscan/utils"
)

var ErrMissingUser = errors.New("user key is required")

type HealthService struct {
	logs repository.HealthLogRepository
	now  func() time.Time
}

func NewHealthService(logs repository.HealthLogRepository) *HealthService {
	return &HealthService{logs: logs, now: time.Now}
}

// Report validates m and computes the tracker figures as of now.
func (s *HealthService) Report(m models.BodyMetrics) (*models.HealthReport, error) {
	target, err := utils.ValidateBodyMetrics(m)
	if err != nil {
		return nil, err
	}
	now := s.now()
	bmi := utils.BMI(m.HeightCm, m.WeightKg)
	est := utils.EstimateCalories(m, utils.DaysRemaining(now, target))

	report := &models.HealthReport{
		BMI:          bmi,
		Category:     utils.BMICategory(bmi),
		GaugePercent: utils.BMIGaugePercent(bmi),
		Estimate:     est,
		Projection:   utils.ProjectWeight(m.WeightKg, m.TargetWeightKg),
		GeneratedAt:  now,
	}
	if est.RateWarning {
		report.Warning = utils.RateWarningMessage
	}
	return report, nil
}

// Record computes the report and stores it under userKey.
func (s *HealthService) Record(ctx context.Context, userKey string, m models.BodyMetrics) (*models.HealthReport, error) {
	userKey = strings.TrimSpace(userKey)
	if userKey == "" {
		return nil, ErrMissingUser
	}
	report, err := s.Report(m)
	if err != nil {
		return nil, err
	}
	target, _ := time.Parse(utils.DateLayout, m.TargetDate)
	log := &models.HealthLog{
		UserKey:         userKey,
		HeightCm:        m.HeightCm,
		WeightKg:        m.WeightKg,
		TargetWeightKg:  m.TargetWeightKg,
		TargetDate:      target,
		BMI:             report.BMI,
		Category:        report.Category,
		RecommendedKcal: report.Estimate.RecommendedKcal,
		WeeklyRateKg:    report.Estimate.WeeklyRateKg,
	}
	if err := s.logs.Save(ctx, log); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *HealthService) History(ctx context.Context, userKey string, limit int) ([]models.HealthLog, error) {
	userKey = strings.TrimSpace(userKey)
	if userKey == "" {
		return nil, ErrMissingUser
	}
	return s.logs.ListByUser(ctx, userKey, limit)
}
