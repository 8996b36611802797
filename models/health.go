package models

import "time"

// BodyMetrics is the tracker input. Values are validated at the API boundary.
type BodyMetrics struct {
	HeightCm       float64 `json:"height_cm"`
	WeightKg       float64 `json:"weight_kg"`
	TargetWeightKg float64 `json:"target_weight_kg"`
	TargetDate     string  `json:"target_date"` // YYYY-MM-DD
}

type CalorieEstimate struct {
	MaintenanceKcal     int     `json:"maintenance_kcal"`
	RecommendedKcal     int     `json:"recommended_kcal"`
	DailyAdjustmentKcal int     `json:"daily_adjustment_kcal"`
	WeeklyRateKg        float64 `json:"weekly_rate_kg"`
	DaysRemaining       int     `json:"days_remaining"`
	RateWarning         bool    `json:"rate_warning"`
}

type ProjectionPoint struct {
	Label    string  `json:"label"`
	WeightKg float64 `json:"weight_kg"`
}

type HealthReport struct {
	BMI          float64           `json:"bmi"`
	Category     string            `json:"category"`
	GaugePercent float64           `json:"gauge_percent"`
	Estimate     CalorieEstimate   `json:"estimate"`
	Projection   []ProjectionPoint `json:"projection"`
	Warning      string            `json:"warning,omitempty"`
	GeneratedAt  time.Time         `json:"generated_at"`
}
