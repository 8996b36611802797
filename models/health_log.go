package models

import (
	"time"

	"gorm.io/gorm"
)

// HealthLog is a stored tracker snapshot.
type HealthLog struct {
	gorm.Model
	UserKey         string    `gorm:"index;not null" json:"user_key"`
	HeightCm        float64   `json:"height_cm"`
	WeightKg        float64   `json:"weight_kg"`
	TargetWeightKg  float64   `json:"target_weight_kg"`
	TargetDate      time.Time `json:"target_date"`
	BMI             float64   `json:"bmi"`
	Category        string    `gorm:"size:32" json:"category"`
	RecommendedKcal int       `json:"recommended_kcal"`
	WeeklyRateKg    float64   `json:"weekly_rate_kg"`
}
