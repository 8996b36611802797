package utils

import (
	"math"
	"time"

	"healthscan/models"
)

// The maintenance estimate is a simplified Mifflin-St Jeor for a 30 year old
// male at light activity. It is an approximation, not a clinical model; the
// placeholders are intentional and there is no per-user age or sex yet.
const (
	PlaceholderAgeYears = 30
	ActivityMultiplier  = 1.4

	// adjustmentKcalPerKg is 7700 kcal per kg of fat spread over a week.
	// The daily adjustment divides by 7 once more, as the tracker always has.
	adjustmentKcalPerKg = 1100

	// MaxSafeWeeklyRateKg is the recommended ceiling on weight change.
	MaxSafeWeeklyRateKg = 1.0
)

const RateWarningMessage = "Rate of weight change exceeds the recommended 1 kg per week for safe progress."

func MaintenanceCalories(heightCm, weightKg float64) int {
	bmr := 10*weightKg + 6.25*heightCm - 5*PlaceholderAgeYears + 5
	return int(math.Round(bmr * ActivityMultiplier))
}

// DaysRemaining counts whole days until target, never less than one.
func DaysRemaining(now, target time.Time) int {
	days := int(math.Ceil(target.Sub(now).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

// EstimateCalories derives the calorie plan for reaching the target weight in
// daysRemaining days.
func EstimateCalories(m models.BodyMetrics, daysRemaining int) models.CalorieEstimate {
	if daysRemaining < 1 {
		daysRemaining = 1
	}
	diff := m.TargetWeightKg - m.WeightKg
	weekly := diff / float64(daysRemaining) * 7
	daily := math.Abs(weekly*adjustmentKcalPerKg) / 7

	maintenance := MaintenanceCalories(m.HeightCm, m.WeightKg)
	recommended := float64(maintenance) + daily
	if diff < 0 {
		recommended = float64(maintenance) - daily
	}

	return models.CalorieEstimate{
		MaintenanceKcal:     maintenance,
		RecommendedKcal:     int(math.Round(recommended)),
		DailyAdjustmentKcal: int(math.Round(daily)),
		WeeklyRateKg:        weekly,
		DaysRemaining:       daysRemaining,
		RateWarning:         math.Abs(weekly) > MaxSafeWeeklyRateKg,
	}
}

var projectionLabels = [...]string{"Now", "1 Month", "2 Months", "3 Months", "Goal Date"}

// ProjectWeight returns the chart points from the current to the target weight.
func ProjectWeight(weightKg, targetKg float64) []models.ProjectionPoint {
	d := targetKg - weightKg
	weights := [...]float64{weightKg, weightKg + d/4, weightKg + d/2, weightKg + d*0.75, targetKg}
	out := make([]models.ProjectionPoint, len(weights))
	for i, w := range weights {
		out[i] = models.ProjectionPoint{Label: projectionLabels[i], WeightKg: round2(w)}
	}
	return out
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
