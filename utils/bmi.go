package utils

import (
	"errors"
	"fmt"
	"time"

	"healthscan/models"
)

var ErrInvalidMetrics = errors.New("invalid body metrics")

const DateLayout = "2006-01-02"

// BMI expects height in centimeters and weight in kilograms. Inputs are
// validated by ValidateBodyMetrics before they get here.
func BMI(heightCm, weightKg float64) float64 {
	h := heightCm / 100.0 // to meters
	return weightKg / (h * h)
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obesity"
	}
}

// BMIGaugePercent places bmi on a 0–40 scale for the gauge bar.
func BMIGaugePercent(bmi float64) float64 {
	p := bmi / 40 * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// ValidateBodyMetrics rejects values the formulas should never see and parses
// the target date.
func ValidateBodyMetrics(m models.BodyMetrics) (time.Time, error) {
	if m.HeightCm <= 0 || m.WeightKg <= 0 || m.TargetWeightKg <= 0 {
		return time.Time{}, fmt.Errorf("%w: height and weights must be positive", ErrInvalidMetrics)
	}
	// Sanity checks to avoid garbage input
	if m.HeightCm < 50 || m.HeightCm > 250 {
		return time.Time{}, fmt.Errorf("%w: height out of plausible range", ErrInvalidMetrics)
	}
	if m.WeightKg < 10 || m.WeightKg > 400 || m.TargetWeightKg < 10 || m.TargetWeightKg > 400 {
		return time.Time{}, fmt.Errorf("%w: weight out of plausible range", ErrInvalidMetrics)
	}
	target, err := time.Parse(DateLayout, m.TargetDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: target_date must be YYYY-MM-DD", ErrInvalidMetrics)
	}
	return target, nil
}
