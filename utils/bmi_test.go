package utils

import (
	"errors"
	"math"
	"testing"
	"time"

	"healthscan/models"
)

func TestBMI(t *testing.T) {
	bmi := BMI(175, 70)
	if math.Abs(bmi-22.857) > 0.01 {
		t.Errorf("expected BMI ~22.86, got %.3f", bmi)
	}
	if got := BMICategory(bmi); got != "Normal weight" {
		t.Errorf("expected Normal weight, got %q", got)
	}
}

func TestBMICategoryThresholds(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{15, "Underweight"},
		{18.49, "Underweight"},
		{18.5, "Normal weight"},
		{24.99, "Normal weight"},
		{25, "Overweight"},
		{29.99, "Overweight"},
		{30, "Obesity"},
		{45, "Obesity"},
	}
	for _, tt := range tests {
		if got := BMICategory(tt.bmi); got != tt.want {
			t.Errorf("BMICategory(%.2f) = %q, want %q", tt.bmi, got, tt.want)
		}
	}
}

func TestBMIGaugePercentClamps(t *testing.T) {
	if got := BMIGaugePercent(20); got != 50 {
		t.Errorf("expected 50, got %.2f", got)
	}
	if got := BMIGaugePercent(55); got != 100 {
		t.Errorf("expected clamp to 100, got %.2f", got)
	}
	if got := BMIGaugePercent(-1); got != 0 {
		t.Errorf("expected clamp to 0, got %.2f", got)
	}
}

func TestValidateBodyMetrics(t *testing.T) {
	valid := models.BodyMetrics{HeightCm: 175, WeightKg: 70, TargetWeightKg: 65, TargetDate: "2025-12-31"}
	target, err := ValidateBodyMetrics(valid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if target.Year() != 2025 || target.Month() != time.December || target.Day() != 31 {
		t.Errorf("unexpected target date %v", target)
	}

	invalid := []models.BodyMetrics{
		{HeightCm: 0, WeightKg: 70, TargetWeightKg: 65, TargetDate: "2025-12-31"},
		{HeightCm: 175, WeightKg: -1, TargetWeightKg: 65, TargetDate: "2025-12-31"},
		{HeightCm: 300, WeightKg: 70, TargetWeightKg: 65, TargetDate: "2025-12-31"},
		{HeightCm: 175, WeightKg: 70, TargetWeightKg: 500, TargetDate: "2025-12-31"},
		{HeightCm: 175, WeightKg: 70, TargetWeightKg: 65, TargetDate: "31/12/2025"},
	}
	for _, m := range invalid {
		if _, err := ValidateBodyMetrics(m); !errors.Is(err, ErrInvalidMetrics) {
			t.Errorf("expected ErrInvalidMetrics for %+v, got %v", m, err)
		}
	}
}
