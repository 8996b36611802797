package main

import (
	"fmt"
	"time"

	"healthscan/models"
	"healthscan/repository"
	"healthscan/services"
	"healthscan/utils"

	"github.com/spf13/cobra"
)

func newEstimateCmd() *cobra.Command {
	var m models.BodyMetrics
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Print BMI and calorie estimates for the given body metrics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := services.NewHealthService(repository.NewMemoryHealthLogRepository()).Report(m)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "BMI:              %.1f (%s)\n", report.BMI, report.Category)
			fmt.Fprintf(out, "Maintenance:      %d kcal/day\n", report.Estimate.MaintenanceKcal)
			fmt.Fprintf(out, "Recommended:      %d kcal/day\n", report.Estimate.RecommendedKcal)
			fmt.Fprintf(out, "Daily adjustment: %d kcal\n", report.Estimate.DailyAdjustmentKcal)
			fmt.Fprintf(out, "Weekly rate:      %+.2f kg over %d days\n", report.Estimate.WeeklyRateKg, report.Estimate.DaysRemaining)
			for _, p := range report.Projection {
				fmt.Fprintf(out, "  %-10s %.1f kg\n", p.Label, p.WeightKg)
			}
			if report.Warning != "" {
				fmt.Fprintln(out, "Warning:", report.Warning)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.Float64Var(&m.HeightCm, "height", 175, "height in cm")
	f.Float64Var(&m.WeightKg, "weight", 70, "current weight in kg")
	f.Float64Var(&m.TargetWeightKg, "target-weight", 65, "target weight in kg")
	f.StringVar(&m.TargetDate, "target-date", time.Now().AddDate(0, 3, 0).Format(utils.DateLayout), "target date (YYYY-MM-DD)")
	return cmd
}
