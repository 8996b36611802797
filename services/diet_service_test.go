package services

import (
	"context"
	"errors"
	"testing"

	"healthscan/catalog"
	"healthscan/models"
)

func TestGenerateDietPlan(t *testing.T) {
	svc := NewDietService(catalog.MustLoad(), Simulator{})

	plan, err := svc.Generate(context.Background(), DietPlanRequest{PlanType: "low-carb", BudgetLevel: "premium", CalorieTarget: 1800})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.Name != "Low-Carb Indian Diet" || plan.PlanType != "low-carb" {
		t.Errorf("unexpected plan %q (%s)", plan.Name, plan.PlanType)
	}
	if plan.BudgetLevel != "premium" || plan.CalorieTarget != 1800 {
		t.Errorf("unexpected budget/target: %s/%d", plan.BudgetLevel, plan.CalorieTarget)
	}
	if plan.TotalCalories != 1650 {
		t.Errorf("expected 1650 total kcal, got %d", plan.TotalCalories)
	}
	if len(plan.Meals) != 4 {
		t.Errorf("expected 4 meals, got %d", len(plan.Meals))
	}
}

func TestGenerateDietPlan_Defaults(t *testing.T) {
	svc := NewDietService(catalog.MustLoad(), Simulator{})

	plan, err := svc.Generate(context.Background(), DietPlanRequest{PlanType: "carnivore"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.Name != "Indian Balanced Diet" || plan.PlanType != catalog.DefaultPlanType {
		t.Errorf("expected balanced fallback, got %q (%s)", plan.Name, plan.PlanType)
	}
	if plan.BudgetLevel != DefaultBudgetLevel || plan.CalorieTarget != DefaultCalorieTarget {
		t.Errorf("expected defaults, got %s/%d", plan.BudgetLevel, plan.CalorieTarget)
	}
}

func TestGenerateDietPlan_Validation(t *testing.T) {
	svc := NewDietService(catalog.MustLoad(), Simulator{})
	ctx := context.Background()

	if _, err := svc.Generate(ctx, DietPlanRequest{BudgetLevel: "luxury"}); !errors.Is(err, ErrInvalidBudget) {
		t.Errorf("expected ErrInvalidBudget, got %v", err)
	}
	for _, target := range []int{1000, 3050, 1825} {
		if _, err := svc.Generate(ctx, DietPlanRequest{CalorieTarget: target}); !errors.Is(err, ErrInvalidCalorieTarget) {
			t.Errorf("expected ErrInvalidCalorieTarget for %d, got %v", target, err)
		}
	}
}

func TestShoppingList_Dedupes(t *testing.T) {
	meals := []models.Meal{
		{Ingredients: []string{"Raita", "Brown rice"}},
		{Ingredients: []string{"brown rice", "Pickle", "Raita"}},
	}

	got := ShoppingList(meals)

	want := []string{"Raita", "Brown rice", "Pickle"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestDietOptions(t *testing.T) {
	opts := NewDietService(catalog.MustLoad(), Simulator{}).Options()

	if len(opts.PlanTypes) != 4 || opts.PlanTypes[0].ID != "balanced" {
		t.Errorf("unexpected plan types: %+v", opts.PlanTypes)
	}
	if len(opts.BudgetOptions) != 3 || opts.BudgetOptions[2].Tier != 3 {
		t.Errorf("unexpected budget options: %+v", opts.BudgetOptions)
	}
}
