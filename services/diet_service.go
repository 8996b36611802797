package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"healthscan/catalog"
	"healthscan/models"
)

const (
	DefaultBudgetLevel   = "affordable"
	DefaultCalorieTarget = 2000
	MinCalorieTarget     = 1200
	MaxCalorieTarget     = 3000
	CalorieTargetStep    = 50
)

var (
	ErrInvalidBudget        = errors.New("unknown budget level")
	ErrInvalidCalorieTarget = fmt.Errorf("calorie target must be between %d and %d in steps of %d", MinCalorieTarget, MaxCalorieTarget, CalorieTargetStep)
)

type DietPlanRequest struct {
	PlanType      string `json:"plan_type"`
	BudgetLevel   string `json:"budget_level"`
	CalorieTarget int    `json:"calorie_target"`
}

type DietOptions struct {
	PlanTypes     []models.PlanType     `json:"plan_types"`
	BudgetOptions []models.BudgetOption `json:"budget_options"`
}

type DietService struct {
	cat *catalog.Catalog
	sim Simulator
}

func NewDietService(cat *catalog.Catalog, sim Simulator) *DietService {
	return &DietService{cat: cat, sim: sim}
}

func (s *DietService) Options() DietOptions {
	return DietOptions{
		PlanTypes:     append([]models.PlanType{}, s.cat.PlanTypes...),
		BudgetOptions: append([]models.BudgetOption{}, s.cat.BudgetOptions...),
	}
}

// Generate resolves with the catalog plan for req.PlanType after the
// simulated generation delay. Unknown plan types get the balanced plan.
// The budget level is recorded on the plan but does not change the meals.
func (s *DietService) Generate(ctx context.Context, req DietPlanRequest) (*models.DietPlan, error) {
	budget := req.BudgetLevel
	if budget == "" {
		budget = DefaultBudgetLevel
	}
	if !s.cat.HasBudget(budget) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBudget, budget)
	}
	target := req.CalorieTarget
	if target == 0 {
		target = DefaultCalorieTarget
	}
	if target < MinCalorieTarget || target > MaxCalorieTarget || target%CalorieTargetStep != 0 {
		return nil, ErrInvalidCalorieTarget
	}

	if err := s.sim.Wait(ctx); err != nil {
		return nil, err
	}

	plan, found := s.cat.DietPlan(req.PlanType)
	plan.PlanType = req.PlanType
	if !found {
		plan.PlanType = catalog.DefaultPlanType
	}
	plan.BudgetLevel = budget
	plan.CalorieTarget = target
	for _, m := range plan.Meals {
		plan.TotalCalories += m.Calories
	}
	plan.ShoppingList = ShoppingList(plan.Meals)
	return &plan, nil
}

// ShoppingList collects every meal ingredient once, in first-seen order.
func ShoppingList(meals []models.Meal) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, m := range meals {
		for _, ing := range m.Ingredients {
			k := strings.ToLower(strings.TrimSpace(ing))
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, ing)
		}
	}
	return out
}
