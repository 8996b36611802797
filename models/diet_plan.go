package models

type Macros struct {
	Protein string `json:"protein" yaml:"protein"`
	Carbs   string `json:"carbs" yaml:"carbs"`
	Fats    string `json:"fats" yaml:"fats"`
}

// Meal is one slot of a day plan ("Breakfast", "Lunch", "Snack", "Dinner").
type Meal struct {
	Time        string   `json:"time" yaml:"time"`
	Calories    int      `json:"calories" yaml:"calories"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Ingredients []string `json:"ingredients" yaml:"ingredients"`
}

type DietPlan struct {
	Name          string   `json:"name" yaml:"name"`
	Tags          []string `json:"tags" yaml:"tags"`
	Benefits      []string `json:"benefits" yaml:"benefits"`
	Macros        Macros   `json:"macros" yaml:"macros"`
	Meals         []Meal   `json:"meals" yaml:"meals"`
	PlanType      string   `json:"plan_type,omitempty" yaml:"-"`
	BudgetLevel   string   `json:"budget_level,omitempty" yaml:"-"`
	CalorieTarget int      `json:"calorie_target,omitempty" yaml:"-"`
	TotalCalories int      `json:"total_calories,omitempty" yaml:"-"`
	ShoppingList  []string `json:"shopping_list,omitempty" yaml:"-"`
}

// Clone returns a copy that shares no slices with p.
func (p DietPlan) Clone() DietPlan {
	out := p
	out.Tags = append([]string{}, p.Tags...)
	out.Benefits = append([]string{}, p.Benefits...)
	out.ShoppingList = append([]string(nil), p.ShoppingList...)
	out.Meals = make([]Meal, len(p.Meals))
	for i, m := range p.Meals {
		m.Ingredients = append([]string{}, m.Ingredients...)
		out.Meals[i] = m
	}
	return out
}

type PlanType struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// BudgetOption tier is the number of currency symbols the UI shows.
type BudgetOption struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Tier int    `json:"tier" yaml:"tier"`
}
