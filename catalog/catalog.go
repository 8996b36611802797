// Package catalog holds the static mock data served by the demo features:
// canned chat responses, the scan payload and the diet plans.
package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"healthscan/models"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var raw []byte

// Response keys, in the order the chat selector tests them.
const (
	ResponseIngredients     = "ingredients"
	ResponseDiet            = "diet"
	ResponseCalories        = "calories"
	ResponseSLS             = "sls"
	ResponseTitaniumDioxide = "titanium_dioxide"
	ResponseDefault         = "default"
)

const DefaultPlanType = "balanced"

type Catalog struct {
	Greeting           string                     `yaml:"greeting"`
	SuggestedQuestions []string                   `yaml:"suggested_questions"`
	ChatResponses      map[string]string          `yaml:"chat_responses"`
	Scan               models.ScanResult          `yaml:"scan"`
	PlanTypes          []models.PlanType          `yaml:"plan_types"`
	BudgetOptions      []models.BudgetOption      `yaml:"budget_options"`
	DietPlans          map[string]models.DietPlan `yaml:"diet_plans"`
}

var (
	loaded  *Catalog
	loadErr error
	once    sync.Once
)

// Parse decodes a catalog document and checks that every response key and
// the default plan are present.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	for _, k := range []string{ResponseIngredients, ResponseDiet, ResponseCalories, ResponseSLS, ResponseTitaniumDioxide, ResponseDefault} {
		if c.ChatResponses[k] == "" {
			return nil, fmt.Errorf("catalog: missing chat response %q", k)
		}
	}
	if _, ok := c.DietPlans[DefaultPlanType]; !ok {
		return nil, fmt.Errorf("catalog: missing %q diet plan", DefaultPlanType)
	}
	return &c, nil
}

// Load returns the embedded catalog, parsed once.
func Load() (*Catalog, error) {
	once.Do(func() {
		loaded, loadErr = Parse(raw)
	})
	return loaded, loadErr
}

// MustLoad is Load for program start-up and tests; the embedded document is
// fixed at build time so a failure is a programming error.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Response(key string) string {
	if r, ok := c.ChatResponses[key]; ok {
		return r
	}
	return c.ChatResponses[ResponseDefault]
}

// ScanResult returns a copy of the mock scan payload.
func (c *Catalog) ScanResult() models.ScanResult {
	return c.Scan.Clone()
}

// DietPlan returns a copy of the plan for planType, falling back to the
// balanced plan for unknown types. The second value reports whether
// planType itself was found.
func (c *Catalog) DietPlan(planType string) (models.DietPlan, bool) {
	if p, ok := c.DietPlans[planType]; ok {
		return p.Clone(), true
	}
	return c.DietPlans[DefaultPlanType].Clone(), false
}

func (c *Catalog) HasBudget(id string) bool {
	for _, b := range c.BudgetOptions {
		if b.ID == id {
			return true
		}
	}
	return false
}

func (c *Catalog) Suggestions() []string {
	return append([]string{}, c.SuggestedQuestions...)
}
