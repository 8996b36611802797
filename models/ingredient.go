package models

// Ingredient is one catalog entry of the scanner. Rating is the hazard score
// (higher is worse); RatingOutOf10 is the safety score shown to users.
type Ingredient struct {
	Name          string   `json:"name" yaml:"name"`
	Description   string   `json:"description" yaml:"description"`
	Rating        int      `json:"rating" yaml:"rating"`
	RatingOutOf10 int      `json:"rating_out_of_10" yaml:"rating_out_of_10"`
	EWGScore      int      `json:"ewg_score" yaml:"ewg_score"`
	Concerns      []string `json:"concerns" yaml:"concerns"`
	Evidence      string   `json:"evidence" yaml:"evidence"`
	Alternatives  []string `json:"alternatives" yaml:"alternatives"`
}

type OverallRating struct {
	Text             string  `json:"text" yaml:"text"`
	Score            float64 `json:"score" yaml:"score"`
	Rating           string  `json:"rating" yaml:"rating"`
	Details          string  `json:"details" yaml:"details"`
	Label            string  `json:"label,omitempty" yaml:"-"`
	LabelDescription string  `json:"label_description,omitempty" yaml:"-"`
}

type ScanResult struct {
	OverallRating OverallRating `json:"overall_rating" yaml:"overall_rating"`
	HarmfulCount  int           `json:"harmful_count" yaml:"harmful_count"`
	Ingredients   []Ingredient  `json:"ingredients" yaml:"ingredients"`
	ImageURL      string        `json:"image_url,omitempty" yaml:"-"`
}

// Clone returns a copy that shares no slices with s.
func (s ScanResult) Clone() ScanResult {
	out := s
	out.Ingredients = make([]Ingredient, len(s.Ingredients))
	for i, ing := range s.Ingredients {
		ing.Concerns = append([]string{}, ing.Concerns...)
		ing.Alternatives = append([]string{}, ing.Alternatives...)
		out.Ingredients[i] = ing
	}
	return out
}
