package utils

type RatingLabel struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

// LabelForScore maps a 0–10 safety score to the scanner's verdict.
func LabelForScore(score float64) RatingLabel {
	switch {
	case score >= 9:
		return RatingLabel{"Very Safe", "Clean and non-toxic. Low risk for all skin types."}
	case score >= 7:
		return RatingLabel{"Mostly Safe", "Generally safe, but minor concerns for sensitive skin types."}
	case score >= 5:
		return RatingLabel{"Caution", "Some questionable ingredients. May cause irritation in some users."}
	case score >= 3:
		return RatingLabel{"Unsafe", "Several concerning ingredients. Only use if you're sure it's okay."}
	default:
		return RatingLabel{"Strong No", "Contains highly harmful ingredients. High risk for skin. Avoid."}
	}
}
