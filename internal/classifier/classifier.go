// Package classifier rates foods on a green/yellow/red traffic-light scale
// from their glycemic index, fiber, carbohydrate and sugar content.
package classifier

import (
	"glucoguide/internal/model"
)

// Score thresholds and weights. These are product constants.
const (
	lowGlycemicIndex    = 55
	mediumGlycemicIndex = 70

	highFiber   = 5
	mediumFiber = 3

	lowCarbohydrates    = 10
	mediumCarbohydrates = 20

	moderateSugars = 10
	highSugars     = 15

	greenMinScore  = 5
	yellowMinScore = 2
)

// Display colors per rating.
const (
	ColorGreen  = "#4CAF50"
	ColorYellow = "#FFC107"
	ColorRed    = "#F44336"
)

// Score computes the weighted point score of a nutritional profile.
// The result ranges from -2 to 7.
func Score(n model.Nutrition) int {
	score := 0

	switch {
	case n.GlycemicIndex < lowGlycemicIndex:
		score += 3
	case n.GlycemicIndex < mediumGlycemicIndex:
		score++
	}

	switch {
	case n.Fiber >= highFiber:
		score += 2
	case n.Fiber >= mediumFiber:
		score++
	}

	switch {
	case n.Carbohydrates < lowCarbohydrates:
		score += 2
	case n.Carbohydrates < mediumCarbohydrates:
		score++
	}

	switch {
	case n.Sugars > highSugars:
		score -= 2
	case n.Sugars > moderateSugars:
		score--
	}

	return score
}

// RatingFor maps a point score to its rating.
func RatingFor(score int) model.Rating {
	switch {
	case score >= greenMinScore:
		return model.RatingGreen
	case score >= yellowMinScore:
		return model.RatingYellow
	default:
		return model.RatingRed
	}
}

// Classify returns the traffic-light rating of food. It does not check its
// input; see Validate.
func Classify(food model.FoodItem) model.Rating {
	return RatingFor(Score(food.Nutrition))
}

// ColorOf returns the display color of r. Unknown ratings render as red.
func ColorOf(r model.Rating) string {
	switch r {
	case model.RatingGreen:
		return ColorGreen
	case model.RatingYellow:
		return ColorYellow
	default:
		return ColorRed
	}
}

// RationaleOf returns the advice shown next to r.
func RationaleOf(r model.Rating) string {
	switch r {
	case model.RatingGreen:
		return "Excellent choice"
	case model.RatingYellow:
		return "Consume in moderation"
	default:
		return "Consume occasionally"
	}
}

// Validate reports model.ErrInvalidNutrition when n is outside the domain the
// scoring rule was designed for.
func Validate(n model.Nutrition) error {
	return n.Validate()
}

// Evaluate classifies a nutritional profile and attaches color, rationale
// and score.
func Evaluate(n model.Nutrition) model.Classification {
	score := Score(n)
	rating := RatingFor(score)
	return model.Classification{
		Rating:    rating,
		Color:     ColorOf(rating),
		Rationale: RationaleOf(rating),
		Score:     score,
	}
}

// EvaluateStrict validates n before evaluating it.
func EvaluateStrict(n model.Nutrition) (model.Classification, error) {
	if err := Validate(n); err != nil {
		return model.Classification{}, err
	}
	return Evaluate(n), nil
}
