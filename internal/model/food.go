package model

import (
	"fmt"
	"math"
)

// Category is the food group a FoodItem belongs to.
type Category string

// Food categories known to the catalog.
const (
	CategoryFruits     Category = "fruits"
	CategoryCereals    Category = "cereals"
	CategoryVegetables Category = "vegetables"
	CategoryLegumes    Category = "legumes"
	CategorySweeteners Category = "sweeteners"
	CategoryDairy      Category = "dairy"
	CategoryFats       Category = "fats"
)

// Categories lists every food category in display order.
func Categories() []Category {
	return []Category{
		CategoryFruits,
		CategoryCereals,
		CategoryVegetables,
		CategoryLegumes,
		CategorySweeteners,
		CategoryDairy,
		CategoryFats,
	}
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Nutrition holds the four inputs of the traffic-light classifier.
// Quantities are grams per stated portion; GlycemicIndex is unitless.
type Nutrition struct {
	GlycemicIndex float64 `json:"glycemicIndex" db:"glycemic_index"`
	Carbohydrates float64 `json:"carbohydrates" db:"carbohydrates"`
	Fiber         float64 `json:"fiber" db:"fiber"`
	Sugars        float64 `json:"sugars" db:"sugars"`
}

// Validate checks the precondition the classifier relies on: every value
// finite and non-negative, and sugars not exceeding carbohydrates.
func (n Nutrition) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"glycemicIndex", n.GlycemicIndex},
		{"carbohydrates", n.Carbohydrates},
		{"fiber", n.Fiber},
		{"sugars", n.Sugars},
	}

	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%s is not a finite number: %w", f.name, ErrInvalidNutrition)
		}
		if f.value < 0 {
			return fmt.Errorf("%s is negative (%g): %w", f.name, f.value, ErrInvalidNutrition)
		}
	}

	if n.Sugars > n.Carbohydrates {
		return fmt.Errorf("sugars (%g) exceed carbohydrates (%g): %w", n.Sugars, n.Carbohydrates, ErrInvalidNutrition)
	}

	return nil
}

// NutritionInput is a nutrition profile as received from outside the
// process. A missing field stays nil instead of reading as zero.
type NutritionInput struct {
	GlycemicIndex *float64 `json:"glycemicIndex"`
	Carbohydrates *float64 `json:"carbohydrates"`
	Fiber         *float64 `json:"fiber"`
	Sugars        *float64 `json:"sugars"`
}

// Resolve returns the validated Nutrition. Every field is required.
func (in NutritionInput) Resolve() (Nutrition, error) {
	fields := []struct {
		name  string
		value *float64
	}{
		{"glycemicIndex", in.GlycemicIndex},
		{"carbohydrates", in.Carbohydrates},
		{"fiber", in.Fiber},
		{"sugars", in.Sugars},
	}
	for _, f := range fields {
		if f.value == nil {
			return Nutrition{}, fmt.Errorf("%s is required: %w", f.name, ErrInvalidNutrition)
		}
	}

	n := Nutrition{
		GlycemicIndex: *in.GlycemicIndex,
		Carbohydrates: *in.Carbohydrates,
		Fiber:         *in.Fiber,
		Sugars:        *in.Sugars,
	}
	if err := n.Validate(); err != nil {
		return Nutrition{}, err
	}
	return n, nil
}

// FoodItem represents an entry of the glycemic food database.
type FoodItem struct {
	ID       string   `json:"id" db:"id"`
	Name     string   `json:"name" db:"name"`
	Category Category `json:"category" db:"category"`
	Nutrition
	Portion string `json:"portion" db:"portion"`
	// TrafficLight is the rating shipped with the data. It may be stale.
	TrafficLight Rating   `json:"trafficLight,omitempty" db:"traffic_light"`
	CommonNames  []string `json:"commonNames" db:"common_names"`
}
