package service

import (
	"context"

	"glucoguide/internal/markup"
	"glucoguide/internal/model"
)

// FoodService defines operations on the food catalog.
type FoodService interface {
	// List returns the foods matching query in category, each with a fresh
	// classification. An empty category or "all" matches every category.
	List(ctx context.Context, query, category string) ([]FoodView, error)

	// Get returns a single food by ID.
	Get(ctx context.Context, id string) (*FoodView, error)

	// Categories returns every category with its number of foods.
	Categories(ctx context.Context) []CategoryCount

	// Classify rates a user-supplied nutrition profile.
	Classify(ctx context.Context, n model.Nutrition) (*model.Classification, error)
}

// ContentService defines operations on the education library.
type ContentService interface {
	// List returns the entries matching query at level. An empty level or
	// "all" matches every level.
	List(ctx context.Context, query, level string) ([]model.EducationContent, error)

	// Get returns a single entry by ID with its body rendered.
	Get(ctx context.Context, id string) (*ContentView, error)

	// Levels returns every level with its number of entries.
	Levels(ctx context.Context) []LevelCount
}

// FoodView is a food as served to clients. TrafficLight is recomputed on
// every request; StoredTrafficLight is whatever the catalog shipped.
type FoodView struct {
	ID                 string               `json:"id"`
	Name               string               `json:"name"`
	Category           model.Category       `json:"category"`
	GlycemicIndex      float64              `json:"glycemicIndex"`
	Carbohydrates      float64              `json:"carbohydrates"`
	Fiber              float64              `json:"fiber"`
	Sugars             float64              `json:"sugars"`
	Portion            string               `json:"portion"`
	CommonNames        []string             `json:"commonNames"`
	TrafficLight       model.Rating         `json:"trafficLight"`
	StoredTrafficLight model.Rating         `json:"storedTrafficLight,omitempty"`
	Classification     model.Classification `json:"classification"`
}

// ContentView is an education entry with its body rendered for display.
type ContentView struct {
	model.EducationContent
	HTML     string           `json:"html"`
	Segments []markup.Segment `json:"segments"`
}

// CategoryCount is a food category and how many foods it holds.
type CategoryCount struct {
	Category model.Category `json:"category"`
	Foods    int            `json:"foods"`
}

// LevelCount is an education level and how many entries it holds.
type LevelCount struct {
	Level   model.Level `json:"level"`
	Entries int         `json:"entries"`
}
