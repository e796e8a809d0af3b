package service

import (
	"context"

	"glucoguide/internal/catalog"
	"glucoguide/internal/classifier"
	"glucoguide/internal/metrics"
	"glucoguide/internal/model"
	"glucoguide/internal/search"

	"github.com/rs/zerolog"
)

// foodService implements FoodService.
type foodService struct {
	provider catalog.Provider
	metrics  metrics.Recorder
	logger   zerolog.Logger
}

// NewFoodService creates a new food service. recorder may be nil.
func NewFoodService(provider catalog.Provider, recorder metrics.Recorder, logger zerolog.Logger) FoodService {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &foodService{
		provider: provider,
		metrics:  recorder,
		logger:   logger.With().Str("service", "food").Logger(),
	}
}

// List filters the catalog and classifies the matches.
func (s *foodService) List(ctx context.Context, query, category string) ([]FoodView, error) {
	if category == "" {
		category = search.AllCategories
	}
	if category != search.AllCategories && !model.Category(category).IsValid() {
		s.logger.Debug().Str("category", category).Msg("unknown category")
		return nil, model.ErrInvalidCategory
	}

	matches := search.Foods(s.provider.Foods(), query, category)
	s.metrics.RecordSearch("foods", len(matches))

	views := make([]FoodView, 0, len(matches))
	for _, f := range matches {
		views = append(views, s.view(f))
	}

	s.logger.Debug().
		Str("query", query).
		Str("category", category).
		Int("count", len(views)).
		Msg("listed foods")

	return views, nil
}

// Get retrieves a single food by ID.
func (s *foodService) Get(ctx context.Context, id string) (*FoodView, error) {
	if id == "" {
		s.logger.Warn().Msg("food ID is empty")
		return nil, model.ErrFoodNotFound
	}

	f, err := s.provider.Food(id)
	if err != nil {
		s.logger.Debug().Str("food_id", id).Msg("food not found")
		return nil, err
	}

	v := s.view(f)
	if f.TrafficLight != "" && f.TrafficLight != v.TrafficLight {
		s.logger.Info().
			Str("food_id", id).
			Str("stored", string(f.TrafficLight)).
			Str("computed", string(v.TrafficLight)).
			Msg("stored traffic light is stale")
	}

	return &v, nil
}

// Categories counts foods per category, in display order.
func (s *foodService) Categories(ctx context.Context) []CategoryCount {
	counts := make(map[model.Category]int)
	for _, f := range s.provider.Foods() {
		counts[f.Category]++
	}

	categories := model.Categories()
	result := make([]CategoryCount, 0, len(categories))
	for _, c := range categories {
		result = append(result, CategoryCount{Category: c, Foods: counts[c]})
	}
	return result
}

// Classify rates a user-supplied profile. Invalid profiles are rejected, not
// clamped.
func (s *foodService) Classify(ctx context.Context, n model.Nutrition) (*model.Classification, error) {
	c, err := classifier.EvaluateStrict(n)
	if err != nil {
		s.logger.Debug().Err(err).Msg("rejected nutrition profile")
		return nil, err
	}

	s.metrics.RecordClassification(string(c.Rating))
	return &c, nil
}

func (s *foodService) view(f model.FoodItem) FoodView {
	c := classifier.Evaluate(f.Nutrition)
	s.metrics.RecordClassification(string(c.Rating))

	names := f.CommonNames
	if names == nil {
		names = []string{}
	}

	return FoodView{
		ID:                 f.ID,
		Name:               f.Name,
		Category:           f.Category,
		GlycemicIndex:      f.GlycemicIndex,
		Carbohydrates:      f.Carbohydrates,
		Fiber:              f.Fiber,
		Sugars:             f.Sugars,
		Portion:            f.Portion,
		CommonNames:        names,
		TrafficLight:       c.Rating,
		StoredTrafficLight: f.TrafficLight,
		Classification:     c,
	}
}
