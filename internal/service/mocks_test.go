package service

import (
	"context"
	"time"

	"glucoguide/internal/catalog"
	"glucoguide/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockProvider is a mock implementation of catalog.Provider.
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Refresh(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProvider) Foods() []model.FoodItem {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.FoodItem)
}

func (m *MockProvider) Education() []model.EducationContent {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.EducationContent)
}

func (m *MockProvider) Food(id string) (model.FoodItem, error) {
	args := m.Called(id)
	return args.Get(0).(model.FoodItem), args.Error(1)
}

func (m *MockProvider) Content(id string) (model.EducationContent, error) {
	args := m.Called(id)
	return args.Get(0).(model.EducationContent), args.Error(1)
}

func (m *MockProvider) Status() catalog.Status {
	args := m.Called()
	return args.Get(0).(catalog.Status)
}

// MockRecorder is a mock implementation of metrics.Recorder.
type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) RecordCatalogLoad(origin string, success bool, duration time.Duration) {
	m.Called(origin, success, duration)
}

func (m *MockRecorder) RecordClassification(rating string) {
	m.Called(rating)
}

func (m *MockRecorder) RecordSearch(kind string, results int) {
	m.Called(kind, results)
}

func (m *MockRecorder) RecordHTTPStatus(statusCode int) {
	m.Called(statusCode)
}

func (m *MockRecorder) RecordRequestLatency(duration time.Duration) {
	m.Called(duration)
}

func testFoods() []model.FoodItem {
	return []model.FoodItem{
		{
			ID: "1", Name: "Manzana", Category: model.CategoryFruits,
			Nutrition:    model.Nutrition{GlycemicIndex: 36, Carbohydrates: 14, Fiber: 2.4, Sugars: 10},
			TrafficLight: model.RatingYellow, CommonNames: []string{"apple"},
		},
		{
			ID: "5", Name: "Avena", Category: model.CategoryCereals,
			Nutrition:    model.Nutrition{GlycemicIndex: 55, Carbohydrates: 27, Fiber: 4, Sugars: 1},
			TrafficLight: model.RatingYellow, CommonNames: []string{"oats"},
		},
		{
			// Stored rating is stale: the profile scores green.
			ID: "11", Name: "Lentejas", Category: model.CategoryLegumes,
			Nutrition:    model.Nutrition{GlycemicIndex: 32, Carbohydrates: 20, Fiber: 8, Sugars: 1.8},
			TrafficLight: model.RatingRed,
		},
		{
			ID: "6", Name: "Pan blanco", Category: model.CategoryCereals,
			Nutrition: model.Nutrition{GlycemicIndex: 75, Carbohydrates: 25, Fiber: 1, Sugars: 2.5},
		},
	}
}

func testEducation() []model.EducationContent {
	return []model.EducationContent{
		{ID: "edu-1", Title: "What is the glycemic index?", Content: "The **glycemic index** matters.", Type: model.ContentArticle, Level: model.LevelBasic, Tags: []string{"nutrition"}},
		{ID: "edu-2", Title: "Reading labels", Content: "Check **sugars**.\n\nThen fiber.", Type: model.ContentInteractive, Level: model.LevelIntermediate, Tags: []string{"labels"}},
		{ID: "edu-3", Title: "Exercise and glucose", Content: "Move daily.", Type: model.ContentVideo, Level: model.LevelBasic, Tags: []string{"exercise"}},
	}
}
