package handler

import (
	"bytes"
	"context"
	"testing"

	"glucoguide/internal/catalog"
	"glucoguide/internal/model"
	"glucoguide/internal/service"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockFoodService is a mock implementation of FoodService.
type MockFoodService struct {
	mock.Mock
}

func (m *MockFoodService) List(ctx context.Context, query, category string) ([]service.FoodView, error) {
	args := m.Called(ctx, query, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.FoodView), args.Error(1)
}

func (m *MockFoodService) Get(ctx context.Context, id string) (*service.FoodView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FoodView), args.Error(1)
}

func (m *MockFoodService) Categories(ctx context.Context) []service.CategoryCount {
	args := m.Called(ctx)
	return args.Get(0).([]service.CategoryCount)
}

func (m *MockFoodService) Classify(ctx context.Context, n model.Nutrition) (*model.Classification, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Classification), args.Error(1)
}

// MockContentService is a mock implementation of ContentService.
type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) List(ctx context.Context, query, level string) ([]model.EducationContent, error) {
	args := m.Called(ctx, query, level)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.EducationContent), args.Error(1)
}

func (m *MockContentService) Get(ctx context.Context, id string) (*service.ContentView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ContentView), args.Error(1)
}

func (m *MockContentService) Levels(ctx context.Context) []service.LevelCount {
	args := m.Called(ctx)
	return args.Get(0).([]service.LevelCount)
}

// MockProvider is a mock implementation of catalog.Provider.
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Refresh(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockProvider) Foods() []model.FoodItem {
	return m.Called().Get(0).([]model.FoodItem)
}

func (m *MockProvider) Education() []model.EducationContent {
	return m.Called().Get(0).([]model.EducationContent)
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
	return m.Called().Get(0).(catalog.Status)
}

// decodeResponse decodes a response envelope with data of type T.
func decodeResponse[T any](t *testing.T, body []byte) *model.Envelope[T] {
	t.Helper()
	env, err := model.DecodeEnvelope[T](bytes.NewReader(body))
	require.NoError(t, err)
	return env
}
