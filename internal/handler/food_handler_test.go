package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"glucoguide/internal/model"
	"glucoguide/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleFood() service.FoodView {
	return service.FoodView{
		ID:            "5",
		Name:          "Avena",
		Category:      model.CategoryCereals,
		GlycemicIndex: 55,
		Carbohydrates: 27,
		Fiber:         4,
		Sugars:        1,
		Portion:       "40g",
		CommonNames:   []string{"oats"},
		TrafficLight:  model.RatingYellow,
		Classification: model.Classification{
			Rating:    model.RatingYellow,
			Color:     "#FFC107",
			Rationale: "Consume in moderation",
			Score:     2,
		},
	}
}

func TestFoodHandler_List(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		url            string
		query          string
		category       string
		mockReturn     []service.FoodView
		mockError      error
		callService    bool
		expectedStatus int
		expectedCode   string
		expectedCount  int
	}{
		{
			name:           "Successful retrieval",
			method:         http.MethodGet,
			url:            "/api/foods",
			mockReturn:     []service.FoodView{sampleFood()},
			callService:    true,
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{
			name:           "Query and category forwarded",
			method:         http.MethodGet,
			url:            "/api/foods?q=aven&category=cereals",
			query:          "aven",
			category:       "cereals",
			mockReturn:     []service.FoodView{sampleFood()},
			callService:    true,
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{
			name:           "No matches yields empty list",
			method:         http.MethodGet,
			url:            "/api/foods?q=zzz",
			query:          "zzz",
			mockReturn:     []service.FoodView{},
			callService:    true,
			expectedStatus: http.StatusOK,
			expectedCount:  0,
		},
		{
			name:           "Unknown category",
			method:         http.MethodGet,
			url:            "/api/foods?category=snacks",
			category:       "snacks",
			mockError:      model.ErrInvalidCategory,
			callService:    true,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidCategory,
		},
		{
			name:           "Unexpected service error",
			method:         http.MethodGet,
			url:            "/api/foods",
			mockError:      assert.AnError,
			callService:    true,
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   model.ErrCodeInternalError,
		},
		{
			name:           "Method not allowed",
			method:         http.MethodPost,
			url:            "/api/foods",
			expectedStatus: http.StatusMethodNotAllowed,
			expectedCode:   model.ErrCodeMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockFoodService)
			h := NewFoodHandler(mockService, zerolog.Nop())

			if tt.callService {
				mockService.On("List", mock.Anything, tt.query, tt.category).Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(tt.method, tt.url, nil)
			w := httptest.NewRecorder()

			h.List(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				env := decodeResponse[json.RawMessage](t, w.Body.Bytes())
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.expectedCode, env.Error.Error)
			} else {
				env := decodeResponse[[]service.FoodView](t, w.Body.Bytes())
				assert.Nil(t, env.Error)
				assert.Len(t, env.Data, tt.expectedCount)
			}

			mockService.AssertExpectations(t)
		})
	}
}

func TestFoodHandler_List_InternalErrorHidesDetail(t *testing.T) {
	mockService := new(MockFoodService)
	mockService.On("List", mock.Anything, "", "").Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	NewFoodHandler(mockService, zerolog.Nop()).List(w, httptest.NewRequest(http.MethodGet, "/api/foods", nil))

	env := decodeResponse[json.RawMessage](t, w.Body.Bytes())
	require.NotNil(t, env.Error)
	assert.Equal(t, "internal server error", env.Error.Message)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}

func TestFoodHandler_GetByID(t *testing.T) {
	food := sampleFood()

	tests := []struct {
		name           string
		foodID         string
		mockReturn     *service.FoodView
		mockError      error
		callService    bool
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Successful retrieval",
			foodID:         "5",
			mockReturn:     &food,
			callService:    true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Food not found",
			foodID:         "999",
			mockError:      model.ErrFoodNotFound,
			callService:    true,
			expectedStatus: http.StatusNotFound,
			expectedCode:   model.ErrCodeFoodNotFound,
		},
		{
			name:           "Wrapped not found",
			foodID:         "998",
			mockError:      fmt.Errorf("lookup 998: %w", model.ErrFoodNotFound),
			callService:    true,
			expectedStatus: http.StatusNotFound,
			expectedCode:   model.ErrCodeFoodNotFound,
		},
		{
			name:           "Missing ID",
			foodID:         "",
			expectedStatus: http.StatusNotFound,
			expectedCode:   model.ErrCodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockFoodService)
			h := NewFoodHandler(mockService, zerolog.Nop())

			if tt.callService {
				mockService.On("Get", mock.Anything, tt.foodID).Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/foods/"+tt.foodID, nil)
			req.SetPathValue("id", tt.foodID)
			w := httptest.NewRecorder()

			h.GetByID(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				env := decodeResponse[json.RawMessage](t, w.Body.Bytes())
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.expectedCode, env.Error.Error)
			} else {
				env := decodeResponse[service.FoodView](t, w.Body.Bytes())
				assert.Equal(t, food, env.Data)
			}

			mockService.AssertExpectations(t)
		})
	}
}

func TestFoodHandler_Categories(t *testing.T) {
	mockService := new(MockFoodService)
	counts := []service.CategoryCount{
		{Category: model.CategoryFruits, Foods: 3},
		{Category: model.CategoryCereals, Foods: 2},
	}
	mockService.On("Categories", mock.Anything).Return(counts)

	h := NewFoodHandler(mockService, zerolog.Nop())
	w := httptest.NewRecorder()
	h.Categories(w, httptest.NewRequest(http.MethodGet, "/api/foods/categories", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeResponse[[]service.CategoryCount](t, w.Body.Bytes())
	assert.Equal(t, counts, env.Data)
	mockService.AssertExpectations(t)
}

func TestFoodHandler_Classify(t *testing.T) {
	green := &model.Classification{
		Rating:    model.RatingGreen,
		Color:     "#4CAF50",
		Rationale: "Excellent choice",
		Score:     7,
	}

	tests := []struct {
		name           string
		method         string
		body           string
		expected       *model.Nutrition
		mockReturn     *model.Classification
		mockError      error
		expectedStatus int
		expectedCode   string
		expectedMsg    string
	}{
		{
			name:           "Valid profile",
			method:         http.MethodPost,
			body:           `{"glycemicIndex":30,"carbohydrates":8,"fiber":6,"sugars":2}`,
			expected:       &model.Nutrition{GlycemicIndex: 30, Carbohydrates: 8, Fiber: 6, Sugars: 2},
			mockReturn:     green,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Explicit zeros are a valid profile",
			method:         http.MethodPost,
			body:           `{"glycemicIndex":0,"carbohydrates":0,"fiber":0,"sugars":0}`,
			expected:       &model.Nutrition{},
			mockReturn:     green,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Sugars exceed carbohydrates",
			method:         http.MethodPost,
			body:           `{"glycemicIndex":30,"carbohydrates":2,"fiber":6,"sugars":5}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidNutrition,
			expectedMsg:    "exceed carbohydrates",
		},
		{
			name:           "Empty profile",
			method:         http.MethodPost,
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidNutrition,
			expectedMsg:    "glycemicIndex is required",
		},
		{
			name:           "Missing fiber",
			method:         http.MethodPost,
			body:           `{"glycemicIndex":30,"carbohydrates":8,"sugars":2}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidNutrition,
			expectedMsg:    "fiber is required",
		},
		{
			name:           "Null field",
			method:         http.MethodPost,
			body:           `{"glycemicIndex":null,"carbohydrates":8,"fiber":6,"sugars":2}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidNutrition,
			expectedMsg:    "glycemicIndex is required",
		},
		{
			name:           "Service rejects profile",
			method:         http.MethodPost,
			body:           `{"glycemicIndex":30,"carbohydrates":8,"fiber":6,"sugars":2}`,
			expected:       &model.Nutrition{GlycemicIndex: 30, Carbohydrates: 8, Fiber: 6, Sugars: 2},
			mockError:      model.ErrInvalidNutrition,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidNutrition,
		},
		{
			name:           "Malformed JSON",
			method:         http.MethodPost,
			body:           `{"glycemicIndex":`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidJSON,
		},
		{
			name:           "Unknown field",
			method:         http.MethodPost,
			body:           `{"glycemicIndex":30,"calories":100}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidJSON,
		},
		{
			name:           "Trailing data",
			method:         http.MethodPost,
			body:           `{"glycemicIndex":30}{"glycemicIndex":31}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidJSON,
		},
		{
			name:           "Method not allowed",
			method:         http.MethodGet,
			expectedStatus: http.StatusMethodNotAllowed,
			expectedCode:   model.ErrCodeMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockFoodService)
			h := NewFoodHandler(mockService, zerolog.Nop())

			if tt.expected != nil {
				mockService.On("Classify", mock.Anything, *tt.expected).Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(tt.method, "/api/classify", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			h.Classify(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				env := decodeResponse[json.RawMessage](t, w.Body.Bytes())
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.expectedCode, env.Error.Error)
				assert.Contains(t, env.Error.Message, tt.expectedMsg)
			} else {
				env := decodeResponse[model.Classification](t, w.Body.Bytes())
				assert.Equal(t, *green, env.Data)
			}

			mockService.AssertExpectations(t)
		})
	}
}

func TestFoodHandler_Classify_OversizedBody(t *testing.T) {
	mockService := new(MockFoodService)
	h := NewFoodHandler(mockService, zerolog.Nop())

	body := bytes.Repeat([]byte(" "), maxBodyBytes+1)
	req := httptest.NewRequest(http.MethodPost, "/api/classify", bytes.NewReader(body))
	w := httptest.NewRecorder()

	h.Classify(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Classify", mock.Anything, mock.Anything)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{model.ErrCodeInvalidNutrition, http.StatusBadRequest},
		{model.ErrCodeInvalidCategory, http.StatusBadRequest},
		{model.ErrCodeInvalidLevel, http.StatusBadRequest},
		{model.ErrCodeFoodNotFound, http.StatusNotFound},
		{model.ErrCodeContentNotFound, http.StatusNotFound},
		{model.ErrCodeRateLimited, http.StatusTooManyRequests},
		{model.ErrCodeMalformedCatalog, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, statusFor(tt.code))
		})
	}
}

func TestNotFound(t *testing.T) {
	w := httptest.NewRecorder()
	NotFound(zerolog.Nop())(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := decodeResponse[json.RawMessage](t, w.Body.Bytes())
	require.NotNil(t, env.Error)
	assert.Equal(t, model.ErrCodeNotFound, env.Error.Error)
}
