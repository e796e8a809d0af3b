package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"glucoguide/internal/model"
	"glucoguide/internal/service"

	"github.com/rs/zerolog"
)

// FoodHandler handles food-related HTTP requests.
type FoodHandler struct {
	service service.FoodService
	logger  zerolog.Logger
}

// NewFoodHandler creates a new food handler.
func NewFoodHandler(service service.FoodService, logger zerolog.Logger) *FoodHandler {
	return &FoodHandler{
		service: service,
		logger:  logger.With().Str("handler", "food").Logger(),
	}
}

// List handles GET /api/foods?q=&category= requests.
func (h *FoodHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet, h.logger) {
		return
	}

	query := r.URL.Query()
	foods, err := h.service.List(r.Context(), query.Get("q"), query.Get("category"))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, foods)
}

// Categories handles GET /api/foods/categories requests.
func (h *FoodHandler) Categories(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet, h.logger) {
		return
	}

	writeJSON(w, http.StatusOK, h.service.Categories(r.Context()))
}

// GetByID handles GET /api/foods/{id} requests.
func (h *FoodHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet, h.logger) {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		writeError(w, r, http.StatusNotFound, model.ErrCodeNotFound, "food ID is required", h.logger)
		return
	}

	food, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, food)
}

// Classify handles POST /api/classify requests. The body is a nutrition
// profile with all four fields; unknown fields are rejected.
func (h *FoodHandler) Classify(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost, h.logger) {
		return
	}

	var req model.NutritionInput
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, err.Error(), h.logger)
		return
	}

	nutrition, err := req.Resolve()
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	classification, err := h.service.Classify(r.Context(), nutrition)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, classification)
}

// decodeBody strictly decodes a single JSON value from the request body.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if dec.More() {
		return errors.New("invalid request body: unexpected data after JSON value")
	}
	return nil
}
