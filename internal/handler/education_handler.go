package handler

import (
	"net/http"

	"glucoguide/internal/model"
	"glucoguide/internal/service"

	"github.com/rs/zerolog"
)

// EducationHandler handles education content HTTP requests.
type EducationHandler struct {
	service service.ContentService
	logger  zerolog.Logger
}

// NewEducationHandler creates a new education handler.
func NewEducationHandler(service service.ContentService, logger zerolog.Logger) *EducationHandler {
	return &EducationHandler{
		service: service,
		logger:  logger.With().Str("handler", "education").Logger(),
	}
}

// List handles GET /api/education?q=&level= requests.
func (h *EducationHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet, h.logger) {
		return
	}

	query := r.URL.Query()
	entries, err := h.service.List(r.Context(), query.Get("q"), query.Get("level"))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// Levels handles GET /api/education/levels requests.
func (h *EducationHandler) Levels(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet, h.logger) {
		return
	}

	writeJSON(w, http.StatusOK, h.service.Levels(r.Context()))
}

// GetByID handles GET /api/education/{id} requests.
func (h *EducationHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet, h.logger) {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		writeError(w, r, http.StatusNotFound, model.ErrCodeNotFound, "content ID is required", h.logger)
		return
	}

	content, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, content)
}
