package handler

import (
	"net/http"

	"glucoguide/internal/middleware"
	"glucoguide/internal/model"

	"github.com/rs/zerolog"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// writeJSON writes data inside the response envelope.
func writeJSON[T any](w http.ResponseWriter, status int, data T) {
	middleware.WriteJSON(w, status, model.Envelope[T]{Data: data})
}

// writeError writes an error envelope with the given status, code and message.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, logger zerolog.Logger) {
	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.
		Str("request_id", middleware.RequestIDFromContext(r.Context())).
		Str("code", code).
		Int("status", status).
		Str("error", message).
		Msg("handler error")

	middleware.WriteError(w, r, status, code, message)
}

// writeServiceError maps a service error to a status code. Domain errors keep
// their own message; anything else is reported as an internal error.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, logger zerolog.Logger) {
	code := model.CodeOf(err)
	if code == model.ErrCodeInternalError {
		logger.Error().Err(err).Msg("unexpected service error")
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", logger)
		return
	}

	writeError(w, r, statusFor(code), code, err.Error(), logger)
}

func statusFor(code string) int {
	switch code {
	case model.ErrCodeInvalidJSON,
		model.ErrCodeInvalidNutrition,
		model.ErrCodeInvalidCategory,
		model.ErrCodeInvalidLevel:
		return http.StatusBadRequest
	case model.ErrCodeFoodNotFound, model.ErrCodeContentNotFound, model.ErrCodeNotFound:
		return http.StatusNotFound
	case model.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case model.ErrCodeUnauthorised:
		return http.StatusUnauthorized
	case model.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// allowMethod reports whether r uses method, writing a 405 otherwise.
func allowMethod(w http.ResponseWriter, r *http.Request, method string, logger zerolog.Logger) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeMethodNotAllowed, "method not allowed", logger)
	return false
}

// NotFound answers every unrouted path.
func NotFound(logger zerolog.Logger) http.HandlerFunc {
	logger = logger.With().Str("handler", "not-found").Logger()
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, model.ErrCodeNotFound, "resource not found", logger)
	}
}
