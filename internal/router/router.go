package router

import (
	"net/http"

	"glucoguide/internal/catalog"
	"glucoguide/internal/handler"
	"glucoguide/internal/metrics"
	"glucoguide/internal/middleware"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Config holds the collaborators the router wires together.
type Config struct {
	FoodHandler      *handler.FoodHandler
	EducationHandler *handler.EducationHandler
	Provider         catalog.Provider

	// Gatherer backs GET /metrics. Nil disables the endpoint.
	Gatherer prometheus.Gatherer

	// RateLimiter is optional.
	RateLimiter *middleware.RateLimiter
	Recorder    metrics.Recorder

	APIKey string
}

// New creates a new HTTP router with all routes and middleware configured.
func New(cfg Config, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", handler.Health(cfg.Provider, logger))

	if cfg.Gatherer != nil {
		mux.Handle("/metrics", metrics.Handler(cfg.Gatherer))
	}

	// Food routes. Methods are checked by the handlers so that a wrong
	// method gets an enveloped 405.
	mux.HandleFunc("/api/foods", cfg.FoodHandler.List)
	mux.HandleFunc("/api/foods/categories", cfg.FoodHandler.Categories)
	mux.HandleFunc("/api/foods/{id}", cfg.FoodHandler.GetByID)
	mux.HandleFunc("/api/classify", cfg.FoodHandler.Classify)

	// Education routes
	mux.HandleFunc("/api/education", cfg.EducationHandler.List)
	mux.HandleFunc("/api/education/levels", cfg.EducationHandler.Levels)
	mux.HandleFunc("/api/education/{id}", cfg.EducationHandler.GetByID)

	mux.HandleFunc("/", handler.NotFound(logger))

	// Apply middleware in order: Recovery -> RequestID -> Logging -> CORS -> RateLimit -> APIKeyAuth
	var h http.Handler = mux
	h = middleware.APIKeyAuth(cfg.APIKey, logger)(h)
	if cfg.RateLimiter != nil {
		h = cfg.RateLimiter.Middleware()(h)
	}
	h = middleware.CORS(h)
	h = middleware.Logging(logger, cfg.Recorder)(h)
	h = middleware.RequestID(h)
	h = middleware.Recovery(logger)(h)

	return h
}
