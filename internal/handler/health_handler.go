package handler

import (
	"net/http"
	"time"

	"glucoguide/internal/catalog"

	"github.com/rs/zerolog"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string        `json:"status"`
	Catalog CatalogHealth `json:"catalog"`
}

// CatalogHealth is the public part of catalog.Status. Load errors name
// buckets, paths and URLs, so they are logged rather than served.
type CatalogHealth struct {
	Origin    catalog.Origin `json:"origin"`
	Foods     int            `json:"foods"`
	Education int            `json:"education"`
	LoadedAt  time.Time      `json:"loadedAt"`
}

// Health handles GET /health. The service stays healthy while serving an
// empty or cached catalog; the catalog origin tells operators which.
func Health(provider catalog.Provider, logger zerolog.Logger) http.HandlerFunc {
	logger = logger.With().Str("handler", "health").Logger()

	return func(w http.ResponseWriter, r *http.Request) {
		st := provider.Status()

		status := "healthy"
		if st.Origin != catalog.OriginLoader {
			status = "degraded"
			logger.Warn().
				Str("origin", string(st.Origin)).
				Str("last_error", st.LastError).
				Msg("serving degraded catalog")
		}

		writeJSON(w, http.StatusOK, HealthResponse{
			Status: status,
			Catalog: CatalogHealth{
				Origin:    st.Origin,
				Foods:     st.Foods,
				Education: st.Education,
				LoadedAt:  st.LoadedAt,
			},
		})
	}
}
