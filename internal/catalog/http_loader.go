package catalog

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"glucoguide/internal/model"

	"github.com/rs/zerolog"
)

// httpLoader implements Loader for a remote catalog endpoint answering with
// the standard response envelope.
type httpLoader struct {
	client  *http.Client
	baseURL string
	logger  zerolog.Logger
}

// NewHTTPLoader creates a loader fetching catalogs over HTTP. A nil client
// gets a default one with a 15 second timeout. baseURL is used when Load is
// called with an empty location.
func NewHTTPLoader(client *http.Client, baseURL string, logger zerolog.Logger) Loader {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &httpLoader{
		client:  client,
		baseURL: baseURL,
		logger:  logger.With().Str("component", "catalog-http-loader").Logger(),
	}
}

// Load GETs the catalog envelope from url.
func (l *httpLoader) Load(ctx context.Context, url string) (*model.Catalog, error) {
	if url == "" {
		url = l.baseURL
	}

	l.logger.Info().Str("url", url).Msg("loading catalog over HTTP")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request for %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		l.logger.Error().Err(err).Str("url", url).Msg("failed to fetch catalog")
		return nil, fmt.Errorf("failed to fetch catalog from %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		l.logger.Error().Int("status", resp.StatusCode).Str("url", url).Msg("unexpected catalog response status")
		return nil, fmt.Errorf("unexpected status %d fetching catalog from %s", resp.StatusCode, url)
	}

	catalog, err := decodeDocument(resp.Body)
	if err != nil {
		l.logger.Error().Err(err).Str("url", url).Msg("failed to decode catalog response")
		return nil, fmt.Errorf("failed to decode catalog from %s: %w", url, err)
	}

	l.logger.Info().
		Str("url", url).
		Int("foods_loaded", len(catalog.Foods)).
		Int("education_loaded", len(catalog.Education)).
		Msg("catalog loaded successfully over HTTP")

	return catalog, nil
}
