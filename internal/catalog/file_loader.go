package catalog

import (
	"context"
	"fmt"
	"os"

	"glucoguide/internal/model"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for catalog documents on the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based catalog loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "catalog-file-loader").Logger(),
	}
}

// Load reads a catalog document, plain or gzipped JSON, from filePath.
func (l *fileLoader) Load(ctx context.Context, filePath string) (*model.Catalog, error) {
	if err := ctx.Err(); err != nil {
		l.logger.Warn().Str("file", filePath).Msg("catalog loading cancelled")
		return nil, err
	}

	l.logger.Info().Str("file", filePath).Msg("loading catalog file")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open catalog file")
		return nil, fmt.Errorf("failed to open catalog file %s: %w", filePath, err)
	}
	defer file.Close()

	catalog, err := decodeDocument(file)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to decode catalog file")
		return nil, fmt.Errorf("failed to decode catalog file %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("foods_loaded", len(catalog.Foods)).
		Int("education_loaded", len(catalog.Education)).
		Msg("catalog file loaded successfully")

	return catalog, nil
}
