package service

import (
	"context"

	"glucoguide/internal/catalog"
	"glucoguide/internal/markup"
	"glucoguide/internal/metrics"
	"glucoguide/internal/model"
	"glucoguide/internal/search"

	"github.com/rs/zerolog"
)

// contentService implements ContentService.
type contentService struct {
	provider catalog.Provider
	renderer *markup.Renderer
	metrics  metrics.Recorder
	logger   zerolog.Logger
}

// NewContentService creates a new education content service. recorder may be nil.
func NewContentService(provider catalog.Provider, renderer *markup.Renderer, recorder metrics.Recorder, logger zerolog.Logger) ContentService {
	if renderer == nil {
		renderer = markup.NewRenderer()
	}
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &contentService{
		provider: provider,
		renderer: renderer,
		metrics:  recorder,
		logger:   logger.With().Str("service", "content").Logger(),
	}
}

func (s *contentService) List(ctx context.Context, query, level string) ([]model.EducationContent, error) {
	if level == "" {
		level = search.AllCategories
	}
	if level != search.AllCategories && !model.Level(level).IsValid() {
		s.logger.Debug().Str("level", level).Msg("unknown level")
		return nil, model.ErrInvalidLevel
	}

	matches := search.Education(s.provider.Education(), query, level)
	s.metrics.RecordSearch("education", len(matches))

	s.logger.Debug().
		Str("query", query).
		Str("level", level).
		Int("count", len(matches)).
		Msg("listed education content")

	return matches, nil
}

func (s *contentService) Get(ctx context.Context, id string) (*ContentView, error) {
	if id == "" {
		s.logger.Warn().Msg("content ID is empty")
		return nil, model.ErrContentNotFound
	}

	c, err := s.provider.Content(id)
	if err != nil {
		s.logger.Debug().Str("content_id", id).Msg("content not found")
		return nil, err
	}

	return &ContentView{
		EducationContent: c,
		HTML:             s.renderer.HTML(c.Content),
		Segments:         markup.Segments(c.Content),
	}, nil
}

func (s *contentService) Levels(ctx context.Context) []LevelCount {
	counts := make(map[model.Level]int)
	for _, e := range s.provider.Education() {
		counts[e.Level]++
	}

	levels := model.Levels()
	result := make([]LevelCount, 0, len(levels))
	for _, l := range levels {
		result = append(result, LevelCount{Level: l, Entries: counts[l]})
	}
	return result
}
