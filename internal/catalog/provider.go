package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"glucoguide/internal/model"
	"glucoguide/internal/store"

	"github.com/rs/zerolog"
)

// DefaultCacheKey is the store key of the last-known-good catalog.
const DefaultCacheKey = "catalog:last-known-good"

// ProviderConfig holds configuration for the catalog provider.
type ProviderConfig struct {
	// Locations are loaded concurrently and merged in order.
	Locations []string

	// CacheKey is the store key of the last-known-good catalog.
	// Default: DefaultCacheKey
	CacheKey string
}

// DefaultProviderConfig returns the default provider configuration.
func DefaultProviderConfig() *ProviderConfig {
	return &ProviderConfig{
		Locations: []string{"data/catalog/catalog.json.gz"},
		CacheKey:  DefaultCacheKey,
	}
}

// provider implements Provider with an in-memory copy of the catalog.
type provider struct {
	config   *ProviderConfig
	loader   Loader
	store    store.Store
	recorder LoadRecorder
	logger   zerolog.Logger

	mu        sync.RWMutex
	catalog   *model.Catalog
	foodIdx   map[string]int
	eduIdx    map[string]int
	origin    Origin
	loadedAt  time.Time
	lastError string
}

// NewProvider creates a catalog provider serving an empty catalog until the
// first Refresh. st and recorder may be nil.
func NewProvider(config *ProviderConfig, loader Loader, st store.Store, recorder LoadRecorder, logger zerolog.Logger) Provider {
	if config == nil {
		config = DefaultProviderConfig()
	}
	if config.CacheKey == "" {
		config.CacheKey = DefaultCacheKey
	}

	p := &provider{
		config:   config,
		loader:   loader,
		store:    st,
		recorder: recorder,
		logger:   logger.With().Str("component", "catalog-provider").Logger(),
	}
	p.install(&model.Catalog{}, OriginEmpty)
	return p
}

// Refresh loads every configured location concurrently. All locations must
// load for the result to replace the current catalog.
func (p *provider) Refresh(ctx context.Context) error {
	start := time.Now()

	catalog, err := p.loadAll(ctx)
	if err == nil {
		err = catalog.Validate()
	}

	duration := time.Since(start)

	if err != nil {
		p.record(OriginLoader, false, duration)
		p.logger.Error().
			Err(err).
			Dur("duration", duration).
			Msg("failed to refresh catalog")
		p.useFallback(ctx, err)
		return fmt.Errorf("failed to refresh catalog: %w", err)
	}

	p.record(OriginLoader, true, duration)
	p.install(catalog, OriginLoader)
	p.saveLastKnownGood(ctx, catalog)

	p.logger.Info().
		Int("foods", len(catalog.Foods)).
		Int("education", len(catalog.Education)).
		Dur("duration", duration).
		Msg("catalog refreshed")

	return nil
}

// loadAll loads all locations concurrently and merges the results in the
// configured order.
func (p *provider) loadAll(ctx context.Context) (*model.Catalog, error) {
	type loadResult struct {
		index   int
		catalog *model.Catalog
		err     error
	}

	resultChan := make(chan loadResult, len(p.config.Locations))
	var wg sync.WaitGroup

	for i, location := range p.config.Locations {
		wg.Add(1)
		go func(index int, loc string) {
			defer wg.Done()

			c, err := p.loader.Load(ctx, loc)
			resultChan <- loadResult{index: index, catalog: c, err: err}
		}(i, location)
	}

	wg.Wait()
	close(resultChan)

	results := make([]loadResult, len(p.config.Locations))
	for result := range resultChan {
		results[result.index] = result
	}

	merged := &model.Catalog{}
	for i, result := range results {
		if result.err != nil {
			return nil, fmt.Errorf("failed to load catalog %s: %w", p.config.Locations[i], result.err)
		}
		if result.catalog == nil {
			return nil, fmt.Errorf("loader returned no catalog for %s", p.config.Locations[i])
		}
		merged.Foods = append(merged.Foods, result.catalog.Foods...)
		merged.Education = append(merged.Education, result.catalog.Education...)
	}

	return merged, nil
}

// useFallback keeps the in-memory catalog if it came from a loader, otherwise
// tries the store, otherwise keeps what is there.
func (p *provider) useFallback(ctx context.Context, loadErr error) {
	p.mu.Lock()
	p.lastError = loadErr.Error()
	origin := p.origin
	p.mu.Unlock()

	if origin == OriginLoader || origin == OriginCache {
		p.logger.Warn().Str("origin", string(origin)).Msg("keeping last-known-good catalog")
		return
	}

	catalog, err := p.loadLastKnownGood(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			p.logger.Warn().Err(err).Msg("failed to read cached catalog")
		}
		p.logger.Warn().Msg("no catalog available, serving empty catalog")
		p.record(OriginEmpty, false, 0)
		return
	}

	p.install(catalog, OriginCache)
	p.record(OriginCache, true, 0)
	p.logger.Warn().
		Int("foods", len(catalog.Foods)).
		Int("education", len(catalog.Education)).
		Msg("serving cached catalog")
}

func (p *provider) loadLastKnownGood(ctx context.Context) (*model.Catalog, error) {
	if p.store == nil {
		return nil, store.ErrNotFound
	}

	raw, err := p.store.Get(ctx, p.config.CacheKey)
	if err != nil {
		return nil, err
	}

	var catalog model.Catalog
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("failed to decode cached catalog: %w", err)
	}
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("cached catalog is invalid: %w", err)
	}

	return &catalog, nil
}

func (p *provider) saveLastKnownGood(ctx context.Context, catalog *model.Catalog) {
	if p.store == nil {
		return
	}

	raw, err := json.Marshal(catalog)
	if err != nil {
		p.logger.Error().Err(err).Msg("failed to encode catalog for cache")
		return
	}

	if err := p.store.Set(ctx, p.config.CacheKey, raw); err != nil {
		p.logger.Warn().Err(err).Msg("failed to cache catalog")
	}
}

func (p *provider) install(catalog *model.Catalog, origin Origin) {
	foodIdx := make(map[string]int, len(catalog.Foods))
	for i, f := range catalog.Foods {
		foodIdx[f.ID] = i
	}
	eduIdx := make(map[string]int, len(catalog.Education))
	for i, e := range catalog.Education {
		eduIdx[e.ID] = i
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.catalog = catalog
	p.foodIdx = foodIdx
	p.eduIdx = eduIdx
	p.origin = origin
	p.loadedAt = time.Now()
	if origin == OriginLoader {
		p.lastError = ""
	}
}

func (p *provider) record(origin Origin, success bool, duration time.Duration) {
	if p.recorder != nil {
		p.recorder.RecordCatalogLoad(string(origin), success, duration)
	}
}

func (p *provider) Foods() []model.FoodItem {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.catalog.Foods)
}

func (p *provider) Education() []model.EducationContent {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.catalog.Education)
}

func (p *provider) Food(id string) (model.FoodItem, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	i, ok := p.foodIdx[id]
	if !ok {
		return model.FoodItem{}, model.ErrFoodNotFound
	}
	return p.catalog.Foods[i], nil
}

func (p *provider) Content(id string) (model.EducationContent, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	i, ok := p.eduIdx[id]
	if !ok {
		return model.EducationContent{}, model.ErrContentNotFound
	}
	return p.catalog.Education[i], nil
}

func (p *provider) Status() Status {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return Status{
		Origin:    p.origin,
		Foods:     len(p.catalog.Foods),
		Education: len(p.catalog.Education),
		LoadedAt:  p.loadedAt,
		LastError: p.lastError,
	}
}

// RunRefresher refreshes p every interval until ctx is done.
func RunRefresher(ctx context.Context, p Provider, interval time.Duration, logger zerolog.Logger) {
	if interval <= 0 {
		return
	}

	logger = logger.With().Str("component", "catalog-refresher").Logger()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info().Dur("interval", interval).Msg("catalog refresher started")

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("catalog refresher stopped")
			return
		case <-ticker.C:
			if err := p.Refresh(ctx); err != nil {
				logger.Warn().Err(err).Msg("scheduled catalog refresh failed")
			}
		}
	}
}
