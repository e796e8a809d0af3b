package repository

import (
	"context"
	"fmt"

	"glucoguide/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// catalogRepository implements the CatalogRepository interface using PostgreSQL.
type catalogRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCatalogRepository creates a new PostgreSQL-backed catalog repository.
func NewCatalogRepository(pool *pgxpool.Pool, logger zerolog.Logger) CatalogRepository {
	return &catalogRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "catalog").Logger(),
	}
}

// ListFoods retrieves every food ordered by catalog position.
func (r *catalogRepository) ListFoods(ctx context.Context) ([]model.FoodItem, error) {
	query := `
		SELECT id, name, category, glycemic_index, carbohydrates, fiber, sugars,
		       portion, traffic_light, common_names
		FROM foods
		ORDER BY position, id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query foods")
		return nil, fmt.Errorf("failed to query foods: %w", err)
	}
	defer rows.Close()

	foods := []model.FoodItem{}
	for rows.Next() {
		var (
			f            model.FoodItem
			category     string
			trafficLight string
		)
		err := rows.Scan(
			&f.ID,
			&f.Name,
			&category,
			&f.GlycemicIndex,
			&f.Carbohydrates,
			&f.Fiber,
			&f.Sugars,
			&f.Portion,
			&trafficLight,
			&f.CommonNames,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan food row")
			return nil, fmt.Errorf("failed to scan food: %w", err)
		}
		f.Category = model.Category(category)
		f.TrafficLight = model.Rating(trafficLight)
		foods = append(foods, f)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating food rows")
		return nil, fmt.Errorf("error iterating foods: %w", err)
	}

	return foods, nil
}

// ListEducation retrieves every education entry ordered by catalog position.
func (r *catalogRepository) ListEducation(ctx context.Context) ([]model.EducationContent, error) {
	query := `
		SELECT id, title, content, type, duration, level, tags
		FROM education
		ORDER BY position, id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query education")
		return nil, fmt.Errorf("failed to query education: %w", err)
	}
	defer rows.Close()

	entries := []model.EducationContent{}
	for rows.Next() {
		var (
			e           model.EducationContent
			contentType string
			level       string
		)
		err := rows.Scan(&e.ID, &e.Title, &e.Content, &contentType, &e.Duration, &level, &e.Tags)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan education row")
			return nil, fmt.Errorf("failed to scan education entry: %w", err)
		}
		e.Type = model.ContentType(contentType)
		e.Level = model.Level(level)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating education rows")
		return nil, fmt.Errorf("error iterating education: %w", err)
	}

	return entries, nil
}

// ReplaceCatalog deletes the stored catalog and inserts c in one transaction.
// Insertion order becomes catalog position.
func (r *catalogRepository) ReplaceCatalog(ctx context.Context, c *model.Catalog) error {
	if err := c.Validate(); err != nil {
		return err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && rbErr != pgx.ErrTxClosed {
			r.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
		}
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM foods`); err != nil {
		return fmt.Errorf("failed to clear foods: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM education`); err != nil {
		return fmt.Errorf("failed to clear education: %w", err)
	}

	batch := &pgx.Batch{}
	for i, f := range c.Foods {
		batch.Queue(`
			INSERT INTO foods (id, position, name, category, glycemic_index, carbohydrates,
			                   fiber, sugars, portion, traffic_light, common_names)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, f.ID, i, f.Name, string(f.Category), f.GlycemicIndex, f.Carbohydrates,
			f.Fiber, f.Sugars, f.Portion, string(f.TrafficLight), nonNil(f.CommonNames))
	}
	for i, e := range c.Education {
		batch.Queue(`
			INSERT INTO education (id, position, title, content, type, duration, level, tags)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, e.ID, i, e.Title, e.Content, string(e.Type), e.Duration, string(e.Level), nonNil(e.Tags))
	}

	results := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			results.Close()
			r.logger.Error().Err(err).Int("statement", i).Msg("failed to insert catalog row")
			return fmt.Errorf("failed to insert catalog row %d: %w", i, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close catalog batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Msg("failed to commit transaction")
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.logger.Info().
		Int("foods", len(c.Foods)).
		Int("education", len(c.Education)).
		Msg("catalog replaced")

	return nil
}

// Load reads foods and education into a validated catalog.
func (r *catalogRepository) Load(ctx context.Context, _ string) (*model.Catalog, error) {
	foods, err := r.ListFoods(ctx)
	if err != nil {
		return nil, err
	}

	education, err := r.ListEducation(ctx)
	if err != nil {
		return nil, err
	}

	c := &model.Catalog{Foods: foods, Education: education}
	if err := c.Validate(); err != nil {
		r.logger.Error().Err(err).Msg("stored catalog is invalid")
		return nil, err
	}

	r.logger.Info().
		Int("foods_loaded", len(foods)).
		Int("education_loaded", len(education)).
		Msg("catalog loaded from database")

	return c, nil
}

// nonNil keeps NULL out of NOT NULL array columns.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
