package repository

import (
	"context"

	"glucoguide/internal/model"
)

// CatalogRepository defines the interface for catalog data access operations.
type CatalogRepository interface {
	// ListFoods retrieves every food in catalog order.
	ListFoods(ctx context.Context) ([]model.FoodItem, error)

	// ListEducation retrieves every education entry in catalog order.
	ListEducation(ctx context.Context) ([]model.EducationContent, error)

	// ReplaceCatalog atomically replaces the stored catalog with c.
	ReplaceCatalog(ctx context.Context, c *model.Catalog) error

	// Load reads the whole catalog. The location is ignored; it exists so a
	// repository can serve as a catalog loader.
	Load(ctx context.Context, location string) (*model.Catalog, error)
}
