// Package catalog loads the food and education catalog from its configured
// source and serves it to the rest of the application. Loading failures never
// reach callers of the Provider: they get the last-known-good catalog, or an
// empty one.
package catalog

import (
	"context"
	"time"

	"glucoguide/internal/model"
)

// Loader defines the interface for loading catalog documents.
type Loader interface {
	// Load reads the catalog stored at location. What a location is depends
	// on the loader: a file path, an S3 key, a URL. Implementations validate
	// the document and fail loudly on any shape mismatch.
	Load(ctx context.Context, location string) (*model.Catalog, error)
}

// Provider serves the current catalog.
type Provider interface {
	// Refresh reloads the catalog. On failure the previous catalog stays in
	// place and the load error is returned for logging only.
	Refresh(ctx context.Context) error

	// Foods returns every food, in catalog order.
	Foods() []model.FoodItem

	// Education returns every education entry, in catalog order.
	Education() []model.EducationContent

	// Food returns the food with the given id or model.ErrFoodNotFound.
	Food(id string) (model.FoodItem, error)

	// Content returns the education entry with the given id or
	// model.ErrContentNotFound.
	Content(id string) (model.EducationContent, error)

	// Status describes where the current catalog came from.
	Status() Status
}

// Origin tells whether the served catalog is fresh, recovered or empty.
type Origin string

const (
	OriginLoader Origin = "loader"
	OriginCache  Origin = "cache"
	OriginEmpty  Origin = "empty"
)

// Status is a snapshot of the provider state.
type Status struct {
	Origin    Origin    `json:"origin"`
	Foods     int       `json:"foods"`
	Education int       `json:"education"`
	LoadedAt  time.Time `json:"loadedAt"`
	LastError string    `json:"lastError,omitempty"`
}

// LoadRecorder receives the outcome of every catalog load.
type LoadRecorder interface {
	RecordCatalogLoad(origin string, success bool, duration time.Duration)
}
