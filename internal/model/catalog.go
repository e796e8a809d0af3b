package model

import "fmt"

// Catalog is the full collection of foods and education content served by
// the application.
type Catalog struct {
	Foods     []FoodItem         `json:"foods"`
	Education []EducationContent `json:"education"`
}

// Validate rejects catalogs the rest of the system cannot safely consume.
// All failures wrap ErrMalformedCatalog.
func (c *Catalog) Validate() error {
	seen := make(map[string]struct{}, len(c.Foods))
	for i, f := range c.Foods {
		if f.ID == "" {
			return fmt.Errorf("food #%d has no id: %w", i, ErrMalformedCatalog)
		}
		if _, dup := seen[f.ID]; dup {
			return fmt.Errorf("duplicate food id %q: %w", f.ID, ErrMalformedCatalog)
		}
		seen[f.ID] = struct{}{}

		if f.Name == "" {
			return fmt.Errorf("food %q has no name: %w", f.ID, ErrMalformedCatalog)
		}
		if !f.Category.IsValid() {
			return fmt.Errorf("food %q has unknown category %q: %w", f.ID, f.Category, ErrMalformedCatalog)
		}
		if f.TrafficLight != "" && !f.TrafficLight.IsValid() {
			return fmt.Errorf("food %q has unknown traffic light %q: %w", f.ID, f.TrafficLight, ErrMalformedCatalog)
		}
		if err := f.Nutrition.Validate(); err != nil {
			return fmt.Errorf("food %q: %v: %w", f.ID, err, ErrMalformedCatalog)
		}
	}

	seen = make(map[string]struct{}, len(c.Education))
	for i, e := range c.Education {
		if e.ID == "" {
			return fmt.Errorf("education entry #%d has no id: %w", i, ErrMalformedCatalog)
		}
		if _, dup := seen[e.ID]; dup {
			return fmt.Errorf("duplicate education id %q: %w", e.ID, ErrMalformedCatalog)
		}
		seen[e.ID] = struct{}{}

		if e.Title == "" {
			return fmt.Errorf("education entry %q has no title: %w", e.ID, ErrMalformedCatalog)
		}
		if !e.Type.IsValid() {
			return fmt.Errorf("education entry %q has unknown type %q: %w", e.ID, e.Type, ErrMalformedCatalog)
		}
		if !e.Level.IsValid() {
			return fmt.Errorf("education entry %q has unknown level %q: %w", e.ID, e.Level, ErrMalformedCatalog)
		}
	}

	return nil
}
