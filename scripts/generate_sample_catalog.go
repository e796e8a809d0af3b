//go:build ignore

package main

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"glucoguide/internal/catalog"
	"glucoguide/internal/model"
)

// generateSampleCatalog writes the built-in catalog as gzipped envelope
// documents for the file and S3 sources.
// catalog.json.gz:   every food and education entry
// foods.json.gz:     foods only
// education.json.gz: education only
// Loading foods.json.gz and education.json.gz together yields the same
// catalog as catalog.json.gz.
func main() {
	dataDir := "data/catalog"

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	full := catalog.StaticCatalog()
	if err := full.Validate(); err != nil {
		log.Fatalf("Built-in catalog is invalid: %v", err)
	}

	documents := map[string]*model.Catalog{
		"catalog.json.gz":   full,
		"foods.json.gz":     {Foods: full.Foods, Education: []model.EducationContent{}},
		"education.json.gz": {Foods: []model.FoodItem{}, Education: full.Education},
	}

	for filename, c := range documents {
		filePath := filepath.Join(dataDir, filename)

		if err := createCatalogFile(filePath, c); err != nil {
			log.Fatalf("Failed to create %s: %v", filename, err)
		}

		fmt.Printf("Created %s with %d foods and %d education entries\n", filePath, len(c.Foods), len(c.Education))
	}

	fmt.Println("\nSample catalog files created successfully!")
	fmt.Println("\nRun the API against them with:")
	fmt.Println("  CATALOG_SOURCE=file CATALOG_PATH=data/catalog/foods.json.gz,data/catalog/education.json.gz")
}

func createCatalogFile(filePath string, c *model.Catalog) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)
	defer gzipWriter.Close()

	if err := json.NewEncoder(gzipWriter).Encode(model.Envelope[*model.Catalog]{Data: c}); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}

	return nil
}
