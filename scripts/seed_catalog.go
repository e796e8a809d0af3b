//go:build ignore

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"glucoguide/internal/catalog"
	"glucoguide/internal/config"
	"glucoguide/internal/database"
	"glucoguide/internal/repository"
)

// seedCatalog migrates the configured database and replaces its catalog with
// the document at the path given as first argument, or the built-in catalog.
// Connection settings come from the DB_* environment variables.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to load configuration: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := database.RunMigrations(cfg.Database.MigrationURL(), logger); err != nil {
		fmt.Fprintf(os.Stderr, "Unable to migrate database: %v\n", err)
		os.Exit(1)
	}

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	var dbName string
	if err := pool.QueryRow(ctx, "SELECT current_database()").Scan(&dbName); err != nil {
		fmt.Fprintf(os.Stderr, "QueryRow failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully connected to database: %s\n", dbName)

	loader := catalog.NewStaticLoader(logger)
	location := ""
	if len(os.Args) > 1 {
		loader = catalog.NewFileLoader(logger)
		location = os.Args[1]
	}

	c, err := loader.Load(ctx, location)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to load catalog: %v\n", err)
		os.Exit(1)
	}

	if err := repository.NewCatalogRepository(pool, logger).ReplaceCatalog(ctx, c); err != nil {
		fmt.Fprintf(os.Stderr, "Unable to seed catalog: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Seeded %d foods and %d education entries\n", len(c.Foods), len(c.Education))
}
