// Command lookup is an interactive food search over the catalog. Each input
// line replaces the query; results are printed once typing settles for the
// debounce delay. An empty line applies the pending query at once.
//
//	:c <category>  filter by category ("all" clears the filter)
//	:q             quit
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"glucoguide/internal/catalog"
	"glucoguide/internal/classifier"
	"glucoguide/internal/config"
	"glucoguide/internal/model"
	"glucoguide/internal/search"

	"github.com/rs/zerolog"
)

func main() {
	var (
		catalogPath string
		category    string
		debounce    time.Duration
		logLevel    string
	)
	flag.StringVar(&catalogPath, "catalog", "", "catalog document to search (default: built-in catalog)")
	flag.StringVar(&category, "category", search.AllCategories, "initial category filter")
	flag.DurationVar(&debounce, "debounce", config.LoadSearch().Debounce, "delay before a query is applied (SEARCH_DEBOUNCE)")
	flag.StringVar(&logLevel, "log-level", "warn", "log level")
	flag.Parse()

	logger := config.NewLogger(config.LoggerConfig{Level: logLevel, Format: "console"})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	foods, err := loadFoods(ctx, catalogPath, logger)
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(os.Stdin, os.Stdout, foods, category, debounce); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadFoods(ctx context.Context, path string, logger zerolog.Logger) ([]model.FoodItem, error) {
	var loader catalog.Loader
	if path == "" {
		loader = catalog.NewStaticLoader(logger)
	} else {
		loader = catalog.NewFileLoader(logger)
	}

	c, err := loader.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate catalog: %w", err)
	}
	return c.Foods, nil
}

// run reads queries from in until EOF or :q and writes every result set to out.
func run(in io.Reader, out io.Writer, foods []model.FoodItem, category string, delay time.Duration) error {
	p := &printer{out: out}

	session := search.NewFoodSession(foods, search.SessionConfig[model.FoodItem]{
		Delay:     delay,
		OnResults: p.print,
	})
	defer session.Close()

	if category != search.AllCategories {
		if err := setCategory(session, category); err != nil {
			return err
		}
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case strings.TrimSpace(line) == ":q":
			return nil
		case line == "":
			session.Flush()
		case strings.HasPrefix(line, ":c "):
			if err := setCategory(session, strings.TrimSpace(strings.TrimPrefix(line, ":c "))); err != nil {
				p.printf("%v\n", err)
			}
		default:
			session.SetQuery(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	// Input ended: apply the last query without waiting for the delay.
	session.Flush()
	return nil
}

func setCategory(session *search.Session[model.FoodItem], category string) error {
	if category != search.AllCategories && !model.Category(category).IsValid() {
		return fmt.Errorf("unknown category %q", category)
	}
	session.SetSelector(category)
	return nil
}

// printer serializes output from the debounce timer and the input loop.
type printer struct {
	mu  sync.Mutex
	out io.Writer
}

func (p *printer) printf(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, format, args...)
}

func (p *printer) print(query, category string, foods []model.FoodItem) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintf(p.out, "query=%q category=%s results=%d\n", query, category, len(foods))
	for _, f := range foods {
		c := classifier.Evaluate(f.Nutrition)
		fmt.Fprintf(p.out, "  %-6s %-20s %-10s %s\n", c.Rating, f.Name, f.Category, c.Rationale)
	}
}
