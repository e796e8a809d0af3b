// Package search implements the in-memory filter pipeline used by food and
// education listings, and the debounced search session that drives it from
// keystroke-level input.
package search

import (
	"strings"

	"glucoguide/internal/model"
)

// AllCategories is the selector that disables category/level filtering.
const AllCategories = "all"

// SelectorFunc extracts the category or level an item is filtered on.
type SelectorFunc[T any] func(item T) string

// FieldsFunc extracts the strings an item's text search is matched against.
type FieldsFunc[T any] func(item T) []string

// Filter returns the items whose selector value equals selector (or all of
// them when selector is AllCategories or empty) and whose match fields
// contain query as a case-insensitive substring. A blank query matches
// everything. Input order is preserved and the result is never nil.
func Filter[T any](items []T, query, selector string, selectorOf SelectorFunc[T], fields FieldsFunc[T]) []T {
	result := make([]T, 0, len(items))

	needle := normalize(query)
	filterSelector := selector != "" && selector != AllCategories

	for _, item := range items {
		if filterSelector && selectorOf(item) != selector {
			continue
		}
		if needle != "" && !matches(fields(item), needle) {
			continue
		}
		result = append(result, item)
	}

	return result
}

// matches reports whether any field contains the already-normalized needle.
func matches(fields []string, needle string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// FoodCategory is the SelectorFunc for foods.
func FoodCategory(f model.FoodItem) string {
	return string(f.Category)
}

// FoodFields matches foods by name and alternate names.
func FoodFields(f model.FoodItem) []string {
	fields := make([]string, 0, len(f.CommonNames)+1)
	fields = append(fields, f.Name)
	return append(fields, f.CommonNames...)
}

// ContentLevel is the SelectorFunc for education content.
func ContentLevel(c model.EducationContent) string {
	return string(c.Level)
}

// ContentFields matches education content by title and tags.
func ContentFields(c model.EducationContent) []string {
	fields := make([]string, 0, len(c.Tags)+1)
	fields = append(fields, c.Title)
	return append(fields, c.Tags...)
}

// Foods filters foods by query and category.
func Foods(items []model.FoodItem, query, category string) []model.FoodItem {
	return Filter(items, query, category, FoodCategory, FoodFields)
}

// Education filters education content by query and level.
func Education(items []model.EducationContent, query, level string) []model.EducationContent {
	return Filter(items, query, level, ContentLevel, ContentFields)
}
