package search

import (
	"slices"
	"sync"
	"time"

	"glucoguide/internal/model"
)

// ResultsFunc receives the effective query, the selector and the filtered
// items after every recomputation.
type ResultsFunc[T any] func(query, selector string, results []T)

// SessionConfig holds the optional settings of a Session.
type SessionConfig[T any] struct {
	// Delay is the debounce delay. Default: DefaultDelay.
	Delay time.Duration

	// OnResults, if set, is called after every recomputation, outside the
	// session lock.
	OnResults ResultsFunc[T]
}

// Session is the ephemeral search state of one listing screen: the raw query
// as typed, the debounced effective query, the selected category or level,
// and the current filtered results.
//
// The raw query changes synchronously on every SetQuery. The effective query
// only changes once the raw query has been stable for the debounce delay, and
// only then are results recomputed. Selector and item changes recompute
// immediately using the current effective query.
type Session[T any] struct {
	mu         sync.Mutex
	items      []T
	raw        string
	effective  string
	selector   string
	results    []T
	recomputes int

	selectorOf SelectorFunc[T]
	fields     FieldsFunc[T]
	onResults  ResultsFunc[T]
	debouncer  *Debouncer[string]
}

// NewSession creates a session over items with an empty query and the
// AllCategories selector.
func NewSession[T any](items []T, selectorOf SelectorFunc[T], fields FieldsFunc[T], cfg SessionConfig[T]) *Session[T] {
	s := &Session[T]{
		items:      items,
		selector:   AllCategories,
		selectorOf: selectorOf,
		fields:     fields,
		onResults:  cfg.OnResults,
	}
	s.results = Filter(items, "", AllCategories, selectorOf, fields)
	s.debouncer = NewDebouncer(cfg.Delay, s.applyQuery)
	return s
}

// NewFoodSession creates a Session over foods filtered by category.
func NewFoodSession(items []model.FoodItem, cfg SessionConfig[model.FoodItem]) *Session[model.FoodItem] {
	return NewSession(items, FoodCategory, FoodFields, cfg)
}

// NewEducationSession creates a Session over education content filtered by level.
func NewEducationSession(items []model.EducationContent, cfg SessionConfig[model.EducationContent]) *Session[model.EducationContent] {
	return NewSession(items, ContentLevel, ContentFields, cfg)
}

// SetQuery records a new raw query and restarts the debounce delay.
func (s *Session[T]) SetQuery(raw string) {
	s.mu.Lock()
	s.raw = raw
	s.mu.Unlock()

	s.debouncer.Trigger(raw)
}

// SetSelector changes the category or level filter and recomputes at once.
// An empty selector means AllCategories.
func (s *Session[T]) SetSelector(selector string) {
	if selector == "" {
		selector = AllCategories
	}

	s.mu.Lock()
	if selector == s.selector {
		s.mu.Unlock()
		return
	}
	s.selector = selector
	s.recomputeAndNotify()
}

// SetItems replaces the underlying collection and recomputes at once.
func (s *Session[T]) SetItems(items []T) {
	s.mu.Lock()
	s.items = items
	s.recomputeAndNotify()
}

// applyQuery is the debounced callback promoting a raw query to effective.
func (s *Session[T]) applyQuery(query string) {
	s.mu.Lock()
	if query == s.effective {
		s.mu.Unlock()
		return
	}
	s.effective = query
	s.recomputeAndNotify()
}

// recomputeAndNotify must be called with s.mu held; it releases the lock.
func (s *Session[T]) recomputeAndNotify() {
	s.results = Filter(s.items, s.effective, s.selector, s.selectorOf, s.fields)
	s.recomputes++

	query, selector, results := s.effective, s.selector, slices.Clone(s.results)
	notify := s.onResults
	s.mu.Unlock()

	if notify != nil {
		notify(query, selector, results)
	}
}

// Results returns the current filtered items.
func (s *Session[T]) Results() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.results)
}

// RawQuery returns the query exactly as last typed.
func (s *Session[T]) RawQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.raw
}

// EffectiveQuery returns the debounced query the results are based on.
func (s *Session[T]) EffectiveQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.effective
}

// Selector returns the current category or level filter.
func (s *Session[T]) Selector() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selector
}

// Recomputations returns how many times the results were recomputed since
// the session was created.
func (s *Session[T]) Recomputations() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recomputes
}

// Pending reports whether a query change is waiting for its delay to elapse.
func (s *Session[T]) Pending() bool {
	return s.debouncer.Pending()
}

// Flush applies the raw query immediately instead of waiting for the
// debounce delay, as when the user submits the search.
func (s *Session[T]) Flush() {
	s.debouncer.Flush(s.RawQuery())
}

// Close cancels any pending query change. The session keeps its last results
// but no longer reacts to SetQuery.
func (s *Session[T]) Close() {
	s.debouncer.Stop()
}
