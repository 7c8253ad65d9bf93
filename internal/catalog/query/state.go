package query

import "github.com/fekuna/omnipos-storefront-service/internal/model"

// State is the browsing position: search text, category filter and page.
// Transitions return a new State; changing the search text or the category
// always sends the user back to page 1.
type State struct {
	SearchQuery      string `json:"searchQuery"`
	SelectedCategory string `json:"selectedCategory"`
	CurrentPage      int    `json:"currentPage"`
}

func NewState() State {
	return State{SelectedCategory: AllCategories, CurrentPage: 1}
}

func (s State) WithSearch(q string) State {
	if q == s.SearchQuery {
		return s
	}
	s.SearchQuery = q
	s.CurrentPage = 1
	return s
}

func (s State) WithCategory(category string) State {
	if category == "" {
		category = AllCategories
	}
	if category == s.SelectedCategory {
		return s
	}
	s.SelectedCategory = category
	s.CurrentPage = 1
	return s
}

// WithPage moves to page, clamped into [1, totalPages].
func (s State) WithPage(page, totalPages int) State {
	if totalPages < 1 {
		totalPages = 1
	}
	switch {
	case page < 1:
		page = 1
	case page > totalPages:
		page = totalPages
	}
	s.CurrentPage = page
	return s
}

// Cleared drops both filters.
func (s State) Cleared() State {
	return NewState()
}

func (s State) HasActiveFilters() bool {
	return s.SearchQuery != "" || s.SelectedCategory != AllCategories
}

// Normalized repairs a state received from a client: an empty category means
// all categories and pages start at 1.
func (s State) Normalized() State {
	if s.SelectedCategory == "" {
		s.SelectedCategory = AllCategories
	}
	if s.CurrentPage < 1 {
		s.CurrentPage = 1
	}
	return s
}

func (s State) Run(catalog []model.Product, pageSize int) Result {
	return Run(catalog, s.SearchQuery, s.SelectedCategory, s.CurrentPage, pageSize)
}
