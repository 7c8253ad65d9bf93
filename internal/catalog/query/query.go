// Package query filters and paginates the in-memory catalog.
//
// The whole catalog is re-filtered on every call; nothing is indexed or cached.
package query

import (
	"strings"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
)

const (
	// AllCategories disables the category predicate.
	AllCategories = "All"

	DefaultPageSize = 8
)

type Result struct {
	PageItems  []model.Product
	TotalCount int
	// TotalPages is at least 1; an empty result is page 1 of nothing.
	TotalPages int
}

// Run filters catalog by search text and category, keeping catalog order, and
// returns the requested page. A page outside [1, TotalPages] yields an empty
// PageItems. pageSize <= 0 uses DefaultPageSize.
func Run(catalog []model.Product, searchQuery, selectedCategory string, page, pageSize int) Result {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	matched := Filter(catalog, searchQuery, selectedCategory)
	return Result{
		PageItems:  Slice(matched, page, pageSize),
		TotalCount: len(matched),
		TotalPages: TotalPages(len(matched), pageSize),
	}
}

// Filter returns the products matching both predicates in their original order.
func Filter(catalog []model.Product, searchQuery, selectedCategory string) []model.Product {
	needle := strings.ToLower(searchQuery)
	out := make([]model.Product, 0, len(catalog))
	for _, p := range catalog {
		if matchesCategory(p, selectedCategory) && matchesSearch(p, needle) {
			out = append(out, p)
		}
	}
	return out
}

// Matches reports whether p satisfies the search text and the category filter.
func Matches(p model.Product, searchQuery, selectedCategory string) bool {
	return matchesCategory(p, selectedCategory) && matchesSearch(p, strings.ToLower(searchQuery))
}

// matchesSearch expects needle to be lower-cased already.
func matchesSearch(p model.Product, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle) ||
		strings.Contains(strings.ToLower(p.Category), needle)
}

// Category match is exact and case-sensitive, unlike search.
func matchesCategory(p model.Product, selectedCategory string) bool {
	return selectedCategory == AllCategories || p.Category == selectedCategory
}

func TotalPages(count, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	pages := (count + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// Slice returns items[(page-1)*pageSize : page*pageSize] clipped to bounds.
func Slice(items []model.Product, page, pageSize int) []model.Product {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		return []model.Product{}
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []model.Product{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end:end]
}
