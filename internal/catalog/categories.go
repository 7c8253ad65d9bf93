package catalog

import "github.com/fekuna/omnipos-storefront-service/internal/catalog/query"

// ShowcaseCategories are the categories offered as filters, in display order.
var ShowcaseCategories = []string{"Oud", "Floral", "Woody", "Fresh", "Oriental", "Citrus"}

// Categories returns the filter options: "All" followed by the showcase list.
func Categories() []string {
	return append([]string{query.AllCategories}, ShowcaseCategories...)
}
