package dto

import (
	"github.com/fekuna/omnipos-storefront-service/internal/catalog/query"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
)

type ProductFilters struct {
	SearchQuery string
	Category    string // empty means all
	Page        int
	PageSize    int // <= 0 uses the configured page size
}

// BrowseInput is a client-held query state plus at most one transition.
type BrowseInput struct {
	State        query.State
	SetSearch    *string
	SetCategory  *string
	GoToPage     *int
	ClearFilters bool
}

type BrowseOutput struct {
	State  query.State
	Result query.Result
}

type StoreInfo struct {
	BusinessName string
	Contact      model.ContactInfo
}
