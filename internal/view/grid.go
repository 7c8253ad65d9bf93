package view

import (
	"fmt"

	"github.com/fekuna/omnipos-storefront-service/internal/catalog/query"
	"github.com/fekuna/omnipos-storefront-service/internal/pricing"
)

type Chip struct {
	Kind  string `json:"kind"` // category | search
	Label string `json:"label"`
}

type CategoryOption struct {
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
}

// PageItem is either a page button or an ellipsis standing in for hidden pages.
type PageItem struct {
	Page     int  `json:"page,omitempty"`
	Current  bool `json:"current,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

type Pagination struct {
	Visible     bool       `json:"visible"`
	CurrentPage int        `json:"currentPage"`
	TotalPages  int        `json:"totalPages"`
	HasPrev     bool       `json:"hasPrev"`
	HasNext     bool       `json:"hasNext"`
	Items       []PageItem `json:"items"`
}

type Grid struct {
	Cards            []Card           `json:"cards"`
	ResultsLabel     string           `json:"resultsLabel"`
	Chips            []Chip           `json:"chips"`
	ShowClearFilters bool             `json:"showClearFilters"`
	Categories       []CategoryOption `json:"categories"`
	Pagination       Pagination       `json:"pagination"`
	Empty            bool             `json:"empty"`
}

func NewGrid(res query.Result, state query.State, categories []string, pageSize int, f *pricing.Formatter) Grid {
	if pageSize <= 0 {
		pageSize = query.DefaultPageSize
	}

	cards := make([]Card, 0, len(res.PageItems))
	for _, p := range res.PageItems {
		cards = append(cards, NewCard(p, f))
	}

	options := make([]CategoryOption, 0, len(categories))
	for _, c := range categories {
		options = append(options, CategoryOption{Name: c, Selected: c == state.SelectedCategory})
	}

	return Grid{
		Cards:            cards,
		ResultsLabel:     ResultsLabel(len(res.PageItems), res.TotalCount, state.CurrentPage, pageSize),
		Chips:            Chips(state),
		ShowClearFilters: state.HasActiveFilters(),
		Categories:       options,
		Pagination:       NewPagination(state.CurrentPage, res.TotalPages),
		Empty:            len(res.PageItems) == 0,
	}
}

// ResultsLabel reports the 1-based range shown on the current page.
func ResultsLabel(shown, total, page, pageSize int) string {
	if shown == 0 {
		return fmt.Sprintf("Showing 0-0 of %d products", total)
	}
	start := (page-1)*pageSize + 1
	return fmt.Sprintf("Showing %d-%d of %d products", start, start+shown-1, total)
}

func Chips(state query.State) []Chip {
	chips := []Chip{}
	if state.SelectedCategory != query.AllCategories {
		chips = append(chips, Chip{Kind: "category", Label: "Category: " + state.SelectedCategory})
	}
	if state.SearchQuery != "" {
		chips = append(chips, Chip{Kind: "search", Label: fmt.Sprintf("Search: %q", state.SearchQuery)})
	}
	return chips
}

// NewPagination lists the first and last page and the neighbours of the
// current one. A page exactly two away from the current one is rendered as an
// ellipsis; anything further is dropped.
func NewPagination(current, totalPages int) Pagination {
	if totalPages < 1 {
		totalPages = 1
	}
	p := Pagination{
		Visible:     totalPages > 1,
		CurrentPage: current,
		TotalPages:  totalPages,
		HasPrev:     current > 1,
		HasNext:     current < totalPages,
		Items:       []PageItem{},
	}
	if !p.Visible {
		return p
	}

	for page := 1; page <= totalPages; page++ {
		switch {
		case page == 1 || page == totalPages || (page >= current-1 && page <= current+1):
			p.Items = append(p.Items, PageItem{Page: page, Current: page == current})
		case page == current-2 || page == current+2:
			p.Items = append(p.Items, PageItem{Ellipsis: true})
		}
	}
	return p
}
