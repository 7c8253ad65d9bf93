package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewState(t *testing.T) {
	s := NewState()

	assert.Equal(t, "", s.SearchQuery)
	assert.Equal(t, AllCategories, s.SelectedCategory)
	assert.Equal(t, 1, s.CurrentPage)
	assert.False(t, s.HasActiveFilters())
}

func TestWithSearchResetsPage(t *testing.T) {
	s := NewState().WithPage(3, 3).WithSearch("oud")

	assert.Equal(t, "oud", s.SearchQuery)
	assert.Equal(t, 1, s.CurrentPage)
	assert.True(t, s.HasActiveFilters())
}

func TestWithSearchSameValueKeepsPage(t *testing.T) {
	s := NewState().WithSearch("oud").WithPage(2, 3).WithSearch("oud")
	assert.Equal(t, 2, s.CurrentPage)
}

func TestWithCategoryResetsPage(t *testing.T) {
	s := NewState().WithPage(2, 3).WithCategory("Floral")

	assert.Equal(t, "Floral", s.SelectedCategory)
	assert.Equal(t, 1, s.CurrentPage)
	assert.True(t, s.HasActiveFilters())
}

func TestWithCategoryFromPageThreeResetsPage(t *testing.T) {
	s := NewState().WithPage(3, 3)
	assert.Equal(t, 3, s.CurrentPage)

	s = s.WithCategory("Oud")
	assert.Equal(t, "Oud", s.SelectedCategory)
	assert.Equal(t, 1, s.CurrentPage)
}

func TestWithCategoryEmptyMeansAll(t *testing.T) {
	s := NewState().WithCategory("Floral").WithCategory("")
	assert.Equal(t, AllCategories, s.SelectedCategory)
}

func TestWithPageClamps(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		totalPages int
		want       int
	}{
		{"within range", 2, 3, 2},
		{"below range", 0, 3, 1},
		{"above range", 9, 3, 3},
		{"no pages", 4, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewState().WithPage(tt.page, tt.totalPages).CurrentPage)
		})
	}
}

func TestCleared(t *testing.T) {
	s := NewState().WithSearch("rose").WithCategory("Floral").WithPage(2, 2).Cleared()
	assert.Equal(t, NewState(), s)
}

func TestTransitionsDoNotMutateReceiver(t *testing.T) {
	s := NewState()
	_ = s.WithSearch("oud")
	_ = s.WithCategory("Oud")

	assert.Equal(t, NewState(), s)
}

func TestNormalized(t *testing.T) {
	s := State{SearchQuery: "oud"}.Normalized()

	assert.Equal(t, AllCategories, s.SelectedCategory)
	assert.Equal(t, 1, s.CurrentPage)
	assert.Equal(t, "oud", s.SearchQuery)
}

func TestStateRun(t *testing.T) {
	res := NewState().WithCategory("Floral").Run(sampleCatalog(), 8)
	assert.Equal(t, []int64{2}, ids(res.PageItems))
}
