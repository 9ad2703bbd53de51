package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"catalog-browser-api/internal/models"
)

func TestSerialize_DefaultSuppression(t *testing.T) {
	got := Serialize(models.DefaultFilterState(), "popularity-desc", 1)

	assert.Equal(t, "sort=popularity-desc", got)
}

func TestSerialize_EmptySortOmitted(t *testing.T) {
	got := Serialize(models.DefaultFilterState(), "", 1)

	assert.Equal(t, "", got)
}

func TestSerialize_DeviatingFields(t *testing.T) {
	filters := models.DefaultFilterState()
	filters.Categories = []string{"Electronics"}

	got := Serialize(filters, "price-asc", 2)

	assert.Equal(t, "categories=Electronics&page=2&sort=price-asc", got)
}

func TestRoundTrip_SingleCategory(t *testing.T) {
	filters := models.DefaultFilterState()
	filters.Categories = []string{"Electronics"}

	gotFilters, gotSort, gotPage := Deserialize(Serialize(filters, "price-asc", 2))

	assert.Equal(t, []string{"Electronics"}, gotFilters.Categories)
	assert.Empty(t, gotFilters.Colors)
	assert.Equal(t, models.PriceRange{Min: 0, Max: 10000}, gotFilters.PriceRange)
	assert.Zero(t, gotFilters.Rating)
	assert.False(t, gotFilters.InStock)
	assert.Equal(t, "price-asc", gotSort)
	assert.Equal(t, 2, gotPage)
}

func TestRoundTrip_AllFieldsDeviating(t *testing.T) {
	filters := models.FilterState{
		Categories: []string{"Clothing", "Electronics"},
		Colors:     []string{"black", "red"},
		PriceRange: models.PriceRange{Min: 50, Max: 500},
		Rating:     4.5,
		InStock:    true,
	}

	gotFilters, gotSort, gotPage := Deserialize(Serialize(filters, "name-desc", 3))

	assert.Equal(t, filters.Categories, gotFilters.Categories)
	assert.Equal(t, filters.Colors, gotFilters.Colors)
	assert.Equal(t, filters.PriceRange, gotFilters.PriceRange)
	assert.Equal(t, filters.Rating, gotFilters.Rating)
	assert.True(t, gotFilters.InStock)
	assert.Equal(t, "name-desc", gotSort)
	assert.Equal(t, 3, gotPage)
}

func TestDeserialize_Defaults(t *testing.T) {
	filters, sortID, page := Deserialize("")

	assert.Equal(t, models.DefaultFilterState(), filters)
	assert.Equal(t, "popularity-desc", sortID)
	assert.Equal(t, 1, page)
}

func TestDeserialize_MalformedNumbersFallBack(t *testing.T) {
	filters, _, page := Deserialize("?minPrice=abc&maxPrice=xyz&rating=n/a&page=xyz")

	assert.Equal(t, 0.0, filters.PriceRange.Min)
	assert.Equal(t, 10000.0, filters.PriceRange.Max)
	assert.Zero(t, filters.Rating)
	assert.Equal(t, 1, page)
}

func TestDeserialize_ListsDropEmptyTokens(t *testing.T) {
	filters, _, _ := Deserialize("categories=Electronics,,Clothing&colors=,")

	assert.Equal(t, []string{"Electronics", "Clothing"}, filters.Categories)
	assert.Empty(t, filters.Colors)
}

func TestDeserialize_InStockLiteral(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{raw: "inStock=true", want: true},
		{raw: "inStock=TRUE", want: false},
		{raw: "inStock=1", want: false},
		{raw: "inStock=", want: false},
		{raw: "", want: false},
	}

	for _, tt := range tests {
		filters, _, _ := Deserialize(tt.raw)
		assert.Equal(t, tt.want, filters.InStock, "raw=%q", tt.raw)
	}
}

func TestDeserialize_NumericValues(t *testing.T) {
	filters, sortID, page := Deserialize("minPrice=25.5&maxPrice=300&rating=4&page=7&sort=rating-desc")

	assert.Equal(t, 25.5, filters.PriceRange.Min)
	assert.Equal(t, 300.0, filters.PriceRange.Max)
	assert.Equal(t, 4.0, filters.Rating)
	assert.Equal(t, 7, page)
	assert.Equal(t, "rating-desc", sortID)
}
