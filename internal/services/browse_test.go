package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-browser-api/internal/catalog"
	"catalog-browser-api/internal/models"
)

// thirteenProductStore builds the reference scenario: 13 products, 5
// of them in Electronics with prices 100, 50, 200, 75, 150.
func thirteenProductStore() *catalog.Store {
	products := []models.Product{
		{ID: "e1", Name: "Amp", Price: 100, Category: "Electronics", InStock: true},
		{ID: "c1", Name: "Coat", Price: 120, Category: "Clothing", InStock: true},
		{ID: "e2", Name: "Buds", Price: 50, Category: "Electronics", InStock: true},
		{ID: "c2", Name: "Scarf", Price: 25, Category: "Clothing", InStock: true},
		{ID: "e3", Name: "Cam", Price: 200, Category: "Electronics", InStock: true},
		{ID: "f1", Name: "Boot", Price: 180, Category: "Footwear", InStock: true},
		{ID: "e4", Name: "Dock", Price: 75, Category: "Electronics", InStock: true},
		{ID: "f2", Name: "Loafer", Price: 90, Category: "Footwear", InStock: true},
		{ID: "e5", Name: "Hub", Price: 150, Category: "Electronics", InStock: true},
		{ID: "c3", Name: "Hat", Price: 30, Category: "Clothing", InStock: false},
		{ID: "f3", Name: "Sandal", Price: 45, Category: "Footwear", InStock: true},
		{ID: "c4", Name: "Belt", Price: 35, Category: "Clothing", InStock: true},
		{ID: "f4", Name: "Clog", Price: 60, Category: "Footwear", InStock: false},
	}
	return catalog.NewStore(products, nil, catalog.SortOptions())
}

func TestBrowse_FilterSortPaginate(t *testing.T) {
	service := NewBrowseService(thirteenProductStore(), nil)

	response := service.Browse("categories=Electronics&sort=price-asc")

	require.Len(t, response.Products, 5)
	prices := make([]float64, 0, 5)
	for _, p := range response.Products {
		assert.Equal(t, "Electronics", p.Category)
		prices = append(prices, p.EffectivePrice())
	}
	assert.Equal(t, []float64{50, 75, 100, 150, 200}, prices)
	assert.Equal(t, 5, response.Total)
	assert.Equal(t, 1, response.TotalPages)
	assert.Equal(t, 1, response.Page)
}

func TestBrowse_DefaultsOnEmptyQuery(t *testing.T) {
	service := NewBrowseService(thirteenProductStore(), nil)

	response := service.Browse("")

	assert.Equal(t, 13, response.Total)
	assert.Equal(t, 2, response.TotalPages)
	assert.Len(t, response.Products, 12)
	assert.Equal(t, 12, response.Limit)
	require.NotNil(t, response.Sort)
	assert.Equal(t, "popularity-desc", response.Sort.ID)
	assert.Equal(t, "sort=popularity-desc", response.Query)
}

func TestBrowse_UnknownSortFallsBack(t *testing.T) {
	service := NewBrowseService(thirteenProductStore(), nil)

	response := service.Browse("sort=cheapest-first")

	require.NotNil(t, response.Sort)
	assert.Equal(t, "popularity-desc", response.Sort.ID)
}

func TestBrowse_MalformedParamsRecover(t *testing.T) {
	service := NewBrowseService(thirteenProductStore(), nil)

	response := service.Browse("minPrice=abc&page=xyz")

	assert.Equal(t, 13, response.Total)
	assert.Equal(t, 1, response.Page)
}

func TestBrowse_PageBeyondRangeIsEmpty(t *testing.T) {
	service := NewBrowseService(thirteenProductStore(), nil)

	response := service.Browse("page=5")

	assert.Empty(t, response.Products)
	assert.Equal(t, 2, response.TotalPages)
	assert.Equal(t, 5, response.Page)
}

func TestBrowse_EmptyResultIsNotAnError(t *testing.T) {
	service := NewBrowseService(thirteenProductStore(), nil)

	response := service.Browse("minPrice=9000")

	assert.Empty(t, response.Products)
	assert.Zero(t, response.Total)
	assert.Zero(t, response.TotalPages)
}

func TestGetProduct(t *testing.T) {
	service := NewBrowseService(thirteenProductStore(), nil)

	product, err := service.GetProduct("e3")
	require.NoError(t, err)
	assert.Equal(t, "Cam", product.Name)

	_, err = service.GetProduct("missing")
	assert.Error(t, err)
}
