package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-browser-api/internal/models"
)

func TestDefault_SeedCatalog(t *testing.T) {
	store := Default()

	assert.Len(t, store.Products(), 16)
	assert.Len(t, store.Colors(), 8)
	assert.Len(t, store.SortOptions(), 6)

	for _, c := range store.Colors() {
		assert.Regexp(t, `^#[0-9A-F]{6}$`, c.Hex, "color %s", c.ID)
	}
}

func TestCategories_CountsFromProducts(t *testing.T) {
	store := Default()
	categories := store.Categories()

	require.Len(t, categories, 4)

	byName := map[string]models.Category{}
	for _, c := range categories {
		byName[c.Name] = c
	}

	electronics := byName["Electronics"]
	assert.Equal(t, 5, electronics.Count)
	require.Len(t, electronics.Subcategories, 4)
	assert.Equal(t, models.Subcategory{Name: "Audio", Count: 2}, electronics.Subcategories[0])

	accessories := byName["Accessories"]
	assert.Equal(t, 4, accessories.Count)
	assert.Empty(t, accessories.Subcategories)
}

func TestCategories_OrderFollowsProducts(t *testing.T) {
	products := []models.Product{
		{ID: "1", Category: "B", Subcategory: "b2"},
		{ID: "2", Category: "A"},
		{ID: "3", Category: "B", Subcategory: "b1"},
		{ID: "4", Category: "B", Subcategory: "b2"},
	}

	store := NewStore(products, nil, SortOptions())
	categories := store.Categories()

	require.Len(t, categories, 2)
	assert.Equal(t, "B", categories[0].Name)
	assert.Equal(t, 3, categories[0].Count)
	assert.Equal(t, []models.Subcategory{{Name: "b2", Count: 2}, {Name: "b1", Count: 1}}, categories[0].Subcategories)
	assert.Equal(t, "A", categories[1].Name)
}

func TestProductByID(t *testing.T) {
	store := Default()

	product, ok := store.ProductByID("elec-001")
	require.True(t, ok)
	assert.Equal(t, "Aurora Wireless Headphones", product.Name)
	assert.Equal(t, 199.0, product.EffectivePrice())

	_, ok = store.ProductByID("nope")
	assert.False(t, ok)
}

func TestResolveSortOption(t *testing.T) {
	store := Default()

	assert.Equal(t, "price-asc", store.ResolveSortOption("price-asc").ID)
	assert.Equal(t, "popularity-desc", store.ResolveSortOption("").ID)
	assert.Equal(t, "popularity-desc", store.ResolveSortOption("not-a-sort").ID)
}
