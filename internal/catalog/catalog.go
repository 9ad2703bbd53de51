package catalog

import (
	"catalog-browser-api/internal/models"
)

// Store is an immutable in-memory catalog. It is built once at startup
// and safely shared between sessions without locking.
type Store struct {
	products    []models.Product
	colors      []models.Color
	sortOptions []models.SortOption
	categories  []models.Category
	byID        map[string]models.Product
}

// NewStore builds a store over the given data. Category counts,
// including per-subcategory counts, are derived from the products.
func NewStore(products []models.Product, colors []models.Color, sortOptions []models.SortOption) *Store {
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	return &Store{
		products:    products,
		colors:      colors,
		sortOptions: sortOptions,
		categories:  buildCategories(products),
		byID:        byID,
	}
}

// Default returns a store over the seed catalog.
func Default() *Store {
	return NewStore(seedProducts(), seedColors(), SortOptions())
}

func (s *Store) Products() []models.Product {
	return s.products
}

func (s *Store) Colors() []models.Color {
	return s.colors
}

func (s *Store) Categories() []models.Category {
	return s.categories
}

func (s *Store) SortOptions() []models.SortOption {
	return s.sortOptions
}

func (s *Store) ProductByID(id string) (models.Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// ResolveSortOption maps a sort id to its option, falling back to the
// first configured option for unknown or empty ids.
func (s *Store) ResolveSortOption(id string) models.SortOption {
	for _, opt := range s.sortOptions {
		if opt.ID == id {
			return opt
		}
	}
	return s.sortOptions[0]
}

// Category order follows first appearance in the product list, same
// for subcategories within a category.
func buildCategories(products []models.Product) []models.Category {
	var order []string
	counts := map[string]int{}
	subOrder := map[string][]string{}
	subCounts := map[string]map[string]int{}

	for _, p := range products {
		if _, seen := counts[p.Category]; !seen {
			order = append(order, p.Category)
			subCounts[p.Category] = map[string]int{}
		}
		counts[p.Category]++

		if p.Subcategory == "" {
			continue
		}
		if _, seen := subCounts[p.Category][p.Subcategory]; !seen {
			subOrder[p.Category] = append(subOrder[p.Category], p.Subcategory)
		}
		subCounts[p.Category][p.Subcategory]++
	}

	categories := make([]models.Category, 0, len(order))
	for _, name := range order {
		cat := models.Category{Name: name, Count: counts[name]}
		for _, sub := range subOrder[name] {
			cat.Subcategories = append(cat.Subcategories, models.Subcategory{
				Name:  sub,
				Count: subCounts[name][sub],
			})
		}
		categories = append(categories, cat)
	}

	return categories
}

// SortOptions lists the storefront sort dropdown entries. The first
// entry is the default.
func SortOptions() []models.SortOption {
	return []models.SortOption{
		{ID: "popularity-desc", Name: "Most Popular", Field: "popularity", Kind: models.SortNumeric, Direction: "desc"},
		{ID: "price-asc", Name: "Price: Low to High", Field: "price", Kind: models.SortNumeric, Direction: "asc"},
		{ID: "price-desc", Name: "Price: High to Low", Field: "price", Kind: models.SortNumeric, Direction: "desc"},
		{ID: "rating-desc", Name: "Highest Rated", Field: "rating", Kind: models.SortNumeric, Direction: "desc"},
		{ID: "name-asc", Name: "Name: A to Z", Field: "name", Kind: models.SortText, Direction: "asc"},
		{ID: "name-desc", Name: "Name: Z to A", Field: "name", Kind: models.SortText, Direction: "desc"},
	}
}
