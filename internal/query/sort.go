package query

import (
	"sort"
	"strings"

	"catalog-browser-api/internal/models"
)

// Sort orders products by the given option and returns a new slice;
// the input is left untouched. The sort is stable, so products with
// equal keys keep their original relative order for both directions.
func Sort(products []models.Product, option models.SortOption) []models.Product {
	sorted := make([]models.Product, len(products))
	copy(sorted, products)

	desc := option.Direction == "desc"

	sort.SliceStable(sorted, func(i, j int) bool {
		c := compareProducts(sorted[i], sorted[j], option)
		if desc {
			return c > 0
		}
		return c < 0
	})

	return sorted
}

func compareProducts(a, b models.Product, option models.SortOption) int {
	switch option.Kind {
	case models.SortNumeric:
		av, bv := numericKey(a, option.Field), numericKey(b, option.Field)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	default:
		return strings.Compare(textKey(a, option.Field), textKey(b, option.Field))
	}
}

func numericKey(p models.Product, field string) float64 {
	switch field {
	case "price":
		return p.EffectivePrice()
	case "rating":
		return p.RatingValue
	case "popularity":
		return float64(p.RatingCount)
	case "discount":
		return float64(p.DiscountPercent)
	default:
		return 0
	}
}

// Text keys compare case-insensitively; unknown fields compare as the
// empty string so every product ties and keeps its original position.
func textKey(p models.Product, field string) string {
	switch field {
	case "name":
		return strings.ToLower(p.Name)
	case "category":
		return strings.ToLower(p.Category)
	default:
		return ""
	}
}
