package query

import (
	"catalog-browser-api/internal/models"
)

// Filter returns the subsequence of products matching every active
// clause of filters, in the original relative order. The input slice
// is never modified.
func Filter(products []models.Product, filters models.FilterState) []models.Product {
	filtered := make([]models.Product, 0, len(products))

	for _, product := range products {
		if !matchesCategory(product, filters.Categories) {
			continue
		}
		if !matchesColor(product, filters.Colors) {
			continue
		}

		price := product.EffectivePrice()
		if price < filters.PriceRange.Min || price > filters.PriceRange.Max {
			continue
		}

		if product.RatingValue < filters.Rating {
			continue
		}

		if filters.InStock && !product.InStock {
			continue
		}

		filtered = append(filtered, product)
	}

	return filtered
}

// An empty category set means no restriction.
func matchesCategory(product models.Product, categories []string) bool {
	if len(categories) == 0 {
		return true
	}
	for _, c := range categories {
		if product.Category == c {
			return true
		}
	}
	return false
}

// A product passes when any of its colors is selected; an empty
// selection means no restriction.
func matchesColor(product models.Product, colors []string) bool {
	if len(colors) == 0 {
		return true
	}
	for _, selected := range colors {
		for _, pc := range product.Colors {
			if pc.ID == selected {
				return true
			}
		}
	}
	return false
}
