package query

import (
	"math"

	"catalog-browser-api/internal/models"
)

// ItemsPerPage is the fixed storefront page size.
const ItemsPerPage = 12

// Paginate returns the slice for the requested 1-based page and the
// total page count. An out-of-range page (including page <= 0) yields
// an empty slice; no clamping happens here, that is the caller's call.
func Paginate(products []models.Product, page, perPage int) ([]models.Product, int) {
	total := len(products)
	totalPages := int(math.Ceil(float64(total) / float64(perPage)))

	start := (page - 1) * perPage
	if start < 0 || start >= total {
		return []models.Product{}, totalPages
	}

	end := start + perPage
	if end > total {
		end = total
	}

	return products[start:end], totalPages
}
