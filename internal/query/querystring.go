package query

import (
	"net/url"
	"strconv"
	"strings"

	"catalog-browser-api/internal/models"
	"catalog-browser-api/pkg/utils"
)

// Serialize renders the browse state as a URL query string. Fields are
// emitted only when they deviate from their defaults, so a fresh
// session serializes to just the sort key. The inverse of Deserialize.
func Serialize(filters models.FilterState, sortID string, page int) string {
	values := url.Values{}

	if len(filters.Categories) > 0 {
		values.Set("categories", strings.Join(filters.Categories, ","))
	}
	if len(filters.Colors) > 0 {
		values.Set("colors", strings.Join(filters.Colors, ","))
	}
	if filters.PriceRange.Min > models.DefaultMinPrice {
		values.Set("minPrice", formatNumber(filters.PriceRange.Min))
	}
	if filters.PriceRange.Max < models.DefaultMaxPrice {
		values.Set("maxPrice", formatNumber(filters.PriceRange.Max))
	}
	if filters.Rating > 0 {
		values.Set("rating", formatNumber(filters.Rating))
	}
	if filters.InStock {
		values.Set("inStock", "true")
	}
	if sortID != "" {
		values.Set("sort", sortID)
	}
	if page > 1 {
		values.Set("page", strconv.Itoa(page))
	}

	return values.Encode()
}

// Deserialize reads the browse state back from a raw query string.
// Absent keys mean defaults; malformed numeric values fall back to the
// field default instead of failing. A leading "?" is tolerated.
func Deserialize(rawQuery string) (models.FilterState, string, int) {
	rawQuery = strings.TrimPrefix(rawQuery, "?")
	values, _ := url.ParseQuery(rawQuery)

	filters := models.DefaultFilterState()
	filters.Categories = splitList(values.Get("categories"))
	filters.Colors = splitList(values.Get("colors"))
	filters.PriceRange.Min = utils.ParseFloatOr(values.Get("minPrice"), models.DefaultMinPrice)
	filters.PriceRange.Max = utils.ParseFloatOr(values.Get("maxPrice"), models.DefaultMaxPrice)
	filters.Rating = utils.ParseFloatOr(values.Get("rating"), 0)
	filters.InStock = values.Get("inStock") == "true"

	sortID := values.Get("sort")
	if sortID == "" {
		sortID = models.DefaultSortID
	}

	page := utils.ParseIntOr(values.Get("page"), 1)

	return filters, sortID, page
}

func splitList(raw string) []string {
	out := []string{}
	for _, token := range strings.Split(raw, ",") {
		if token != "" {
			out = append(out, token)
		}
	}
	return out
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
