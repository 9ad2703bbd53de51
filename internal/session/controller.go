package session

import (
	"sync"

	"catalog-browser-api/internal/catalog"
	"catalog-browser-api/internal/models"
	"catalog-browser-api/internal/query"
)

// Controller owns the browse state for one session: the current
// FilterState, sort id and page. Every mutation replaces the
// FilterState value, re-serializes the query string and re-runs the
// pipeline, so reads always see the latest committed state.
type Controller struct {
	mu    sync.Mutex
	id    string
	store *catalog.Store

	filters      models.FilterState
	sortID       string
	currentPage  int
	previewColor string

	// derived on every mutation
	products   []models.Product
	totalItems int
	totalPages int
	rawQuery   string
}

// NewController seeds a session from a raw query string; an empty
// string yields the default browse state.
func NewController(id string, store *catalog.Store, rawQuery string) *Controller {
	filters, sortID, page := query.Deserialize(rawQuery)

	c := &Controller{
		id:          id,
		store:       store,
		filters:     filters,
		sortID:      sortID,
		currentPage: page,
	}
	c.refresh()
	return c
}

// refresh re-runs filter → sort → paginate and re-derives the query
// string. Callers must hold c.mu.
func (c *Controller) refresh() {
	filtered := query.Filter(c.store.Products(), c.filters)
	sorted := query.Sort(filtered, c.store.ResolveSortOption(c.sortID))
	pageSlice, totalPages := query.Paginate(sorted, c.currentPage, query.ItemsPerPage)

	c.products = pageSlice
	c.totalItems = len(filtered)
	c.totalPages = totalPages
	c.rawQuery = query.Serialize(c.filters, c.sortID, c.currentPage)
}

func cloneFilters(f models.FilterState) models.FilterState {
	next := f
	next.Categories = append([]string{}, f.Categories...)
	next.Colors = append([]string{}, f.Colors...)
	return next
}

func toggle(set []string, id string) []string {
	for i, v := range set {
		if v == id {
			return append(set[:i], set[i+1:]...)
		}
	}
	return append(set, id)
}

func (c *Controller) ToggleCategory(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := cloneFilters(c.filters)
	next.Categories = toggle(next.Categories, id)
	c.filters = next
	c.currentPage = 1
	c.refresh()
}

func (c *Controller) ToggleColorFilter(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := cloneFilters(c.filters)
	next.Colors = toggle(next.Colors, id)
	c.filters = next
	c.currentPage = 1
	c.refresh()
}

func (c *Controller) SetPriceRange(min, max float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := cloneFilters(c.filters)
	next.PriceRange = models.PriceRange{Min: min, Max: max}
	c.filters = next
	c.currentPage = 1
	c.refresh()
}

func (c *Controller) SetRating(r float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := cloneFilters(c.filters)
	next.Rating = r
	c.filters = next
	c.currentPage = 1
	c.refresh()
}

func (c *Controller) ToggleInStock() {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := cloneFilters(c.filters)
	next.InStock = !next.InStock
	c.filters = next
	c.currentPage = 1
	c.refresh()
}

func (c *Controller) UpdateSort(sortID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sortID = sortID
	c.currentPage = 1
	c.refresh()
}

// GoToPage replaces the current page without bounds checking; an
// out-of-range page shows an empty result, matching the pipeline.
func (c *Controller) GoToPage(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.currentPage = n
	c.refresh()
}

func (c *Controller) NextPage() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.currentPage >= c.totalPages {
		return
	}
	c.currentPage++
	c.refresh()
}

func (c *Controller) PreviousPage() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.currentPage <= 1 {
		return
	}
	c.currentPage--
	c.refresh()
}

// ClearFilters resets filters, sort, page and the preview selection in
// one step.
func (c *Controller) ClearFilters() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.filters = models.DefaultFilterState()
	c.sortID = models.DefaultSortID
	c.currentPage = 1
	c.previewColor = ""
	c.refresh()
}

// SelectColorForPreview is a single-selection toggle for the swatch
// preview. It is visual-only: it never touches FilterState, the query
// string or the pipeline output.
func (c *Controller) SelectColorForPreview(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.previewColor == id {
		c.previewColor = ""
	} else {
		c.previewColor = id
	}
}

// ActiveFilterCount counts deviating filter dimensions, at most one
// per dimension no matter how many values it holds.
func activeFilterCount(f models.FilterState) int {
	count := 0
	if len(f.Categories) > 0 {
		count++
	}
	if len(f.Colors) > 0 {
		count++
	}
	if f.PriceRange.Min > models.DefaultMinPrice || f.PriceRange.Max < models.DefaultMaxPrice {
		count++
	}
	if f.Rating > 0 {
		count++
	}
	if f.InStock {
		count++
	}
	return count
}

// Snapshot returns the current derived view.
func (c *Controller) Snapshot() models.SessionView {
	c.mu.Lock()
	defer c.mu.Unlock()

	return models.SessionView{
		ID:                c.id,
		Products:          c.products,
		TotalItems:        c.totalItems,
		TotalPages:        c.totalPages,
		CurrentPage:       c.currentPage,
		Filters:           cloneFilters(c.filters),
		SortID:            c.sortID,
		PreviewColor:      c.previewColor,
		ActiveFilterCount: activeFilterCount(c.filters),
		Query:             c.rawQuery,
	}
}
