package models

type Color struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Hex  string `json:"hex"` // #RRGGBB
}

type Product struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Price           float64  `json:"price"`
	DiscountPrice   *float64 `json:"discount_price,omitempty"`
	DiscountPercent int      `json:"discount_percent,omitempty"`
	RatingValue     float64  `json:"rating_value"`
	RatingCount     int      `json:"rating_count"`
	IsHot           bool     `json:"is_hot,omitempty"`
	Colors          []Color  `json:"colors,omitempty"`
	Category        string   `json:"category"`
	Subcategory     string   `json:"subcategory,omitempty"`
	InStock         bool     `json:"in_stock"`
	Image           string   `json:"image,omitempty"`
	Description     string   `json:"description,omitempty"`
}

// EffectivePrice is the price used for filtering, sorting and display:
// the discount price when one is set, the base price otherwise.
func (p Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

type Subcategory struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type Category struct {
	Name          string        `json:"name"`
	Count         int           `json:"count"`
	Subcategories []Subcategory `json:"subcategories,omitempty"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterState holds the active filtering criteria for one browsing
// session. Empty category/color sets mean "no restriction". Search is
// carried on the type and through defaults but is not consulted by the
// filter stage.
type FilterState struct {
	Categories []string   `json:"categories"`
	Colors     []string   `json:"colors"`
	PriceRange PriceRange `json:"price_range"`
	Rating     float64    `json:"rating"`
	InStock    bool       `json:"in_stock"`
	Search     string     `json:"search"`
}

const (
	DefaultMinPrice = 0
	DefaultMaxPrice = 10000
	DefaultSortID   = "popularity-desc"
)

func DefaultFilterState() FilterState {
	return FilterState{
		Categories: []string{},
		Colors:     []string{},
		PriceRange: PriceRange{Min: DefaultMinPrice, Max: DefaultMaxPrice},
		Rating:     0,
		InStock:    false,
		Search:     "",
	}
}

type SortKind int

const (
	SortNumeric SortKind = iota
	SortText
)

// SortOption describes one entry of the sort dropdown. Field names a
// Product attribute and Kind fixes how that attribute compares, so the
// comparator never inspects value types at runtime.
type SortOption struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Field     string   `json:"field"`
	Kind      SortKind `json:"-"`
	Direction string   `json:"direction"` // asc | desc
}

type BrowseResponse struct {
	Products   []Product    `json:"products"`
	Total      int          `json:"total"`
	Page       int          `json:"page"`
	Limit      int          `json:"limit"`
	TotalPages int          `json:"total_pages"`
	Filters    *FilterState `json:"filters,omitempty"`
	Sort       *SortOption  `json:"sort,omitempty"`
	Query      string       `json:"query"`
	Duration   string       `json:"duration"`
}

// SessionView is the read side of a browse session: the derived page
// slice plus everything the presentation layer needs to render the
// filter controls.
type SessionView struct {
	ID                string      `json:"id"`
	Products          []Product   `json:"products"`
	TotalItems        int         `json:"total_items"`
	TotalPages        int         `json:"total_pages"`
	CurrentPage       int         `json:"current_page"`
	Filters           FilterState `json:"filters"`
	SortID            string      `json:"sort_id"`
	PreviewColor      string      `json:"preview_color,omitempty"`
	ActiveFilterCount int         `json:"active_filter_count"`
	Query             string      `json:"query"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
