package models

// Sort orders accepted by the search surface. Relevance is the default
// and maps to recency, not a text-relevance score.
const (
	SortRelevance = "relevance"
	SortName      = "name"
	SortRating    = "rating"
	SortDistance  = "distance"
)

// Price bands. A static enumeration, not derived from the collection.
const (
	PriceBudget  = "budget"
	PriceMid     = "mid"
	PriceUpscale = "upscale"
)

// SearchFilters is the user's declarative search intent.
type SearchFilters struct {
	Query      string `json:"query"`
	Location   string `json:"location"`
	Cuisine    string `json:"cuisine"`
	SortBy     string `json:"sortBy"`
	PriceRange string `json:"priceRange,omitempty"`
	IsOpen     bool   `json:"isOpen,omitempty"`
	IsFeatured bool   `json:"isFeatured,omitempty"`
}

// SearchParams extends SearchFilters with pagination. Page is 1-indexed.
type SearchParams struct {
	SearchFilters
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// SearchCursor points at the last received record of a page. It holds
// the sort-field values used for a start-after constraint.
type SearchCursor struct {
	SortValues []interface{} `json:"-"`
}

// SearchResult is one page of restaurants plus navigation metadata.
// HasNextPage is a full-page heuristic, not exact boundary detection.
type SearchResult struct {
	Restaurants []Restaurant  `json:"restaurants"`
	Total       int           `json:"total"`
	TotalPages  int           `json:"totalPages"`
	CurrentPage int           `json:"currentPage"`
	HasNextPage bool          `json:"hasNextPage"`
	HasPrevPage bool          `json:"hasPrevPage"`
	NextCursor  *SearchCursor `json:"-"`
}

// FilterOption is one facet value with its occurrence count.
type FilterOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// FilterOptions are the aggregated facets for the search UI. Empty
// slices mean "unavailable", not "no data exists".
type FilterOptions struct {
	Cuisines    []FilterOption `json:"cuisines"`
	Cities      []FilterOption `json:"cities"`
	PriceRanges []FilterOption `json:"priceRanges"`
}
