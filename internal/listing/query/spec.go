// Package query implements the listing search pipeline: free-text matching,
// field filters, ordering and pagination over an in-memory listing collection.
// It is pure and synchronous; callers fetch the collection and render the result.
package query

// SortKey selects the ordering applied to filtered listings.
type SortKey string

const (
	SortRelevance    SortKey = "relevance" // input order preserved
	SortPriceLow     SortKey = "price-low"
	SortPriceHigh    SortKey = "price-high"
	SortQuantityHigh SortKey = "quantity-high"
	SortQuantityLow  SortKey = "quantity-low"
	SortDateNew      SortKey = "date-new"
	SortDateOld      SortKey = "date-old"
	SortLocation     SortKey = "location"
)

// ParseSortKey maps a raw value to a SortKey. Unrecognized values fall back
// to SortRelevance rather than erroring.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortPriceLow, SortPriceHigh, SortQuantityHigh, SortQuantityLow,
		SortDateNew, SortDateOld, SortLocation:
		return SortKey(s)
	default:
		return SortRelevance
	}
}

// DateRange restricts results to listings posted after a cutoff derived
// from the current time.
type DateRange string

const (
	DateAny     DateRange = ""
	DateToday   DateRange = "today"
	DateWeek    DateRange = "week"
	DateMonth   DateRange = "month"
	DateQuarter DateRange = "3months"
)

// ParseDateRange maps a raw value to a DateRange. Unrecognized values mean
// no date constraint.
func ParseDateRange(s string) DateRange {
	switch DateRange(s) {
	case DateToday, DateWeek, DateMonth, DateQuarter:
		return DateRange(s)
	default:
		return DateAny
	}
}

// Filters holds every supported filter field. A field constrains the result
// only when non-empty; numeric fields arrive as raw strings from the query
// layer and are ignored when they do not parse.
type Filters struct {
	Material  string
	PriceMin  string
	PriceMax  string
	Location  string
	Condition []string
	Quantity  string
	Seller    string
	DateRange DateRange
}

// DefaultPageSize matches the results-per-page constant of the explore UI.
const DefaultPageSize = 12

// Spec is the complete description of what subset, order and page of
// listings the caller wants. It is rebuilt per request, never persisted.
type Spec struct {
	SearchText string
	Filters    Filters
	Sort       SortKey
	Page       int // 1-based
	PageSize   int
}
