package query

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/deepakkode/scrap-marketplace/internal/listing/domain"
)

type lessFunc func(a, b *domain.Listing) bool

// comparators is the total registry of orderings. Each entry is a
// constructor so that the location comparator gets its own collator;
// a collate.Collator carries internal buffers and must not be shared
// between concurrent sorts.
var comparators = map[SortKey]func() lessFunc{
	SortRelevance: func() lessFunc { return nil },
	SortPriceLow: func() lessFunc {
		return func(a, b *domain.Listing) bool { return a.Price < b.Price }
	},
	SortPriceHigh: func() lessFunc {
		return func(a, b *domain.Listing) bool { return a.Price > b.Price }
	},
	SortQuantityHigh: func() lessFunc {
		return func(a, b *domain.Listing) bool { return a.Quantity > b.Quantity }
	},
	SortQuantityLow: func() lessFunc {
		return func(a, b *domain.Listing) bool { return a.Quantity < b.Quantity }
	},
	SortDateNew: func() lessFunc {
		return func(a, b *domain.Listing) bool { return a.CreatedAt.After(b.CreatedAt) }
	},
	SortDateOld: func() lessFunc {
		return func(a, b *domain.Listing) bool { return a.CreatedAt.Before(b.CreatedAt) }
	},
	SortLocation: func() lessFunc {
		coll := collate.New(language.English, collate.Loose)
		return func(a, b *domain.Listing) bool {
			return coll.CompareString(a.Location, b.Location) < 0
		}
	},
}

// comparatorFor returns the less function for the key, or nil when the
// input order should be kept. Unknown keys order by relevance.
func comparatorFor(key SortKey) lessFunc {
	mk, ok := comparators[key]
	if !ok {
		mk = comparators[SortRelevance]
	}
	return mk()
}
