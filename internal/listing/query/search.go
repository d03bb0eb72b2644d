package query

import (
	"strings"

	"github.com/deepakkode/scrap-marketplace/internal/listing/domain"
)

// matchesSearch reports whether the lowercased search text occurs in any of
// the listing's searchable fields. The query is expected trimmed, lowercased
// and non-empty by the caller.
func matchesSearch(l *domain.Listing, q string) bool {
	fields := [...]string{
		l.Title,
		string(l.Material),
		l.Description,
		l.Location,
		l.Seller.Name,
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
