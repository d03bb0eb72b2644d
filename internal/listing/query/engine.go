package query

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/deepakkode/scrap-marketplace/internal/listing/domain"
)

// ErrInvalidInput is the only error Run surfaces. Malformed filter values
// are absorbed as "no constraint" instead.
var ErrInvalidInput = errors.New("invalid query input")

// Result is one page of matching listings plus the counts and chips the
// UI needs to render pagination and active filters.
type Result struct {
	Items         []*domain.Listing
	TotalCount    int
	TotalPages    int
	ActiveFilters []Chip
}

// Run evaluates the spec against the full listing collection: free-text
// search, then filters, then a stable sort, then the page slice. The input
// slice is never reordered or mutated.
func Run(listings []*domain.Listing, spec Spec) (*Result, error) {
	return runAt(listings, spec, time.Now())
}

func runAt(listings []*domain.Listing, spec Spec, now time.Time) (*Result, error) {
	if spec.PageSize <= 0 {
		return nil, fmt.Errorf("%w: page size must be positive, got %d", ErrInvalidInput, spec.PageSize)
	}
	if spec.Page < 1 {
		return nil, fmt.Errorf("%w: page must be >= 1, got %d", ErrInvalidInput, spec.Page)
	}

	q := strings.ToLower(strings.TrimSpace(spec.SearchText))
	preds := buildPredicates(spec.Filters, now)

	matched := make([]*domain.Listing, 0, len(listings))
outer:
	for _, l := range listings {
		if l == nil {
			continue
		}
		if q != "" && !matchesSearch(l, q) {
			continue
		}
		for _, p := range preds {
			if !p(l) {
				continue outer
			}
		}
		matched = append(matched, l)
	}

	if less := comparatorFor(spec.Sort); less != nil {
		sort.SliceStable(matched, func(i, j int) bool {
			return less(matched[i], matched[j])
		})
	}

	items, totalPages := paginate(matched, spec.Page, spec.PageSize)
	return &Result{
		Items:         items,
		TotalCount:    len(matched),
		TotalPages:    totalPages,
		ActiveFilters: activeChips(spec.Filters),
	}, nil
}
