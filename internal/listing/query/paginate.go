package query

import (
	"strconv"

	"github.com/deepakkode/scrap-marketplace/internal/listing/domain"
)

// Gap is the ellipsis marker placed in a page window where pages are elided.
const Gap = "..."

// paginate windows the filtered and sorted list. A page past the end yields
// an empty slice, never an error. Total pages is at least 1 so the UI always
// has a current page to highlight.
func paginate(items []*domain.Listing, page, size int) ([]*domain.Listing, int) {
	totalPages := (len(items) + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page - 1) * size
	if start >= len(items) {
		return []*domain.Listing{}, totalPages
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], totalPages
}

// Window produces the visible page numbers around the current page for
// pagination controls, e.g. [1 ... 4 5 6 7 8 ... 20] for page 6 of 20.
// The first and last pages are always shown, two neighbours on each side
// of the current page, and a single ellipsis per gap. A single page yields
// [1]; the UI hides pagination entirely in that case.
func Window(current, total int) []string {
	if total <= 1 {
		return []string{"1"}
	}

	const delta = 2
	pages := []string{"1"}
	if current-delta > 2 {
		pages = []string{"1", Gap}
	}
	for i := max(2, current-delta); i <= min(total-1, current+delta); i++ {
		pages = append(pages, strconv.Itoa(i))
	}
	if current+delta < total-1 {
		pages = append(pages, Gap)
	}
	return append(pages, strconv.Itoa(total))
}
