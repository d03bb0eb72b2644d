package query

import (
	"strconv"
	"strings"
	"time"

	"github.com/deepakkode/scrap-marketplace/internal/listing/domain"
)

type predicate func(*domain.Listing) bool

// buildPredicates translates the active filter fields into inclusion
// predicates. Inactive or malformed fields impose no constraint; a bad
// filter value narrows nothing and never fails the query.
func buildPredicates(f Filters, now time.Time) []predicate {
	var preds []predicate

	if f.Material != "" {
		want := strings.ToLower(f.Material)
		preds = append(preds, func(l *domain.Listing) bool {
			return strings.ToLower(string(l.Material)) == want
		})
	}

	if min, ok := parseNumber(f.PriceMin); ok {
		preds = append(preds, func(l *domain.Listing) bool {
			return l.Price >= min
		})
	}

	if max, ok := parseNumber(f.PriceMax); ok {
		preds = append(preds, func(l *domain.Listing) bool {
			return l.Price <= max
		})
	}

	if f.Location != "" {
		want := strings.ToLower(f.Location)
		preds = append(preds, func(l *domain.Listing) bool {
			return strings.Contains(strings.ToLower(l.Location), want)
		})
	}

	if len(f.Condition) > 0 {
		want := make(map[string]struct{}, len(f.Condition))
		for _, c := range f.Condition {
			want[strings.ToLower(c)] = struct{}{}
		}
		preds = append(preds, func(l *domain.Listing) bool {
			_, ok := want[strings.ToLower(string(l.Condition))]
			return ok
		})
	}

	if min, ok := parseNumber(f.Quantity); ok {
		preds = append(preds, func(l *domain.Listing) bool {
			return l.Quantity >= min
		})
	}

	if f.Seller != "" {
		want := strings.ToLower(f.Seller)
		preds = append(preds, func(l *domain.Listing) bool {
			return strings.Contains(strings.ToLower(l.Seller.Name), want)
		})
	}

	if cutoff, ok := f.DateRange.cutoff(now); ok {
		preds = append(preds, func(l *domain.Listing) bool {
			return !l.CreatedAt.Before(cutoff)
		})
	}

	return preds
}

// cutoff resolves the range to the earliest posted date still included.
// The second return is false when no date constraint applies.
func (d DateRange) cutoff(now time.Time) (time.Time, bool) {
	switch d {
	case DateToday:
		y, m, day := now.Date()
		return time.Date(y, m, day, 0, 0, 0, 0, now.Location()), true
	case DateWeek:
		return now.AddDate(0, 0, -7), true
	case DateMonth:
		return now.AddDate(0, -1, 0), true
	case DateQuarter:
		return now.AddDate(0, -3, 0), true
	default:
		return time.Time{}, false
	}
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
