package query

import (
	"fmt"
	"strings"
)

// Chip is one removable active-filter label shown above the results grid.
type Chip struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

var dateLabels = map[DateRange]string{
	DateToday:   "Today",
	DateWeek:    "This week",
	DateMonth:   "This month",
	DateQuarter: "Last 3 months",
}

// activeChips enumerates exactly the filter fields the predicate builder
// treats as active, with the same emptiness rules: a malformed numeric
// bound produces no predicate and therefore no chip.
func activeChips(f Filters) []Chip {
	var chips []Chip

	if f.Material != "" {
		chips = append(chips, Chip{Key: "material", Label: "Material: " + f.Material})
	}

	_, minOK := parseNumber(f.PriceMin)
	_, maxOK := parseNumber(f.PriceMax)
	if minOK || maxOK {
		low, high := "0", "∞"
		if minOK {
			low = strings.TrimSpace(f.PriceMin)
		}
		if maxOK {
			high = strings.TrimSpace(f.PriceMax)
		}
		chips = append(chips, Chip{Key: "price", Label: fmt.Sprintf("Price: $%s - $%s", low, high)})
	}

	if f.Location != "" {
		chips = append(chips, Chip{Key: "location", Label: "Location: " + f.Location})
	}

	if len(f.Condition) > 0 {
		chips = append(chips, Chip{Key: "condition", Label: "Condition: " + strings.Join(f.Condition, ", ")})
	}

	if _, ok := parseNumber(f.Quantity); ok {
		chips = append(chips, Chip{Key: "quantity", Label: fmt.Sprintf("Min Quantity: %s kg", strings.TrimSpace(f.Quantity))})
	}

	if f.Seller != "" {
		chips = append(chips, Chip{Key: "seller", Label: "Seller: " + f.Seller})
	}

	if label, ok := dateLabels[f.DateRange]; ok {
		chips = append(chips, Chip{Key: "dateRange", Label: "Posted: " + label})
	}

	return chips
}
