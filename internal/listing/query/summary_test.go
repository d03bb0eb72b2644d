package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveChipsMirrorActivePredicates(t *testing.T) {
	chips := activeChips(Filters{
		Material:  "steel",
		PriceMin:  "10",
		PriceMax:  "",
		Location:  "Mumbai",
		Condition: []string{"excellent", "good"},
		Quantity:  "250",
		Seller:    "Acme",
		DateRange: DateWeek,
	})

	require.Len(t, chips, 7)
	assert.Equal(t, Chip{Key: "material", Label: "Material: steel"}, chips[0])
	assert.Equal(t, Chip{Key: "price", Label: "Price: $10 - $∞"}, chips[1])
	assert.Equal(t, Chip{Key: "location", Label: "Location: Mumbai"}, chips[2])
	assert.Equal(t, Chip{Key: "condition", Label: "Condition: excellent, good"}, chips[3])
	assert.Equal(t, Chip{Key: "quantity", Label: "Min Quantity: 250 kg"}, chips[4])
	assert.Equal(t, Chip{Key: "seller", Label: "Seller: Acme"}, chips[5])
	assert.Equal(t, Chip{Key: "dateRange", Label: "Posted: This week"}, chips[6])
}

func TestActiveChipsEmptyFiltersYieldNone(t *testing.T) {
	assert.Empty(t, activeChips(Filters{}))
}

func TestActiveChipsSkipMalformedNumbers(t *testing.T) {
	chips := activeChips(Filters{PriceMin: "cheap", Quantity: "lots"})
	assert.Empty(t, chips, "malformed numerics are inactive and get no chip")
}

func TestActiveChipsPriceBoundsFillDefaults(t *testing.T) {
	chips := activeChips(Filters{PriceMax: "99.5"})
	require.Len(t, chips, 1)
	assert.Equal(t, "Price: $0 - $99.5", chips[0].Label)
}
