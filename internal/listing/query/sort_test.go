package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepakkode/scrap-marketplace/internal/listing/domain"
)

func ids(listings []*domain.Listing) []string {
	out := make([]string, len(listings))
	for i, l := range listings {
		out[i] = l.ID
	}
	return out
}

func TestComparatorOrderings(t *testing.T) {
	base := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	listings := []*domain.Listing{
		{ID: "a", Price: 30, Quantity: 5, Location: "Chennai", CreatedAt: base.AddDate(0, 0, 2)},
		{ID: "b", Price: 10, Quantity: 50, Location: "Ahmedabad", CreatedAt: base},
		{ID: "c", Price: 20, Quantity: 20, Location: "bengaluru", CreatedAt: base.AddDate(0, 0, 1)},
	}

	cases := []struct {
		key  SortKey
		want []string
	}{
		{SortRelevance, []string{"a", "b", "c"}},
		{SortPriceLow, []string{"b", "c", "a"}},
		{SortPriceHigh, []string{"a", "c", "b"}},
		{SortQuantityHigh, []string{"b", "c", "a"}},
		{SortQuantityLow, []string{"a", "c", "b"}},
		{SortDateNew, []string{"a", "c", "b"}},
		{SortDateOld, []string{"b", "c", "a"}},
		// collation is case-insensitive, unlike a bytewise compare
		{SortLocation, []string{"b", "c", "a"}},
	}

	for _, tc := range cases {
		t.Run(string(tc.key), func(t *testing.T) {
			res, err := Run(listings, Spec{Sort: tc.key, Page: 1, PageSize: 10})
			require.NoError(t, err)
			assert.Equal(t, tc.want, ids(res.Items))
		})
	}
}

func TestComparatorRegistryIsTotal(t *testing.T) {
	for _, key := range []SortKey{
		SortRelevance, SortPriceLow, SortPriceHigh, SortQuantityHigh,
		SortQuantityLow, SortDateNew, SortDateOld, SortLocation,
	} {
		_, ok := comparators[key]
		assert.True(t, ok, "missing comparator for %q", key)
	}
}
