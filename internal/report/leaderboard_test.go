package report

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salespulse/pkg/contracts/domain"
)

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name string
		want Filter
	}{
		{"ALL", FilterAll},
		{"FOY Gummies", FilterFOYGummies},
		{"Brand: Ruby", FilterBrandRuby},
		{"Brand: MFNY", FilterBrandMFNY},
		{"Category: Gummies", FilterCategoryGummies},
		{"", FilterAll},
		{"Brand: Unknown", FilterAll},
		{"all", FilterAll},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.name), func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFilter(tt.name))
		})
	}
}

func TestFilter_RoundTrip(t *testing.T) {
	for _, name := range FilterNames() {
		assert.Equal(t, name, ParseFilter(name).String())
	}
}

func TestFilter_Matches(t *testing.T) {
	row := domain.SalesRow{
		ProductName: "FOY Gummy Bears 100mg",
		Category:    "Edibles - Gummies",
		VendorName:  "Ruby Farms LLC",
	}

	tests := []struct {
		filter Filter
		row    domain.SalesRow
		want   bool
	}{
		{FilterAll, domain.SalesRow{}, true},
		{FilterFOYGummies, row, true},
		{FilterFOYGummies, domain.SalesRow{ProductName: "FOY Tincture", Category: "Tinctures"}, false},
		{FilterFOYGummies, domain.SalesRow{ProductName: "Other Gummy", Category: "Gummies"}, false},
		{FilterBrandRuby, row, true},
		{FilterBrandRuby, domain.SalesRow{VendorName: "MFNY"}, false},
		{FilterBrandMFNY, domain.SalesRow{VendorName: "MFNY Processing"}, true},
		{FilterBrandMFNY, row, false},
		{FilterCategoryGummies, row, true},
		{FilterCategoryGummies, domain.SalesRow{Category: "Flower"}, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%s", tt.filter, tt.row.ProductName), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(tt.row))
		})
	}
}

func TestBuildLeaderboard_RanksByUnits(t *testing.T) {
	rows := []domain.SalesRow{
		{Representative: "Alice", UnitsSold: 3},
		{Representative: "Bob", UnitsSold: 10},
		{Representative: "Alice", UnitsSold: 4},
	}

	entries := buildLeaderboard(rows, FilterAll)

	require.Len(t, entries, 2)
	assert.Equal(t, domain.LeaderboardEntry{Representative: "Bob", Units: 10}, entries[0])
	assert.Equal(t, domain.LeaderboardEntry{Representative: "Alice", Units: 7}, entries[1])
}

func TestBuildLeaderboard_TiesKeepFirstSeenOrder(t *testing.T) {
	rows := []domain.SalesRow{
		{Representative: "Carol", UnitsSold: 5},
		{Representative: "Alice", UnitsSold: 5},
		{Representative: "Bob", UnitsSold: 5},
	}

	entries := buildLeaderboard(rows, FilterAll)

	require.Len(t, entries, 3)
	assert.Equal(t, "Carol", entries[0].Representative)
	assert.Equal(t, "Alice", entries[1].Representative)
	assert.Equal(t, "Bob", entries[2].Representative)
}

func TestBuildLeaderboard_TruncatesToTen(t *testing.T) {
	var rows []domain.SalesRow
	for i := 0; i < 15; i++ {
		rows = append(rows, domain.SalesRow{
			Representative: fmt.Sprintf("Rep %02d", i),
			UnitsSold:      float64(i),
		})
	}

	entries := buildLeaderboard(rows, FilterAll)

	require.Len(t, entries, 10)
	assert.Equal(t, "Rep 14", entries[0].Representative)
	assert.Equal(t, "Rep 05", entries[9].Representative)
}

func TestBuildLeaderboard_NoMatchesYieldsEmpty(t *testing.T) {
	rows := []domain.SalesRow{
		{Representative: "Alice", VendorName: "MFNY", UnitsSold: 5},
	}

	entries := buildLeaderboard(rows, FilterBrandRuby)

	assert.Empty(t, entries)
}
