package report

import (
	"sort"
	"strings"

	"salespulse/pkg/contracts/domain"
)

// Filter is the closed set of product leaderboard predicates. Modeling the
// selection as a tagged variant keeps unknown filter names a parse-time
// concern instead of a lookup that can silently miss.
type Filter int

const (
	// FilterAll admits every sales row.
	FilterAll Filter = iota
	// FilterFOYGummies matches FOY-branded products in a gummies category.
	FilterFOYGummies
	// FilterBrandRuby matches the Ruby vendor.
	FilterBrandRuby
	// FilterBrandMFNY matches the MFNY vendor.
	FilterBrandMFNY
	// FilterCategoryGummies matches any gummies category.
	FilterCategoryGummies
)

// leaderboardSize caps the leaderboard at the top entries by unit volume.
const leaderboardSize = 10

// String returns the display name of the filter, matching the names accepted
// by ParseFilter.
func (f Filter) String() string {
	switch f {
	case FilterFOYGummies:
		return "FOY Gummies"
	case FilterBrandRuby:
		return "Brand: Ruby"
	case FilterBrandMFNY:
		return "Brand: MFNY"
	case FilterCategoryGummies:
		return "Category: Gummies"
	default:
		return "ALL"
	}
}

// FilterNames lists every accepted filter name in display order.
func FilterNames() []string {
	return []string{
		FilterAll.String(),
		FilterFOYGummies.String(),
		FilterBrandRuby.String(),
		FilterBrandMFNY.String(),
		FilterCategoryGummies.String(),
	}
}

// ParseFilter maps a filter name to its variant. Unknown names fall back to
// FilterAll rather than failing: an unrecognized selection means no
// filtering.
func ParseFilter(name string) Filter {
	switch name {
	case "FOY Gummies":
		return FilterFOYGummies
	case "Brand: Ruby":
		return FilterBrandRuby
	case "Brand: MFNY":
		return FilterBrandMFNY
	case "Category: Gummies":
		return FilterCategoryGummies
	default:
		return FilterAll
	}
}

// Matches reports whether a sales row passes the filter predicate. All
// predicates test lower-cased substring containment.
func (f Filter) Matches(row domain.SalesRow) bool {
	switch f {
	case FilterFOYGummies:
		return strings.Contains(strings.ToLower(row.ProductName), "foy") &&
			strings.Contains(strings.ToLower(row.Category), "gumm")
	case FilterBrandRuby:
		return strings.Contains(strings.ToLower(row.VendorName), "ruby")
	case FilterBrandMFNY:
		return strings.Contains(strings.ToLower(row.VendorName), "mfny")
	case FilterCategoryGummies:
		return strings.Contains(strings.ToLower(row.Category), "gumm")
	default:
		return true
	}
}

// buildLeaderboard groups the matching rows by representative, summing units
// sold, then ranks descending by units. The sort is stable, so equal unit
// totals keep first-seen grouping order, and the result is truncated to the
// leaderboard size.
func buildLeaderboard(rows []domain.SalesRow, filter Filter) []domain.LeaderboardEntry {
	var (
		order []string
		units = make(map[string]float64)
	)
	for _, row := range rows {
		if !filter.Matches(row) {
			continue
		}
		if _, ok := units[row.Representative]; !ok {
			order = append(order, row.Representative)
		}
		units[row.Representative] += row.UnitsSold
	}

	entries := make([]domain.LeaderboardEntry, 0, len(order))
	for _, rep := range order {
		entries = append(entries, domain.LeaderboardEntry{
			Representative: rep,
			Units:          units[rep],
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Units > entries[j].Units
	})
	if len(entries) > leaderboardSize {
		entries = entries[:leaderboardSize]
	}
	return entries
}
