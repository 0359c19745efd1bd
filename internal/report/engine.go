package report

import (
	"errors"
	"sort"

	"salespulse/pkg/contracts/domain"
)

// ErrNoSales is returned when a computation is requested before any sales
// dataset has been provided. The message is surfaced to the user verbatim.
var ErrNoSales = errors.New("Upload sales_transactions.xlsx first.")

// Input carries the fully materialized datasets for one computation request.
// Sales is required and non-empty; receiving and timesheets default to empty
// sequences.
type Input struct {
	Sales      []domain.RawRecord
	Receiving  []domain.RawRecord
	Timesheets []domain.RawRecord
	Filter     Filter
}

// Compute runs the full aggregation pipeline over the input snapshots and
// assembles a freshly allocated result. It is pure and synchronous: identical
// inputs yield identical results, and no input shape other than an empty
// sales dataset produces an error.
func Compute(input Input) (*domain.ComputationResult, error) {
	if len(input.Sales) == 0 {
		return nil, ErrNoSales
	}

	rows := FilterSales(input.Sales)

	totals := aggregateReps(rows)
	hours := aggregateHours(input.Timesheets)
	metrics := deriveMetrics(totals, hours)

	// Presentation order: revenue descending, stable so equal revenues keep
	// grouping insertion order.
	sort.SliceStable(metrics, func(i, j int) bool {
		return metrics[i].Revenue > metrics[j].Revenue
	})

	sellThrough := buildSellThrough(input.Receiving, rows)

	return &domain.ComputationResult{
		TotalRevenue:      totals.totalRevenue,
		TotalUnits:        totals.totalUnits,
		RepMetrics:        metrics,
		Leaderboard:       buildLeaderboard(rows, input.Filter),
		TopSellThrough:    topSellThrough(sellThrough),
		BottomSellThrough: bottomSellThrough(sellThrough),
	}, nil
}
