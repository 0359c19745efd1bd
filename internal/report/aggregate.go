package report

import (
	"salespulse/pkg/contracts/domain"
)

// repAccumulator carries the running totals for one representative while
// grouping sales rows.
type repAccumulator struct {
	representative string
	revenue        float64
	units          float64
	ticketCount    int
}

// repTotals is an insertion-ordered grouping of sales rows by representative.
// Ordering matters: the final revenue sort is stable, so first-seen order is
// the tie-break the caller observes.
type repTotals struct {
	order []*repAccumulator
	index map[string]*repAccumulator

	totalRevenue float64
	totalUnits   float64
}

// aggregateReps groups filtered sales rows by representative, accumulating
// revenue, units and ticket counts per group plus the global totals. Grouping
// key comparison is exact string equality on the already-trimmed
// representative; no case folding.
func aggregateReps(rows []domain.SalesRow) *repTotals {
	t := &repTotals{index: make(map[string]*repAccumulator)}
	for _, row := range rows {
		t.totalRevenue += row.NetSales
		t.totalUnits += row.UnitsSold

		acc, ok := t.index[row.Representative]
		if !ok {
			acc = &repAccumulator{representative: row.Representative}
			t.index[row.Representative] = acc
			t.order = append(t.order, acc)
		}
		acc.revenue += row.NetSales
		acc.units += row.UnitsSold
		acc.ticketCount++
	}
	return t
}

// aggregateHours sums timesheet hours per representative. Rows with an empty
// representative are dropped entirely: they contribute to no total and never
// create an unassigned bucket. There is no cross-referencing with sales
// representatives here; hours for names that never sold anything simply go
// unused.
func aggregateHours(records []domain.RawRecord) map[string]float64 {
	hours := make(map[string]float64)
	for _, rec := range records {
		row := NormalizeTimesheet(rec)
		if row.Representative == "" {
			continue
		}
		hours[row.Representative] += row.Hours
	}
	return hours
}

// deriveMetrics turns the aggregated totals and hour lookups into the final
// per-representative metrics, in grouping insertion order. Sorting is the
// caller's concern.
func deriveMetrics(totals *repTotals, hours map[string]float64) []domain.RepMetric {
	metrics := make([]domain.RepMetric, 0, len(totals.order))
	for _, acc := range totals.order {
		m := domain.RepMetric{
			Representative: acc.representative,
			Revenue:        acc.revenue,
			Units:          acc.units,
			TicketCount:    acc.ticketCount,
			HoursWorked:    hours[acc.representative],
		}
		if m.TicketCount > 0 {
			m.RevenuePerTicket = m.Revenue / float64(m.TicketCount)
		}
		if totals.totalRevenue > 0 {
			m.ShareOfRevenue = m.Revenue / totals.totalRevenue
		}
		if m.HoursWorked > 0 {
			m.TimeWeightedEfficiency = (m.RevenuePerTicket * m.ShareOfRevenue) / m.HoursWorked
		}
		metrics = append(metrics, m)
	}
	return metrics
}
