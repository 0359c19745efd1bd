package report

import (
	"strings"

	"salespulse/pkg/contracts/domain"
)

// AdmitSalesRow reports whether a normalized sales row participates in the
// computation. Sample rows are excluded by product name; the non-negativity
// guard also rejects rows whose source cells carried explicit negative
// numbers (coercion only defaults non-numeric cells, it does not clamp).
func AdmitSalesRow(row domain.SalesRow) bool {
	if strings.Contains(strings.ToLower(row.ProductName), "sample") {
		return false
	}
	return row.UnitsSold >= 0 && row.NetSales >= 0
}

// FilterSales normalizes and filters the raw sales dataset, preserving input
// order. The returned slice is the working row set for every sales-dependent
// branch of the engine.
func FilterSales(records []domain.RawRecord) []domain.SalesRow {
	rows := make([]domain.SalesRow, 0, len(records))
	for _, rec := range records {
		row := NormalizeSales(rec)
		if AdmitSalesRow(row) {
			rows = append(rows, row)
		}
	}
	return rows
}
